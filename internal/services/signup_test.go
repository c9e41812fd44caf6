package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/marketpace/demo-accounts/internal/models"
	"github.com/marketpace/demo-accounts/internal/services"
	"github.com/stretchr/testify/assert"
)

func validSignupInput() models.SignupInput {
	return models.SignupInput{
		Email:          "a@x.com",
		Password:       "secret1",
		Phone:          "5551234567",
		City:           "Springfield",
		FirstName:      "Jo",
		LastName:       "Lee",
		Interests:      []string{"shops", "music"},
		Notifications:  true,
		TermsAccepted:  true,
		EarlySupporter: true,
	}
}

func TestSignupService_Signup_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := services.NewMockUserUpserter(ctrl)
	mockNotifier := services.NewMockNotifier(ctrl)
	svc := services.NewSignupService(mockUsers, mockNotifier)

	var captured models.UserDB
	mockUsers.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.UserDB) (string, bool, error) {
			captured = u
			return u.UserID, true, nil
		})
	mockNotifier.EXPECT().
		SendSMS(gomock.Any(), "+15551234567", gomock.Any()).
		Return(nil)

	res, err := svc.Signup(context.Background(), validSignupInput())
	assert.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, "743173788aa9", res.UserID)
	assert.Equal(t, "Account created successfully! Welcome to MarketPace.", res.Message)

	assert.Equal(t, "743173788aa9", captured.UserID)
	assert.Equal(t, "Jo Lee", captured.FullName)
	assert.Equal(t, "+15551234567", captured.Phone)
	assert.Equal(t, "shops,music", captured.Interests)
	assert.Equal(t, models.AccountTypePersonal, captured.AccountType)
	assert.Len(t, captured.PasswordHash, 64)
	assert.NotEqual(t, "secret1", captured.PasswordHash)
	assert.True(t, captured.DemoAccessGranted)
}

func TestSignupService_Signup_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := services.NewMockUserUpserter(ctrl)
	mockNotifier := services.NewMockNotifier(ctrl)
	svc := services.NewSignupService(mockUsers, mockNotifier)

	mockUsers.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		Return("743173788aa9", false, nil)
	mockNotifier.EXPECT().
		SendSMS(gomock.Any(), "+15551234567", gomock.Any()).
		Return(nil)

	in := validSignupInput()
	in.City = "Shelbyville" // different profile, same email

	res, err := svc.Signup(context.Background(), in)
	assert.NoError(t, err)
	assert.False(t, res.Created)
	assert.Equal(t, "743173788aa9", res.UserID)
	assert.Equal(t, "Account updated successfully! Welcome back, Jo Lee.", res.Message)
}

func TestSignupService_Signup_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := services.NewMockUserUpserter(ctrl)
	mockNotifier := services.NewMockNotifier(ctrl)
	svc := services.NewSignupService(mockUsers, mockNotifier)

	tests := []struct {
		name    string
		mutate  func(*models.SignupInput)
		wantErr error
	}{
		{"missing email", func(in *models.SignupInput) { in.Email = "" }, services.ErrMissingFields},
		{"missing password", func(in *models.SignupInput) { in.Password = "" }, services.ErrMissingFields},
		{"missing phone", func(in *models.SignupInput) { in.Phone = "" }, services.ErrMissingFields},
		{"missing city", func(in *models.SignupInput) { in.City = "" }, services.ErrMissingFields},
		{"missing first name", func(in *models.SignupInput) { in.FirstName = "" }, services.ErrMissingFields},
		{"missing last name", func(in *models.SignupInput) { in.LastName = "" }, services.ErrMissingFields},
		{"bad account type", func(in *models.SignupInput) { in.AccountType = "corporate" }, services.ErrInvalidAccountType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validSignupInput()
			tt.mutate(&in)

			res, err := svc.Signup(context.Background(), in)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, res)
		})
	}
}

func TestSignupService_Signup_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := services.NewMockUserUpserter(ctrl)
	mockNotifier := services.NewMockNotifier(ctrl)
	svc := services.NewSignupService(mockUsers, mockNotifier)

	mockUsers.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		Return("", false, errors.New("connection refused"))

	res, err := svc.Signup(context.Background(), validSignupInput())
	assert.Error(t, err)
	assert.Nil(t, res)
}

func TestSignupService_Signup_NotificationFailureDoesNotFailSignup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := services.NewMockUserUpserter(ctrl)
	mockNotifier := services.NewMockNotifier(ctrl)
	svc := services.NewSignupService(mockUsers, mockNotifier)

	mockUsers.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		Return("743173788aa9", true, nil)
	mockNotifier.EXPECT().
		SendSMS(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("twilio unavailable"))

	res, err := svc.Signup(context.Background(), validSignupInput())
	assert.NoError(t, err)
	assert.True(t, res.Created)
}

func TestSignupService_Signup_NotificationsDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := services.NewMockUserUpserter(ctrl)
	mockNotifier := services.NewMockNotifier(ctrl)
	svc := services.NewSignupService(mockUsers, mockNotifier)

	mockUsers.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		Return("743173788aa9", true, nil)
	// No SendSMS expectation: opting out must suppress the welcome text.

	in := validSignupInput()
	in.Notifications = false

	res, err := svc.Signup(context.Background(), in)
	assert.NoError(t, err)
	assert.True(t, res.Created)
}
