package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/marketpace/demo-accounts/internal/identity"
	"github.com/marketpace/demo-accounts/internal/models"
	"github.com/stretchr/testify/assert"
)

// fixedResetService wires mocks into a ResetService with a pinned clock and
// a deterministic code generator.
func fixedResetService(users *MockUserReader, tokens *MockTokenReader, writer *MockTokenWriter, notifier *MockNotifier, now time.Time) *ResetService {
	svc := NewResetService(users, tokens, writer, notifier)
	svc.now = func() time.Time { return now }
	svc.randInt = func(int) int { return 123456 }
	return svc
}

func TestResetService_RequestReset(t *testing.T) {
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	user := &models.UserDB{Email: "a@x.com", Phone: "+15551234567"}

	t.Run("email delivery", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		users := NewMockUserReader(ctrl)
		tokens := NewMockTokenReader(ctrl)
		writer := NewMockTokenWriter(ctrl)
		notifier := NewMockNotifier(ctrl)
		svc := fixedResetService(users, tokens, writer, notifier, now)

		users.EXPECT().GetByEmail(gomock.Any(), "a@x.com").Return(user, nil)
		writer.EXPECT().
			Create(gomock.Any(), "a@x.com", "123456", models.ResetMethodEmail, now.Add(time.Hour)).
			Return(nil)
		notifier.EXPECT().
			SendEmail(gomock.Any(), "a@x.com", gomock.Any(), gomock.Any()).
			Return(nil)

		assert.NoError(t, svc.RequestReset(context.Background(), "a@x.com", "email"))
	})

	t.Run("sms delivery goes to the stored phone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		users := NewMockUserReader(ctrl)
		tokens := NewMockTokenReader(ctrl)
		writer := NewMockTokenWriter(ctrl)
		notifier := NewMockNotifier(ctrl)
		svc := fixedResetService(users, tokens, writer, notifier, now)

		users.EXPECT().GetByEmail(gomock.Any(), "a@x.com").Return(user, nil)
		writer.EXPECT().
			Create(gomock.Any(), "a@x.com", "123456", models.ResetMethodSMS, now.Add(time.Hour)).
			Return(nil)
		notifier.EXPECT().
			SendSMS(gomock.Any(), "+15551234567", gomock.Any()).
			Return(nil)

		assert.NoError(t, svc.RequestReset(context.Background(), "a@x.com", "sms"))
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		users := NewMockUserReader(ctrl)
		svc := fixedResetService(users, NewMockTokenReader(ctrl), NewMockTokenWriter(ctrl), NewMockNotifier(ctrl), now)

		users.EXPECT().GetByEmail(gomock.Any(), "ghost@x.com").Return(nil, nil)

		err := svc.RequestReset(context.Background(), "ghost@x.com", "email")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("invalid method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := fixedResetService(NewMockUserReader(ctrl), NewMockTokenReader(ctrl), NewMockTokenWriter(ctrl), NewMockNotifier(ctrl), now)

		err := svc.RequestReset(context.Background(), "a@x.com", "carrier-pigeon")
		assert.ErrorIs(t, err, ErrInvalidResetMethod)
	})

	t.Run("delivery failure leaves the token persisted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		users := NewMockUserReader(ctrl)
		writer := NewMockTokenWriter(ctrl)
		notifier := NewMockNotifier(ctrl)
		svc := fixedResetService(users, NewMockTokenReader(ctrl), writer, notifier, now)

		users.EXPECT().GetByEmail(gomock.Any(), "a@x.com").Return(user, nil)
		// Persist happens first and is not rolled back.
		writer.EXPECT().
			Create(gomock.Any(), "a@x.com", "123456", models.ResetMethodSMS, now.Add(time.Hour)).
			Return(nil)
		notifier.EXPECT().
			SendSMS(gomock.Any(), "+15551234567", gomock.Any()).
			Return(errors.New("twilio 500"))

		err := svc.RequestReset(context.Background(), "a@x.com", "sms")
		assert.ErrorIs(t, err, ErrDelivery)
	})
}

func TestResetService_VerifyCode(t *testing.T) {
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		token   *models.ResetTokenDB
		wantID  int64
		wantErr error
	}{
		{
			name:   "valid token",
			token:  &models.ResetTokenDB{ID: 7, ExpiresAt: now.Add(30 * time.Minute)},
			wantID: 7,
		},
		{
			name:    "no matching token",
			token:   nil,
			wantErr: ErrInvalidResetCode,
		},
		{
			name:    "expired token",
			token:   &models.ResetTokenDB{ID: 8, ExpiresAt: now.Add(-time.Minute)},
			wantErr: ErrResetCodeExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tokens := NewMockTokenReader(ctrl)
			svc := fixedResetService(NewMockUserReader(ctrl), tokens, NewMockTokenWriter(ctrl), NewMockNotifier(ctrl), now)

			tokens.EXPECT().
				GetActive(gomock.Any(), "a@x.com", "123456").
				Return(tt.token, nil)

			id, err := svc.VerifyCode(context.Background(), "a@x.com", "123456")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestResetService_ResetPassword(t *testing.T) {
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	t.Run("success consumes atomically", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tokens := NewMockTokenReader(ctrl)
		writer := NewMockTokenWriter(ctrl)
		svc := fixedResetService(NewMockUserReader(ctrl), tokens, writer, NewMockNotifier(ctrl), now)

		tokens.EXPECT().
			GetActive(gomock.Any(), "a@x.com", "123456").
			Return(&models.ResetTokenDB{ID: 7, ExpiresAt: now.Add(time.Hour)}, nil)
		writer.EXPECT().
			Consume(gomock.Any(), int64(7), "a@x.com", identity.HashPassword("newpass1")).
			Return(nil)

		assert.NoError(t, svc.ResetPassword(context.Background(), "a@x.com", "123456", "newpass1"))
	})

	t.Run("short password rejected before any store access", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := fixedResetService(NewMockUserReader(ctrl), NewMockTokenReader(ctrl), NewMockTokenWriter(ctrl), NewMockNotifier(ctrl), now)

		err := svc.ResetPassword(context.Background(), "a@x.com", "123456", "short")
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("expired code leaves the password alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tokens := NewMockTokenReader(ctrl)
		svc := fixedResetService(NewMockUserReader(ctrl), tokens, NewMockTokenWriter(ctrl), NewMockNotifier(ctrl), now)

		tokens.EXPECT().
			GetActive(gomock.Any(), "a@x.com", "123456").
			Return(&models.ResetTokenDB{ID: 7, ExpiresAt: now.Add(-time.Hour)}, nil)

		err := svc.ResetPassword(context.Background(), "a@x.com", "123456", "newpass1")
		assert.ErrorIs(t, err, ErrResetCodeExpired)
	})
}

func TestResetService_CleanupExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockTokenWriter(ctrl)
	svc := NewResetService(NewMockUserReader(ctrl), NewMockTokenReader(ctrl), writer, NewMockNotifier(ctrl))

	writer.EXPECT().DeleteExpired(gomock.Any()).Return(int64(3), nil)

	assert.NoError(t, svc.CleanupExpired(context.Background()))
}

func TestResetService_GenerateCodeIsSixDigits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewResetService(NewMockUserReader(ctrl), NewMockTokenReader(ctrl), NewMockTokenWriter(ctrl), NewMockNotifier(ctrl))

	// Zero-padding must hold at both ends of the range.
	svc.randInt = func(int) int { return 0 }
	assert.Equal(t, "000000", svc.generateCode())

	svc.randInt = func(int) int { return 999999 }
	assert.Equal(t, "999999", svc.generateCode())
}
