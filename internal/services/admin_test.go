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

func TestAdminService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockAdminUserReader(ctrl)
	svc := services.NewAdminService(reader, services.NewMockAdminUserWriter(ctrl), services.NewMockTokenPurger(ctrl), services.NewMockNotifier(ctrl))

	reader.EXPECT().Stats(gomock.Any()).Return(&models.DemoStats{
		TotalUsers:      12,
		EarlySupporters: 12,
		Cities:          []models.CityCount{{Name: "Springfield", Users: 8}},
	}, nil)

	stats, err := svc.Stats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 12, stats.TotalUsers)
	assert.Equal(t, 342, stats.DemoDrivers)
	assert.Equal(t, 89, stats.DemoShops)
}

func TestAdminService_ClearUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := services.NewMockAdminUserWriter(ctrl)
	tokens := services.NewMockTokenPurger(ctrl)
	svc := services.NewAdminService(services.NewMockAdminUserReader(ctrl), writer, tokens, services.NewMockNotifier(ctrl))

	writer.EXPECT().DeleteByEmail(gomock.Any(), "a@x.com").Return(int64(1), nil)
	tokens.EXPECT().DeleteByEmail(gomock.Any(), "a@x.com").Return(int64(2), nil)

	users, deletedTokens, err := svc.ClearUser(context.Background(), "a@x.com")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), users)
	assert.Equal(t, int64(2), deletedTokens)
}

func TestAdminService_ClearAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := services.NewMockAdminUserWriter(ctrl)
	svc := services.NewAdminService(services.NewMockAdminUserReader(ctrl), writer, services.NewMockTokenPurger(ctrl), services.NewMockNotifier(ctrl))

	writer.EXPECT().DeleteAll(gomock.Any()).Return(int64(42), nil)

	deleted, err := svc.ClearAll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(42), deleted)
}

func TestAdminService_NotifyLaunch_City(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockAdminUserReader(ctrl)
	writer := services.NewMockAdminUserWriter(ctrl)
	notifier := services.NewMockNotifier(ctrl)
	svc := services.NewAdminService(reader, writer, services.NewMockTokenPurger(ctrl), notifier)

	reader.EXPECT().
		ListLaunchCandidates(gomock.Any(), "Springfield").
		Return([]models.LaunchCandidate{
			{FullName: "Jo Lee", Phone: "+15551230001"},
			{FullName: "Max Roe", Phone: "+15551230002"},
		}, nil)

	// First send succeeds and is marked; second fails and must stay
	// unmarked so the next run retries it.
	notifier.EXPECT().SendSMS(gomock.Any(), "+15551230001", gomock.Any()).Return(nil)
	writer.EXPECT().MarkLaunchNotified(gomock.Any(), "+15551230001").Return(nil)
	notifier.EXPECT().SendSMS(gomock.Any(), "+15551230002", gomock.Any()).Return(errors.New("undeliverable"))

	notified, err := svc.NotifyLaunch(context.Background(), "Springfield", "")
	assert.NoError(t, err)
	assert.Equal(t, 1, notified)
}

func TestAdminService_NotifyLaunch_SinglePhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockAdminUserReader(ctrl)
	writer := services.NewMockAdminUserWriter(ctrl)
	notifier := services.NewMockNotifier(ctrl)
	svc := services.NewAdminService(reader, writer, services.NewMockTokenPurger(ctrl), notifier)

	t.Run("eligible", func(t *testing.T) {
		reader.EXPECT().
			GetLaunchCandidateByPhone(gomock.Any(), "+15551230001").
			Return(&models.LaunchCandidate{FullName: "Jo Lee", Phone: "+15551230001"}, nil)
		notifier.EXPECT().SendSMS(gomock.Any(), "+15551230001", gomock.Any()).Return(nil)
		writer.EXPECT().MarkLaunchNotified(gomock.Any(), "+15551230001").Return(nil)

		notified, err := svc.NotifyLaunch(context.Background(), "Springfield", "+15551230001")
		assert.NoError(t, err)
		assert.Equal(t, 1, notified)
	})

	t.Run("already notified", func(t *testing.T) {
		reader.EXPECT().
			GetLaunchCandidateByPhone(gomock.Any(), "+15551230001").
			Return(nil, nil)

		notified, err := svc.NotifyLaunch(context.Background(), "Springfield", "+15551230001")
		assert.NoError(t, err)
		assert.Equal(t, 0, notified)
	})
}

func TestAdminService_CleanupTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens := services.NewMockTokenPurger(ctrl)
	svc := services.NewAdminService(services.NewMockAdminUserReader(ctrl), services.NewMockAdminUserWriter(ctrl), tokens, services.NewMockNotifier(ctrl))

	tokens.EXPECT().DeleteExpired(gomock.Any()).Return(int64(5), nil)

	deleted, err := svc.CleanupTokens(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(5), deleted)
}
