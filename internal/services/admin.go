package services

import (
	"context"

	"github.com/marketpace/demo-accounts/internal/logger"
	"github.com/marketpace/demo-accounts/internal/models"
	"github.com/marketpace/demo-accounts/internal/notifications"
)

// Simulated dashboard figures shown next to the real counts.
const (
	simulatedDemoDrivers = 342
	simulatedDemoShops   = 89
)

// AdminUserReader defines the read operations maintenance tasks need.
type AdminUserReader interface {
	Stats(ctx context.Context) (*models.DemoStats, error)
	ListLaunchCandidates(ctx context.Context, city string) ([]models.LaunchCandidate, error)
	GetLaunchCandidateByPhone(ctx context.Context, phoneNumber string) (*models.LaunchCandidate, error)
}

// AdminUserWriter defines the destructive operations maintenance tasks need.
type AdminUserWriter interface {
	DeleteByEmail(ctx context.Context, email string) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
	MarkLaunchNotified(ctx context.Context, phoneNumber string) error
}

// TokenPurger defines token cleanup operations.
type TokenPurger interface {
	DeleteByEmail(ctx context.Context, email string) (int64, error)
	DeleteExpired(ctx context.Context) (int64, error)
}

// AdminService implements the maintenance surface: stats, account clearing
// and launch notifications.
type AdminService struct {
	reader   AdminUserReader
	writer   AdminUserWriter
	tokens   TokenPurger
	notifier Notifier
}

// NewAdminService creates a new AdminService instance.
func NewAdminService(reader AdminUserReader, writer AdminUserWriter, tokens TokenPurger, notifier Notifier) *AdminService {
	return &AdminService{reader: reader, writer: writer, tokens: tokens, notifier: notifier}
}

// Stats returns signup statistics plus the simulated dashboard figures.
func (svc *AdminService) Stats(ctx context.Context) (*models.DemoStats, error) {
	stats, err := svc.reader.Stats(ctx)
	if err != nil {
		logger.Log.Errorw("failed to collect stats", "err", err)
		return nil, err
	}
	stats.DemoDrivers = simulatedDemoDrivers
	stats.DemoShops = simulatedDemoShops
	return stats, nil
}

// ClearUser removes one account and all of its reset tokens so the email
// can sign up again. Returns how many user rows and token rows went away.
func (svc *AdminService) ClearUser(ctx context.Context, email string) (int64, int64, error) {
	usersDeleted, err := svc.writer.DeleteByEmail(ctx, email)
	if err != nil {
		return 0, 0, err
	}
	tokensDeleted, err := svc.tokens.DeleteByEmail(ctx, email)
	if err != nil {
		return usersDeleted, 0, err
	}

	logger.Log.Infow("account cleared",
		"email", email,
		"users_deleted", usersDeleted,
		"tokens_deleted", tokensDeleted,
	)
	return usersDeleted, tokensDeleted, nil
}

// ClearAll wipes every demo account.
func (svc *AdminService) ClearAll(ctx context.Context) (int64, error) {
	deleted, err := svc.writer.DeleteAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to clear accounts", "err", err)
		return 0, err
	}
	logger.Log.Infow("all accounts cleared", "deleted", deleted)
	return deleted, nil
}

// CleanupTokens purges expired reset tokens and reports how many were
// removed.
func (svc *AdminService) CleanupTokens(ctx context.Context) (int64, error) {
	return svc.tokens.DeleteExpired(ctx)
}

// NotifyLaunch texts the go-live message to eligible users. With a phone
// number it targets that single user; otherwise every not-yet-notified user
// whose city matches. Each user is marked notified only after their send
// succeeded, so failed sends are retried on the next run.
func (svc *AdminService) NotifyLaunch(ctx context.Context, city, phoneNumber string) (int, error) {
	var candidates []models.LaunchCandidate

	if phoneNumber != "" {
		c, err := svc.reader.GetLaunchCandidateByPhone(ctx, phoneNumber)
		if err != nil {
			return 0, err
		}
		if c != nil {
			candidates = append(candidates, *c)
		}
	} else {
		var err error
		candidates, err = svc.reader.ListLaunchCandidates(ctx, city)
		if err != nil {
			return 0, err
		}
	}

	notified := 0
	for _, c := range candidates {
		msg := notifications.LaunchMessage(c.FullName, city)
		if err := svc.notifier.SendSMS(ctx, c.Phone, msg); err != nil {
			logger.Log.Errorw("launch sms failed", "phone", c.Phone, "err", err)
			continue
		}
		if err := svc.writer.MarkLaunchNotified(ctx, c.Phone); err != nil {
			logger.Log.Errorw("failed to mark launch notified", "phone", c.Phone, "err", err)
			continue
		}
		notified++
	}

	logger.Log.Infow("launch notifications sent",
		"city", city,
		"candidates", len(candidates),
		"notified", notified,
	)
	return notified, nil
}
