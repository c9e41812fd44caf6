package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/marketpace/demo-accounts/internal/identity"
	"github.com/marketpace/demo-accounts/internal/logger"
	"github.com/marketpace/demo-accounts/internal/models"
	"github.com/marketpace/demo-accounts/internal/notifications"
	"github.com/marketpace/demo-accounts/internal/phone"
)

// Error variables for the signup workflow.
var (
	ErrMissingFields      = errors.New("missing required signup fields")
	ErrInvalidAccountType = errors.New("invalid account type")
)

// UserUpserter defines the write operation the signup workflow needs.
type UserUpserter interface {
	Upsert(ctx context.Context, u models.UserDB) (string, bool, error)
}

// Notifier defines outbound message delivery. Implementations must report
// failures as errors without panicking past the call.
type Notifier interface {
	SendSMS(ctx context.Context, to, body string) error
	SendEmail(ctx context.Context, to, subject, body string) error
}

// SignupService creates or overwrites demo accounts from submitted profile
// data and triggers welcome notifications.
type SignupService struct {
	users    UserUpserter
	notifier Notifier
}

// NewSignupService creates a new SignupService instance.
func NewSignupService(users UserUpserter, notifier Notifier) *SignupService {
	return &SignupService{users: users, notifier: notifier}
}

// Signup validates the input, upserts the account and sends a welcome (or
// welcome-back) text. Notification failures are logged, never returned: the
// account write is the primary effect and it has already committed.
func (svc *SignupService) Signup(ctx context.Context, in models.SignupInput) (*models.SignupResult, error) {
	if in.Email == "" || in.Password == "" || in.Phone == "" ||
		in.City == "" || in.FirstName == "" || in.LastName == "" {
		return nil, ErrMissingFields
	}

	accountType := in.AccountType
	if accountType == "" {
		accountType = models.AccountTypePersonal
	}
	switch accountType {
	case models.AccountTypePersonal, models.AccountTypeBusiness, models.AccountTypeDual:
	default:
		return nil, ErrInvalidAccountType
	}

	fullName := in.FirstName + " " + in.LastName
	normalizedPhone := phone.Normalize(in.Phone)

	user := models.UserDB{
		UserID:              identity.UserID(in.Email),
		FullName:            fullName,
		Email:               in.Email,
		PasswordHash:        identity.HashPassword(in.Password),
		Phone:               normalizedPhone,
		City:                in.City,
		Country:             in.Country,
		State:               in.State,
		Interests:           strings.Join(in.Interests, ","),
		AccountType:         accountType,
		Bio:                 in.Bio,
		BusinessName:        in.BusinessName,
		BusinessWebsite:     in.BusinessWebsite,
		BusinessAddress:     in.BusinessAddress,
		BusinessPhone:       in.BusinessPhone,
		BusinessDescription: in.BusinessDescription,
		BusinessCategories:  strings.Join(in.BusinessCategories, ","),
		SMSNotifications:    in.Notifications,
		EmailUpdates:        in.Notifications,
		TermsAccepted:       in.TermsAccepted,
		EarlySupporter:      in.EarlySupporter,
		DemoAccessGranted:   true,
	}

	userID, created, err := svc.users.Upsert(ctx, user)
	if err != nil {
		logger.Log.Errorw("failed to upsert user", "email", in.Email, "err", err)
		return nil, err
	}

	if created {
		if in.Notifications {
			if err := svc.notifier.SendSMS(ctx, normalizedPhone,
				notifications.WelcomeMessage(fullName, in.City)); err != nil {
				logger.Log.Errorw("welcome sms failed", "phone", normalizedPhone, "err", err)
			}
		}
		return &models.SignupResult{
			UserID:  userID,
			Created: true,
			Message: "Account created successfully! Welcome to MarketPace.",
		}, nil
	}

	if err := svc.notifier.SendSMS(ctx, normalizedPhone,
		notifications.WelcomeBackMessage(fullName, in.City, accountType, in.BusinessName)); err != nil {
		logger.Log.Errorw("welcome-back sms failed", "phone", normalizedPhone, "err", err)
	}

	return &models.SignupResult{
		UserID:  userID,
		Created: false,
		Message: fmt.Sprintf("Account updated successfully! Welcome back, %s.", fullName),
	}, nil
}
