package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/marketpace/demo-accounts/internal/identity"
	"github.com/marketpace/demo-accounts/internal/logger"
	"github.com/marketpace/demo-accounts/internal/models"
	"github.com/marketpace/demo-accounts/internal/notifications"
)

// Error variables for the password reset workflow.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidResetMethod = errors.New("invalid reset method")
	ErrInvalidResetCode   = errors.New("invalid or expired reset code")
	ErrResetCodeExpired   = errors.New("reset code has expired")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters long")
	ErrDelivery           = errors.New("failed to send reset code")
)

// Reset codes expire one hour after issue.
const tokenTTL = time.Hour

// UserReader defines the account lookup the reset workflow needs.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// TokenReader defines read operations for reset tokens.
type TokenReader interface {
	GetActive(ctx context.Context, email, code string) (*models.ResetTokenDB, error)
}

// TokenWriter defines write operations for reset tokens.
type TokenWriter interface {
	Create(ctx context.Context, email, code, method string, expiresAt time.Time) error
	Consume(ctx context.Context, tokenID int64, email, passwordHash string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// ResetService drives the reset-token lifecycle: issue, verify, consume,
// purge. Two concurrent RequestReset calls for one email are not serialized;
// each supersedes the other's pending token and the loser's code stops
// verifying. Callers retry by requesting a fresh code.
type ResetService struct {
	users    UserReader
	tokens   TokenReader
	writer   TokenWriter
	notifier Notifier

	now     func() time.Time // seam for expiry tests
	randInt func(int) int    // seam for deterministic codes in tests
}

// NewResetService creates a new ResetService instance.
func NewResetService(users UserReader, tokens TokenReader, writer TokenWriter, notifier Notifier) *ResetService {
	return &ResetService{
		users:    users,
		tokens:   tokens,
		writer:   writer,
		notifier: notifier,
		now:      time.Now,
		randInt:  rand.Intn,
	}
}

// generateCode draws a 6-digit code uniformly from 000000-999999.
func (svc *ResetService) generateCode() string {
	return fmt.Sprintf("%06d", svc.randInt(1000000))
}

// RequestReset issues a fresh reset code for the email and dispatches it
// over the requested channel. The token is persisted before dispatch is
// attempted, so a delivery failure leaves a valid pending token behind; the
// caller is told delivery failed and may simply request another code.
func (svc *ResetService) RequestReset(ctx context.Context, email, method string) error {
	if method != models.ResetMethodEmail && method != models.ResetMethodSMS {
		return ErrInvalidResetMethod
	}

	user, err := svc.users.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to look up user for reset", "email", email, "err", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	code := svc.generateCode()
	expiresAt := svc.now().Add(tokenTTL)

	if err := svc.writer.Create(ctx, email, code, method, expiresAt); err != nil {
		logger.Log.Errorw("failed to persist reset token", "email", email, "err", err)
		return err
	}

	body := notifications.ResetCodeMessage(code)
	if method == models.ResetMethodEmail {
		err = svc.notifier.SendEmail(ctx, user.Email, notifications.ResetCodeSubject, body)
	} else {
		err = svc.notifier.SendSMS(ctx, user.Phone, body)
	}
	if err != nil {
		logger.Log.Errorw("reset code dispatch failed", "email", email, "method", method, "err", err)
		return fmt.Errorf("%w via %s", ErrDelivery, method)
	}

	return nil
}

// VerifyCode checks that an unused, unexpired token matches the email/code
// pair and returns its id. Expired and unknown codes both deny the reset;
// only the message differs.
func (svc *ResetService) VerifyCode(ctx context.Context, email, code string) (int64, error) {
	token, err := svc.tokens.GetActive(ctx, email, code)
	if err != nil {
		logger.Log.Errorw("failed to look up reset token", "email", email, "err", err)
		return 0, err
	}
	if token == nil {
		return 0, ErrInvalidResetCode
	}
	if svc.now().After(token.ExpiresAt) {
		return 0, ErrResetCodeExpired
	}
	return token.ID, nil
}

// ResetPassword re-verifies the code, then overwrites the password digest
// and marks the token used in a single transaction.
func (svc *ResetService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if len(newPassword) < 6 {
		return ErrPasswordTooShort
	}

	tokenID, err := svc.VerifyCode(ctx, email, code)
	if err != nil {
		return err
	}

	if err := svc.writer.Consume(ctx, tokenID, email, identity.HashPassword(newPassword)); err != nil {
		logger.Log.Errorw("failed to consume reset token", "email", email, "err", err)
		return err
	}
	return nil
}

// CleanupExpired purges every expired token. Safe to run at any time.
func (svc *ResetService) CleanupExpired(ctx context.Context) error {
	_, err := svc.writer.DeleteExpired(ctx)
	if err != nil {
		logger.Log.Errorw("failed to purge expired tokens", "err", err)
	}
	return err
}
