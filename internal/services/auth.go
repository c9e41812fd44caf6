package services

import (
	"context"
	"errors"

	"github.com/marketpace/demo-accounts/internal/identity"
	"github.com/marketpace/demo-accounts/internal/logger"
	"github.com/marketpace/demo-accounts/internal/models"
)

// ErrInvalidCredentials means no account matched the email/password pair.
var ErrInvalidCredentials = errors.New("invalid credentials or user not found")

// CredentialReader defines the credential lookup the login workflow needs.
type CredentialReader interface {
	GetByCredentials(ctx context.Context, email, passwordHash string) (*models.UserDB, error)
}

// AuthService verifies demo-account credentials.
type AuthService struct {
	users CredentialReader
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users CredentialReader) *AuthService {
	return &AuthService{users: users}
}

// Login matches the email (case-insensitive) and the password digest and
// returns the account profile. Every demo account is an early supporter.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.Profile, error) {
	user, err := svc.users.GetByCredentials(ctx, email, identity.HashPassword(password))
	if err != nil {
		logger.Log.Errorw("failed to look up credentials", "email", email, "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Infow("login rejected", "email", email)
		return nil, ErrInvalidCredentials
	}

	return &models.Profile{
		UserID:         user.UserID,
		Email:          user.Email,
		Phone:          user.Phone,
		FullName:       user.FullName,
		City:           user.City,
		Interests:      user.Interests,
		EarlySupporter: true,
		SignupDate:     user.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}
