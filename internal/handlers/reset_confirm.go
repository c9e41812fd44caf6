package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/marketpace/demo-accounts/internal/logger"
	"github.com/marketpace/demo-accounts/internal/services"
)

// PasswordResetter defines the interface for completing a password reset.
type PasswordResetter interface {
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}

// ResetConfirmRequest represents the JSON body for completing a reset
// swagger:model ResetConfirmRequest
type ResetConfirmRequest struct {
	// Email
	// required: true
	Email string `json:"email"`

	// 6-digit code
	// required: true
	// default: 123456
	ResetCode string `json:"resetCode"`

	// New password, minimum 6 characters
	// required: true
	NewPassword string `json:"newPassword"`
}

// ResetConfirmResponse represents the outcome of a password reset
// swagger:model ResetConfirmResponse
type ResetConfirmResponse struct {
	Success bool `json:"success"`
	// default: Password reset successfully
	Message string `json:"message"`
}

// NewResetConfirmHandler returns an HTTP handler for completing a password
// reset with a verified code.
// @Summary Reset a password with a code
// @Description Verifies the code, overwrites the password and marks the code used in one transaction.
// @Tags password-reset
// @Accept json
// @Produce json
// @Param confirmRequest body handlers.ResetConfirmRequest true "Confirm request"
// @Success 200 {object} handlers.ResetConfirmResponse "Password changed"
// @Failure 400 {object} handlers.ResetConfirmResponse "Short password or bad code"
// @Router /api/password-reset/confirm [post]
func NewResetConfirmHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetConfirmRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ResetConfirmResponse{
				Message: "Invalid request body",
			})
			return
		}

		if req.Email == "" || req.ResetCode == "" || req.NewPassword == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ResetConfirmResponse{
				Message: "All fields are required",
			})
			return
		}

		if err := svc.ResetPassword(r.Context(), req.Email, req.ResetCode, req.NewPassword); err != nil {
			switch {
			case errors.Is(err, services.ErrPasswordTooShort):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ResetConfirmResponse{
					Message: "Password must be at least 6 characters long",
				})
			case errors.Is(err, services.ErrResetCodeExpired):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ResetConfirmResponse{
					Message: "Reset code has expired",
				})
			case errors.Is(err, services.ErrInvalidResetCode):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ResetConfirmResponse{
					Message: "Invalid or expired reset code",
				})
			default:
				logger.Log.Errorw("password reset failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ResetConfirmResponse{
					Message: "Error resetting password",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ResetConfirmResponse{
			Success: true,
			Message: "Password reset successfully",
		})
	}
}
