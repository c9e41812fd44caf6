package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/marketpace/demo-accounts/internal/logger"
	"github.com/marketpace/demo-accounts/internal/services"
)

// CodeVerifier defines the interface for checking reset codes.
type CodeVerifier interface {
	VerifyCode(ctx context.Context, email, code string) (int64, error)
}

// ResetVerifyRequest represents the JSON body for verifying a reset code
// swagger:model ResetVerifyRequest
type ResetVerifyRequest struct {
	// Email
	// required: true
	Email string `json:"email"`

	// 6-digit code
	// required: true
	// default: 123456
	ResetCode string `json:"resetCode"`
}

// ResetVerifyResponse represents the outcome of code verification
// swagger:model ResetVerifyResponse
type ResetVerifyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewResetVerifyHandler returns an HTTP handler for checking a reset code
// without consuming it.
// @Summary Verify a password reset code
// @Description Checks that the code matches an unused, unexpired token for the email. The code stays valid.
// @Tags password-reset
// @Accept json
// @Produce json
// @Param verifyRequest body handlers.ResetVerifyRequest true "Verify request"
// @Success 200 {object} handlers.ResetVerifyResponse "Code is valid"
// @Failure 400 {object} handlers.ResetVerifyResponse "Wrong, used or expired code"
// @Router /api/password-reset/verify [post]
func NewResetVerifyHandler(svc CodeVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetVerifyRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ResetVerifyResponse{
				Message: "Invalid request body",
			})
			return
		}

		if req.Email == "" || req.ResetCode == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ResetVerifyResponse{
				Message: "All fields are required",
			})
			return
		}

		if _, err := svc.VerifyCode(r.Context(), req.Email, req.ResetCode); err != nil {
			switch {
			// Expired and invalid codes both deny; only the message differs.
			case errors.Is(err, services.ErrResetCodeExpired):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ResetVerifyResponse{
					Message: "Reset code has expired",
				})
			case errors.Is(err, services.ErrInvalidResetCode):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ResetVerifyResponse{
					Message: "Invalid or expired reset code",
				})
			default:
				logger.Log.Errorw("code verification failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ResetVerifyResponse{
					Message: "Error verifying reset code",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ResetVerifyResponse{
			Success: true,
			Message: "Reset code verified",
		})
	}
}
