package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/marketpace/demo-accounts/internal/logger"
	"github.com/marketpace/demo-accounts/internal/models"
	"github.com/marketpace/demo-accounts/internal/services"
)

// ResetRequester defines the interface for issuing reset codes.
type ResetRequester interface {
	RequestReset(ctx context.Context, email, method string) error
}

// ResetRequestRequest represents the JSON body for requesting a reset code
// swagger:model ResetRequestRequest
type ResetRequestRequest struct {
	// Email
	// required: true
	// default: jo@example.com
	Email string `json:"email"`

	// Delivery method, email or sms. Defaults to email.
	// default: email
	Method string `json:"method"`
}

// ResetRequestResponse represents the outcome of a reset-code request
// swagger:model ResetRequestResponse
type ResetRequestResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// methodText names the channel in user-facing copy.
func methodText(method string) string {
	if method == models.ResetMethodSMS {
		return "phone"
	}
	return "email"
}

// NewResetRequestHandler returns an HTTP handler for requesting a password
// reset code.
// @Summary Request a password reset code
// @Description Issues a 6-digit code, superseding any pending code for the email, and sends it via email or SMS.
// @Tags password-reset
// @Accept json
// @Produce json
// @Param resetRequest body handlers.ResetRequestRequest true "Reset request"
// @Success 200 {object} handlers.ResetRequestResponse "Code sent"
// @Failure 400 {object} handlers.ResetRequestResponse "Missing email or invalid method"
// @Failure 404 {object} handlers.ResetRequestResponse "Unknown email"
// @Failure 502 {object} handlers.ResetRequestResponse "Code persisted but delivery failed"
// @Router /api/password-reset/request [post]
func NewResetRequestHandler(svc ResetRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetRequestRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ResetRequestResponse{
				Message: "Invalid request body",
			})
			return
		}

		if req.Email == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ResetRequestResponse{
				Message: "Email is required",
			})
			return
		}
		if req.Method == "" {
			req.Method = models.ResetMethodEmail
		}

		if err := svc.RequestReset(r.Context(), req.Email, req.Method); err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidResetMethod):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ResetRequestResponse{
					Message: "Invalid reset method",
				})
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ResetRequestResponse{
					Message: "User not found",
				})
			case errors.Is(err, services.ErrDelivery):
				w.WriteHeader(http.StatusBadGateway)
				json.NewEncoder(w).Encode(ResetRequestResponse{
					Message: fmt.Sprintf("Failed to send reset code via %s", req.Method),
				})
			default:
				logger.Log.Errorw("reset request failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ResetRequestResponse{
					Message: "Error processing reset request",
				})
			}
			return
		}

		mt := methodText(req.Method)
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ResetRequestResponse{
			Success: true,
			Message: fmt.Sprintf("Reset code sent to your %s. Check your %s and enter the 6-digit code.", mt, mt),
		})
	}
}
