package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/marketpace/demo-accounts/internal/logger"
	"github.com/marketpace/demo-accounts/internal/models"
	"github.com/marketpace/demo-accounts/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*models.Profile, error)
}

// LoginRequest represents the JSON body for demo login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: jo@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	Success bool `json:"success"`
	// default: Login successful
	Message string          `json:"message"`
	User    *models.Profile `json:"user"`
}

// LoginErrorResponse represents an error response for login
// swagger:model LoginErrorResponse
type LoginErrorResponse struct {
	Success bool `json:"success"`
	// default: Invalid credentials or user not found
	Message string `json:"message"`
}

// NewLoginHandler returns an HTTP handler for demo login.
// @Summary Demo account login
// @Description Verifies email and password against stored demo accounts and returns the profile.
// @Tags accounts
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.LoginResponse "Login successful"
// @Failure 400 {object} handlers.LoginErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.LoginErrorResponse "Unknown email or wrong password"
// @Router /api/demo-login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginErrorResponse{
				Message: "Invalid request body",
			})
			return
		}

		if req.Email == "" || req.Password == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginErrorResponse{
				Message: "Email and password are required",
			})
			return
		}

		profile, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Message: "Invalid credentials or user not found",
				})
			default:
				logger.Log.Errorw("login failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Message: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LoginResponse{
			Success: true,
			Message: "Login successful",
			User:    profile,
		})
	}
}
