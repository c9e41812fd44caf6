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

// Signuper defines the interface that the signup service must implement.
type Signuper interface {
	Signup(ctx context.Context, in models.SignupInput) (*models.SignupResult, error)
}

// SignupRequest represents the JSON body for demo signup
// swagger:model SignupRequest
type SignupRequest struct {
	// Email
	// required: true
	// default: jo@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Phone number, any common format
	// required: true
	// default: 555-123-4567
	Phone string `json:"phone"`

	// City
	// required: true
	// default: Springfield
	City string `json:"city"`

	Country string `json:"country"`
	State   string `json:"state"`

	// First name
	// required: true
	FirstName string `json:"firstName"`

	// Last name
	// required: true
	LastName string `json:"lastName"`

	Interests           []string `json:"interests"`
	AccountType         string   `json:"accountType"`
	Bio                 string   `json:"bio"`
	BusinessName        string   `json:"businessName"`
	BusinessWebsite     string   `json:"businessWebsite"`
	BusinessAddress     string   `json:"businessAddress"`
	BusinessPhone       string   `json:"businessPhone"`
	BusinessDescription string   `json:"businessDescription"`
	BusinessCategories  []string `json:"businessCategories"`

	// The three flags default to true when omitted.
	Notifications  *bool `json:"notifications"`
	TermsAccepted  *bool `json:"termsAccepted"`
	EarlySupporter *bool `json:"earlySupporter"`
}

// SignupResponse represents a successful signup response
// swagger:model SignupResponse
type SignupResponse struct {
	// default: true
	Success bool `json:"success"`
	// default: 743173788aa9
	UserID string `json:"user_id"`
	// default: Account created successfully! Welcome to MarketPace.
	Message string `json:"message"`
}

// SignupErrorResponse represents an error response for signup
// swagger:model SignupErrorResponse
type SignupErrorResponse struct {
	Success bool `json:"success"`
	// default: Failed to create account. Please try again.
	Error string `json:"error"`
}

func defaultTrue(b *bool) bool {
	if b == nil {
		return true
	}
	return *b
}

// NewSignupHandler returns an HTTP handler for demo signup.
// @Summary Create or update a demo account
// @Description Creates a demo account. A repeated signup with the same email overwrites the profile instead of failing.
// @Tags accounts
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "Signup request"
// @Success 201 {object} handlers.SignupResponse "Account created"
// @Success 200 {object} handlers.SignupResponse "Existing account updated"
// @Failure 400 {object} handlers.SignupErrorResponse "Missing or invalid fields"
// @Failure 500 {object} handlers.SignupErrorResponse "Store failure"
// @Router /api/signup [post]
func NewSignupHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SignupErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		in := models.SignupInput{
			Email:               req.Email,
			Password:            req.Password,
			Phone:               req.Phone,
			City:                req.City,
			Country:             req.Country,
			State:               req.State,
			FirstName:           req.FirstName,
			LastName:            req.LastName,
			Interests:           req.Interests,
			AccountType:         req.AccountType,
			Bio:                 req.Bio,
			BusinessName:        req.BusinessName,
			BusinessWebsite:     req.BusinessWebsite,
			BusinessAddress:     req.BusinessAddress,
			BusinessPhone:       req.BusinessPhone,
			BusinessDescription: req.BusinessDescription,
			BusinessCategories:  req.BusinessCategories,
			Notifications:       defaultTrue(req.Notifications),
			TermsAccepted:       defaultTrue(req.TermsAccepted),
			EarlySupporter:      defaultTrue(req.EarlySupporter),
		}

		res, err := svc.Signup(r.Context(), in)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields),
				errors.Is(err, services.ErrInvalidAccountType):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SignupErrorResponse{
					Error: err.Error(),
				})
			default:
				logger.Log.Errorw("signup failed", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SignupErrorResponse{
					Error: "Failed to create account. Please try again.",
				})
			}
			return
		}

		if res.Created {
			w.WriteHeader(http.StatusCreated)
		} else {
			w.WriteHeader(http.StatusOK)
		}
		json.NewEncoder(w).Encode(SignupResponse{
			Success: true,
			UserID:  res.UserID,
			Message: res.Message,
		})
	}
}
