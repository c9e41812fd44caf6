package models

import "time"

// ResetTokenDB represents a row in the password_reset_tokens table.
// A token is inert once used, once expired, or once superseded by a newer
// request for the same email.
type ResetTokenDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	Email     string    `json:"email" db:"email"`           // Account the code was issued for
	ResetCode string    `json:"reset_code" db:"reset_code"` // 6-digit numeric string
	Method    string    `json:"method" db:"method"`         // email or sms
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"` // CreatedAt + 1 hour
	Used      bool      `json:"used" db:"used"`
}

// Reset delivery methods.
const (
	ResetMethodEmail = "email"
	ResetMethodSMS   = "sms"
)
