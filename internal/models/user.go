package models

import "time"

// UserDB represents a demo account row in the demo_users table.
type UserDB struct {
	UserID              string    `json:"user_id" db:"user_id"`     // Stable id derived from email
	FullName            string    `json:"full_name" db:"full_name"` // "First Last"
	Email               string    `json:"email" db:"email"`         // Unique, case-insensitive
	PasswordHash        string    `json:"-" db:"password_hash"`     // Hex digest, never plaintext
	Phone               string    `json:"phone" db:"phone"`         // Normalized number
	City                string    `json:"city" db:"city"`           // Community the account belongs to
	Country             string    `json:"country" db:"country"`
	State               string    `json:"state" db:"state"`
	Interests           string    `json:"interests" db:"interests"` // Comma-joined tags
	AccountType         string    `json:"account_type" db:"account_type"`
	Bio                 string    `json:"bio" db:"bio"`
	BusinessName        string    `json:"business_name" db:"business_name"`
	BusinessWebsite     string    `json:"business_website" db:"business_website"`
	BusinessAddress     string    `json:"business_address" db:"business_address"`
	BusinessPhone       string    `json:"business_phone" db:"business_phone"`
	BusinessDescription string    `json:"business_description" db:"business_description"`
	BusinessCategories  string    `json:"business_categories" db:"business_categories"` // Comma-joined tags
	SMSNotifications    bool      `json:"sms_notifications" db:"sms_notifications"`
	EmailUpdates        bool      `json:"email_updates" db:"email_updates"`
	TermsAccepted       bool      `json:"terms_accepted" db:"terms_accepted"`
	EarlySupporter      bool      `json:"early_supporter" db:"early_supporter"` // Pre-launch signup flag
	SignupDate          time.Time `json:"signup_date" db:"signup_date"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
	LaunchNotified      bool      `json:"launch_notified" db:"launch_notified"` // Set once the go-live text was sent
	DemoAccessGranted   bool      `json:"demo_access_granted" db:"demo_access_granted"`
}

// AccountType values.
const (
	AccountTypePersonal = "personal"
	AccountTypeBusiness = "business"
	AccountTypeDual     = "dual"
)

// Profile is the subset of a user returned to authenticated callers.
type Profile struct {
	UserID         string `json:"user_id"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	FullName       string `json:"full_name"`
	City           string `json:"city"`
	Interests      string `json:"interests"`
	EarlySupporter bool   `json:"early_supporter"`
	SignupDate     string `json:"signup_date"`
}
