package models

// SignupInput carries a submitted signup form into the signup workflow.
// Required: Email, Password, Phone, City, FirstName, LastName. Everything
// else is optional profile detail.
type SignupInput struct {
	Email               string
	Password            string
	Phone               string
	City                string
	Country             string
	State               string
	FirstName           string
	LastName            string
	Interests           []string
	AccountType         string
	Bio                 string
	BusinessName        string
	BusinessWebsite     string
	BusinessAddress     string
	BusinessPhone       string
	BusinessDescription string
	BusinessCategories  []string
	Notifications       bool
	TermsAccepted       bool
	EarlySupporter      bool
}

// SignupResult is the outcome of a successful signup.
type SignupResult struct {
	UserID  string // Stable id (existing id on the update path)
	Created bool   // false when an existing account was overwritten
	Message string // User-facing confirmation copy
}
