package models

// CityCount is one entry of the users-by-city breakdown.
type CityCount struct {
	Name  string `json:"name" db:"city"`
	Users int    `json:"users" db:"users"`
}

// DemoStats summarizes demo signups for the admin dashboard. DemoDrivers and
// DemoShops are simulated figures shown alongside the real counts.
type DemoStats struct {
	TotalUsers      int         `json:"total_users"`
	EarlySupporters int         `json:"early_supporters"`
	Cities          []CityCount `json:"cities"`
	DemoDrivers     int         `json:"demo_drivers"`
	DemoShops       int         `json:"demo_shops"`
}

// LaunchCandidate is a user eligible for a go-live notification.
type LaunchCandidate struct {
	FullName string `json:"full_name" db:"full_name"`
	Phone    string `json:"phone" db:"phone"`
}
