package admin

import "autocare/models"

// AuthResponse carries the admin's public identity and a fresh session token.
type AuthResponse struct {
	Admin *models.Admin `json:"admin"`
	Token string        `json:"token"`
}

// AdminService defines back-office authentication and provisioning. Admin
// accounts are created only by seeding, never through a public endpoint.
type AdminService interface {
	// Authenticate verifies credentials and opens a session.
	Authenticate(email, password string) (*AuthResponse, error)
	// Logout revokes exactly the presented token; other sessions survive.
	Logout(token string) error
	// Seed provisions the configured admin account if it does not exist.
	Seed(name, email, password string) error
}
