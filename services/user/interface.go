package user

import "autocare/models"

// AuthResponse carries the user's public identity and a fresh session token.
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// UserService defines the user-facing account operations.
type UserService interface {
	// Register creates a new user and opens a first session.
	Register(input models.User) (*AuthResponse, error)
	// Authenticate verifies credentials and opens a session. Unknown email
	// and wrong password fail identically.
	Authenticate(email, password string) (*AuthResponse, error)
	// Logout revokes exactly the presented token; idempotent.
	Logout(token string) error

	// GetByID retrieves a user's profile (no secrets).
	GetByID(id string) (*models.User, error)
	// GetAll retrieves all users for the admin view.
	GetAll() ([]models.User, error)
	// UpdateProfile updates name/phone; never touches the password hash.
	UpdateProfile(id string, name, phone string) (*models.User, error)
	// ChangePassword verifies the current password and stores a new hash.
	// This is the only mutation besides Register that writes the hash.
	ChangePassword(id, current, next string) error

	// AddCar appends a car to the user's list; plates are globally unique.
	AddCar(userID string, car models.Car) (*models.Car, error)
}
