package userRepo

import (
	"autocare/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address, or nil if absent.
	GetByEmail(email string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// UpdateProfile writes name and phone only; empty values leave the field
	// as is. Credentials and token hashes are never touched by this path.
	UpdateProfile(id string, name, phone string) error
	// SetPasswordHash replaces the stored password hash and nothing else.
	SetPasswordHash(id, hash string) error
	// GetByIDWithProjection retrieves a user by its unique ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	// GetByEmailWithProjection retrieves a user by its email with a projection.
	GetByEmailWithProjection(email string, projection bson.M) (*models.User, error)

	// AddCar appends a car to the user's car list.
	AddCar(userID string, car models.Car) error
	// PlateExists reports whether any user owns a car with the given plate.
	PlateExists(plate string) (bool, error)

	// AddTokenHash adds a session token hash to the user's live set.
	AddTokenHash(userID, hash string) error
	// RemoveTokenHash removes a single token hash; no-op if absent.
	RemoveTokenHash(userID, hash string) error
	// HasTokenHash reports whether the hash is in the user's live set.
	HasTokenHash(userID, hash string) (bool, error)
}
