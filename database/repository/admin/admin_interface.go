package adminRepo

import "autocare/models"

// AdminRepository defines methods for admin data access. Admin records are
// created only via seeding; there is no delete path.
type AdminRepository interface {
	// GetByID retrieves an admin by its unique ID, or nil if absent.
	GetByID(id string) (*models.Admin, error)
	// GetByEmail retrieves an admin by its email address, or nil if absent.
	GetByEmail(email string) (*models.Admin, error)
	// Create inserts a new admin record.
	Create(admin *models.Admin) error

	// AddTokenHash adds a session token hash to the admin's live set.
	AddTokenHash(adminID, hash string) error
	// RemoveTokenHash removes a single token hash; no-op if absent.
	RemoveTokenHash(adminID, hash string) error
	// HasTokenHash reports whether the hash is in the admin's live set.
	HasTokenHash(adminID, hash string) (bool, error)
}
