package catalogRepo

import "autocare/models"

// CatalogRepository defines methods for service-offering data access.
type CatalogRepository interface {
	// GetByID retrieves an offering by its unique ID, or nil if absent.
	GetByID(id string) (*models.ServiceOffering, error)
	// ListActive retrieves offerings with the active flag set.
	ListActive() ([]models.ServiceOffering, error)
	// ListAll retrieves every offering, active or not.
	ListAll() ([]models.ServiceOffering, error)
	// Create inserts a new offering.
	Create(offering *models.ServiceOffering) error
	// Update modifies an existing offering.
	Update(offering *models.ServiceOffering) error
	// Deactivate clears the active flag. Offerings are never hard-deleted so
	// existing bookings keep a resolvable service reference.
	Deactivate(id string) error
}
