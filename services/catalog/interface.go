package catalog

import "autocare/models"

// CatalogService defines service-offering operations. Customers only see
// active offerings; the admin surface sees everything.
type CatalogService interface {
	// ListActive retrieves the customer-facing catalog.
	ListActive() ([]models.ServiceOffering, error)
	// ListAll retrieves every offering for the admin view.
	ListAll() ([]models.ServiceOffering, error)
	// GetActive resolves an active offering or fails NotFound.
	GetActive(id string) (*models.ServiceOffering, error)
	// Create adds a new offering (active by default).
	Create(offering models.ServiceOffering) (*models.ServiceOffering, error)
	// Update modifies an existing offering.
	Update(id string, offering models.ServiceOffering) (*models.ServiceOffering, error)
	// Deactivate soft-deletes an offering by clearing the active flag.
	Deactivate(id string) error
}
