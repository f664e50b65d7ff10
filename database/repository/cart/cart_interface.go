package cartRepo

import "autocare/models"

// CartRepository defines methods for cart data access. Each user has at most
// one cart document, created lazily on first add.
type CartRepository interface {
	// GetByUser retrieves the user's cart, or nil if none exists yet.
	GetByUser(userID string) (*models.Cart, error)
	// IncrementOrInsert atomically bumps the quantity of an existing line or
	// appends a new line with quantity 1, creating the cart if needed.
	IncrementOrInsert(userID, serviceID string) error
	// RemoveItem removes the whole line for a service, whatever its quantity.
	RemoveItem(userID, serviceID string) error
	// Clear empties the cart's items.
	Clear(userID string) error
}
