package cart

import "autocare/models"

// CartService defines the per-user cart operations.
type CartService interface {
	// Get returns the user's cart; an empty cart if none exists yet.
	Get(userID string) (*models.Cart, error)
	// AddItem increments the line for an active service or appends a new
	// line with quantity 1, creating the cart lazily.
	AddItem(userID, serviceID string) (*models.Cart, error)
	// RemoveItem drops the whole line for a service; NotFound without a cart.
	RemoveItem(userID, serviceID string) (*models.Cart, error)
	// Clear empties the cart, as the checkout flow requires.
	Clear(userID string) error
}
