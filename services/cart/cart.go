package cart

import (
	"fmt"

	cartRepo "autocare/database/repository/cart"
	"autocare/models"
	"autocare/services/catalog"
	"autocare/utils"

	"go.uber.org/zap"
)

// DefaultCartService is the production CartService backed by MongoDB.
type DefaultCartService struct {
	Repo    cartRepo.CartRepository
	Catalog catalog.CatalogService
}

// Get returns the user's cart. A user without a cart gets an empty one back,
// not an error; the document itself is only created on first add.
func (s *DefaultCartService) Get(userID string) (*models.Cart, error) {
	crt, err := s.Repo.GetByUser(userID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch cart", zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("%w: failed to fetch cart", utils.ErrInternal)
	}
	if crt == nil {
		return &models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
	}
	if crt.Items == nil {
		crt.Items = []models.CartItem{}
	}
	return crt, nil
}

// AddItem increments the existing line for the service or appends a new one.
// The update is an atomic increment-or-insert, never read-then-write.
func (s *DefaultCartService) AddItem(userID, serviceID string) (*models.Cart, error) {
	if serviceID == "" {
		return nil, utils.ValidationErrorf("service id is required")
	}
	if _, err := s.Catalog.GetActive(serviceID); err != nil {
		return nil, err
	}

	if err := s.Repo.IncrementOrInsert(userID, serviceID); err != nil {
		utils.GetLogger().Error("Failed to add cart item", zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("%w: failed to add to cart", utils.ErrInternal)
	}
	return s.Get(userID)
}

// RemoveItem drops the whole line for a service, whatever its quantity.
func (s *DefaultCartService) RemoveItem(userID, serviceID string) (*models.Cart, error) {
	crt, err := s.Repo.GetByUser(userID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch cart for removal", zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("%w: failed to update cart", utils.ErrInternal)
	}
	if crt == nil {
		return nil, fmt.Errorf("%w: no cart for this user", utils.ErrNotFound)
	}

	if err := s.Repo.RemoveItem(userID, serviceID); err != nil {
		utils.GetLogger().Error("Failed to remove cart item", zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("%w: failed to update cart", utils.ErrInternal)
	}
	return s.Get(userID)
}

// Clear empties the cart. Clearing a nonexistent cart is a no-op so the
// checkout flow can call it unconditionally.
func (s *DefaultCartService) Clear(userID string) error {
	if err := s.Repo.Clear(userID); err != nil {
		utils.GetLogger().Error("Failed to clear cart", zap.String("userID", userID), zap.Error(err))
		return fmt.Errorf("%w: failed to clear cart", utils.ErrInternal)
	}
	return nil
}
