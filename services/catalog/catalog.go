package catalog

import (
	"fmt"

	catalogRepo "autocare/database/repository/catalog"
	"autocare/models"
	"autocare/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultCatalogService is the production CatalogService backed by MongoDB.
type DefaultCatalogService struct {
	Repo catalogRepo.CatalogRepository
}

func validateOffering(o models.ServiceOffering) error {
	if o.Name == "" {
		return utils.ValidationErrorf("service name is required")
	}
	if o.Price < 0 {
		return utils.ValidationErrorf("price must not be negative")
	}
	if o.Duration <= 0 {
		return utils.ValidationErrorf("duration must be positive")
	}
	return nil
}

// ListActive retrieves the customer-facing catalog.
func (s *DefaultCatalogService) ListActive() ([]models.ServiceOffering, error) {
	offerings, err := s.Repo.ListActive()
	if err != nil {
		utils.GetLogger().Error("Failed to list active offerings", zap.Error(err))
		return nil, fmt.Errorf("%w: failed to list services", utils.ErrInternal)
	}
	if offerings == nil {
		offerings = []models.ServiceOffering{}
	}
	return offerings, nil
}

// ListAll retrieves every offering for the admin view.
func (s *DefaultCatalogService) ListAll() ([]models.ServiceOffering, error) {
	offerings, err := s.Repo.ListAll()
	if err != nil {
		utils.GetLogger().Error("Failed to list offerings", zap.Error(err))
		return nil, fmt.Errorf("%w: failed to list services", utils.ErrInternal)
	}
	if offerings == nil {
		offerings = []models.ServiceOffering{}
	}
	return offerings, nil
}

// GetActive resolves an active offering. Inactive and unknown offerings are
// indistinguishable to the caller: both are NotFound.
func (s *DefaultCatalogService) GetActive(id string) (*models.ServiceOffering, error) {
	offering, err := s.Repo.GetByID(id)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch offering", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("%w: failed to fetch service", utils.ErrInternal)
	}
	if offering == nil || !offering.Active {
		return nil, fmt.Errorf("%w: active service %s", utils.ErrNotFound, id)
	}
	return offering, nil
}

// Create adds a new offering, active by default.
func (s *DefaultCatalogService) Create(offering models.ServiceOffering) (*models.ServiceOffering, error) {
	if err := validateOffering(offering); err != nil {
		return nil, err
	}

	offering.ID = uuid.New().String()
	offering.Active = true
	if err := s.Repo.Create(&offering); err != nil {
		utils.GetLogger().Error("Failed to create offering", zap.Error(err))
		return nil, fmt.Errorf("%w: failed to create service", utils.ErrInternal)
	}
	return &offering, nil
}

// Update modifies an existing offering.
func (s *DefaultCatalogService) Update(id string, offering models.ServiceOffering) (*models.ServiceOffering, error) {
	if err := validateOffering(offering); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByID(id)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch offering for update", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("%w: failed to update service", utils.ErrInternal)
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: service %s", utils.ErrNotFound, id)
	}

	offering.ID = existing.ID
	offering.CreatedAt = existing.CreatedAt
	if err := s.Repo.Update(&offering); err != nil {
		utils.GetLogger().Error("Failed to update offering", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("%w: failed to update service", utils.ErrInternal)
	}
	return &offering, nil
}

// Deactivate soft-deletes an offering. Existing bookings keep a resolvable
// service reference; the offering just stops being listed and bookable.
func (s *DefaultCatalogService) Deactivate(id string) error {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch offering for deactivation", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("%w: failed to remove service", utils.ErrInternal)
	}
	if existing == nil {
		return fmt.Errorf("%w: service %s", utils.ErrNotFound, id)
	}

	if err := s.Repo.Deactivate(id); err != nil {
		utils.GetLogger().Error("Failed to deactivate offering", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("%w: failed to remove service", utils.ErrInternal)
	}
	return nil
}
