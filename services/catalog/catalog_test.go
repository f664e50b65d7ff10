package catalog

import (
	"errors"
	"sync"
	"testing"
	"time"

	"autocare/models"
	"autocare/utils"
)

type fakeCatalogRepo struct {
	mu        sync.Mutex
	offerings map[string]*models.ServiceOffering
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{offerings: make(map[string]*models.ServiceOffering)}
}

func (r *fakeCatalogRepo) GetByID(id string) (*models.ServiceOffering, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if off, ok := r.offerings[id]; ok {
		cp := *off
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeCatalogRepo) ListActive() ([]models.ServiceOffering, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.ServiceOffering
	for _, off := range r.offerings {
		if off.Active {
			out = append(out, *off)
		}
	}
	return out, nil
}

func (r *fakeCatalogRepo) ListAll() ([]models.ServiceOffering, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.ServiceOffering
	for _, off := range r.offerings {
		out = append(out, *off)
	}
	return out, nil
}

func (r *fakeCatalogRepo) Create(off *models.ServiceOffering) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	off.CreatedAt = now
	off.UpdatedAt = now
	cp := *off
	r.offerings[off.ID] = &cp
	return nil
}

func (r *fakeCatalogRepo) Update(off *models.ServiceOffering) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	off.UpdatedAt = time.Now()
	cp := *off
	r.offerings[off.ID] = &cp
	return nil
}

func (r *fakeCatalogRepo) Deactivate(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if off, ok := r.offerings[id]; ok {
		off.Active = false
		off.UpdatedAt = time.Now()
	}
	return nil
}

func validOffering() models.ServiceOffering {
	return models.ServiceOffering{
		Name:        "Oil Change",
		Description: "Full synthetic oil change",
		Price:       49.90,
		Duration:    45,
	}
}

func TestCreateActivatesOffering(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newFakeCatalogRepo()}

	created, err := svc.Create(validOffering())
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if created.ID == "" || !created.Active {
		t.Fatalf("expected an active offering with an id, got %+v", created)
	}

	got, err := svc.GetActive(created.ID)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if got.Name != "Oil Change" {
		t.Fatalf("unexpected offering: %+v", got)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newFakeCatalogRepo()}

	off := validOffering()
	off.Name = ""
	if _, err := svc.Create(off); !errors.Is(err, utils.ErrValidation) {
		t.Fatalf("expected validation error for missing name, got %v", err)
	}

	off = validOffering()
	off.Price = -1
	if _, err := svc.Create(off); !errors.Is(err, utils.ErrValidation) {
		t.Fatalf("expected validation error for negative price, got %v", err)
	}

	off = validOffering()
	off.Duration = 0
	if _, err := svc.Create(off); !errors.Is(err, utils.ErrValidation) {
		t.Fatalf("expected validation error for zero duration, got %v", err)
	}
}

func TestDeactivateHidesFromCustomers(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newFakeCatalogRepo()}

	created, err := svc.Create(validOffering())
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if err := svc.Deactivate(created.ID); err != nil {
		t.Fatalf("deactivate error: %v", err)
	}

	// Inactive and unknown look the same to customers.
	if _, err := svc.GetActive(created.ID); !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("expected not found for deactivated offering, got %v", err)
	}
	active, err := svc.ListActive()
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("expected empty customer catalog, got %+v", active)
	}

	// The admin view still sees the record.
	all, err := svc.ListAll()
	if err != nil {
		t.Fatalf("list all error: %v", err)
	}
	if len(all) != 1 || all[0].Active {
		t.Fatalf("expected one inactive offering in the admin view, got %+v", all)
	}
}

func TestDeactivateUnknownNotFound(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newFakeCatalogRepo()}
	if err := svc.Deactivate("missing"); !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateKeepsIdentity(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newFakeCatalogRepo()}

	created, err := svc.Create(validOffering())
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	changed := validOffering()
	changed.Price = 59.90
	changed.Active = true
	updated, err := svc.Update(created.ID, changed)
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("expected the id preserved, got %s", updated.ID)
	}
	if updated.Price != 59.90 {
		t.Fatalf("expected the new price, got %v", updated.Price)
	}

	if _, err := svc.Update("missing", changed); !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("expected not found for unknown offering, got %v", err)
	}
}
