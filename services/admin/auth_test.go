package admin

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"autocare/models"
	"autocare/utils"
)

type fakeAdminRepo struct {
	mu     sync.Mutex
	admins map[string]*models.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[string]*models.Admin)}
}

func copyAdmin(a *models.Admin) *models.Admin {
	cp := *a
	cp.TokenHashes = append([]string(nil), a.TokenHashes...)
	return &cp
}

func (r *fakeAdminRepo) GetByID(id string) (*models.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.admins[id]; ok {
		return copyAdmin(a), nil
	}
	return nil, nil
}

func (r *fakeAdminRepo) GetByEmail(email string) (*models.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.admins {
		if a.Email == email {
			return copyAdmin(a), nil
		}
	}
	return nil, nil
}

func (r *fakeAdminRepo) Create(a *models.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now
	r.admins[a.ID] = copyAdmin(a)
	return nil
}

func (r *fakeAdminRepo) AddTokenHash(adminID, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.admins[adminID]
	if !ok {
		return fmt.Errorf("admin with id %s not found", adminID)
	}
	a.TokenHashes = append(a.TokenHashes, hash)
	return nil
}

func (r *fakeAdminRepo) RemoveTokenHash(adminID, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.admins[adminID]
	if !ok {
		return nil
	}
	var kept []string
	for _, h := range a.TokenHashes {
		if h != hash {
			kept = append(kept, h)
		}
	}
	a.TokenHashes = kept
	return nil
}

func (r *fakeAdminRepo) HasTokenHash(adminID, hash string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.admins[adminID]
	if !ok {
		return false, nil
	}
	for _, h := range a.TokenHashes {
		if h == hash {
			return true, nil
		}
	}
	return false, nil
}

func seededService(t *testing.T) (*DefaultAdminService, *fakeAdminRepo) {
	t.Helper()
	repo := newFakeAdminRepo()
	svc := &DefaultAdminService{Repo: repo}
	if err := svc.Seed("Boss", "boss@example.com", "s3cret!"); err != nil {
		t.Fatalf("seed error: %v", err)
	}
	return svc, repo
}

func TestSeedIsIdempotent(t *testing.T) {
	svc, repo := seededService(t)
	if err := svc.Seed("Boss", "boss@example.com", "s3cret!"); err != nil {
		t.Fatalf("second seed error: %v", err)
	}
	if len(repo.admins) != 1 {
		t.Fatalf("expected exactly one admin, got %d", len(repo.admins))
	}
}

func TestAdminAuthenticate(t *testing.T) {
	svc, _ := seededService(t)

	resp, err := svc.Authenticate("boss@example.com", "s3cret!")
	if err != nil {
		t.Fatalf("authenticate error: %v", err)
	}
	if resp.Token == "" || resp.Admin.Email != "boss@example.com" {
		t.Fatalf("unexpected auth response: %+v", resp)
	}
	if resp.Admin.PasswordHash != "" || resp.Admin.TokenHashes != nil {
		t.Fatalf("expected secrets stripped from response")
	}

	_, unknownErr := svc.Authenticate("nobody@example.com", "s3cret!")
	_, wrongPwErr := svc.Authenticate("boss@example.com", "nope")
	if !errors.Is(unknownErr, utils.ErrUnauthorized) || !errors.Is(wrongPwErr, utils.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for both branches, got %v / %v", unknownErr, wrongPwErr)
	}
	if unknownErr.Error() != wrongPwErr.Error() {
		t.Fatalf("expected identical error shapes, got %q vs %q", unknownErr, wrongPwErr)
	}
}

func TestAdminLogoutRevokesSingleSession(t *testing.T) {
	svc, repo := seededService(t)

	first, err := svc.Authenticate("boss@example.com", "s3cret!")
	if err != nil {
		t.Fatalf("authenticate error: %v", err)
	}
	second, err := svc.Authenticate("boss@example.com", "s3cret!")
	if err != nil {
		t.Fatalf("authenticate error: %v", err)
	}

	if err := svc.Logout(first.Token); err != nil {
		t.Fatalf("logout error: %v", err)
	}

	if live, _ := repo.HasTokenHash(first.Admin.ID, utils.HashToken(first.Token)); live {
		t.Fatalf("expected the revoked session to be gone")
	}
	if live, _ := repo.HasTokenHash(second.Admin.ID, utils.HashToken(second.Token)); !live {
		t.Fatalf("expected the concurrent session to survive")
	}
}
