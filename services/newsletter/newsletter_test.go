package newsletter

import (
	"errors"
	"sync"
	"testing"
	"time"

	"autocare/models"
	"autocare/utils"
)

type fakeNewsletterRepo struct {
	mu   sync.Mutex
	subs map[string]*models.NewsletterSubscription
}

func newFakeNewsletterRepo() *fakeNewsletterRepo {
	return &fakeNewsletterRepo{subs: make(map[string]*models.NewsletterSubscription)}
}

func (r *fakeNewsletterRepo) GetByEmail(email string) (*models.NewsletterSubscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, sub := range r.subs {
		if sub.Email == email {
			cp := *sub
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeNewsletterRepo) GetByToken(token string) (*models.NewsletterSubscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, sub := range r.subs {
		if sub.VerifyToken == token {
			cp := *sub
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeNewsletterRepo) Create(sub *models.NewsletterSubscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	sub.CreatedAt = time.Now()
	cp := *sub
	r.subs[sub.ID] = &cp
	return nil
}

func (r *fakeNewsletterRepo) MarkVerified(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if sub, ok := r.subs[id]; ok {
		sub.Verified = true
	}
	return nil
}

func TestSubscribeAndVerify(t *testing.T) {
	repo := newFakeNewsletterRepo()
	svc := &DefaultNewsletterService{Repo: repo}

	sub, err := svc.Subscribe("  Reader@Example.COM ")
	if err != nil {
		t.Fatalf("subscribe error: %v", err)
	}
	if sub.Email != "reader@example.com" {
		t.Fatalf("expected normalized email, got %s", sub.Email)
	}
	if sub.VerifyToken == "" || sub.Verified {
		t.Fatalf("expected an unverified record with a token, got %+v", sub)
	}

	if err := svc.Verify(sub.VerifyToken); err != nil {
		t.Fatalf("verify error: %v", err)
	}
	stored, err := repo.GetByEmail("reader@example.com")
	if err != nil || stored == nil || !stored.Verified {
		t.Fatalf("expected the record verified, got %+v (err=%v)", stored, err)
	}

	// Redeeming the same token again is a quiet no-op.
	if err := svc.Verify(sub.VerifyToken); err != nil {
		t.Fatalf("expected idempotent verify, got %v", err)
	}
}

func TestSubscribeDuplicateConflicts(t *testing.T) {
	svc := &DefaultNewsletterService{Repo: newFakeNewsletterRepo()}

	if _, err := svc.Subscribe("reader@example.com"); err != nil {
		t.Fatalf("subscribe error: %v", err)
	}
	// Same address in different casing is still the same subscription.
	_, err := svc.Subscribe("READER@example.com")
	if !errors.Is(err, utils.ErrConflict) {
		t.Fatalf("expected conflict for duplicate email, got %v", err)
	}
}

func TestSubscribeValidation(t *testing.T) {
	svc := &DefaultNewsletterService{Repo: newFakeNewsletterRepo()}

	if _, err := svc.Subscribe(""); !errors.Is(err, utils.ErrValidation) {
		t.Fatalf("expected validation error for empty email, got %v", err)
	}
	if _, err := svc.Subscribe("not-an-email"); !errors.Is(err, utils.ErrValidation) {
		t.Fatalf("expected validation error for malformed email, got %v", err)
	}
}

func TestVerifyUnknownToken(t *testing.T) {
	svc := &DefaultNewsletterService{Repo: newFakeNewsletterRepo()}

	if err := svc.Verify("nope"); !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("expected not found for unknown token, got %v", err)
	}
	if err := svc.Verify(""); !errors.Is(err, utils.ErrValidation) {
		t.Fatalf("expected validation error for empty token, got %v", err)
	}
}
