package newsletter

import (
	"fmt"
	"strings"

	newsletterRepo "autocare/database/repository/newsletter"
	"autocare/models"
	"autocare/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NewsletterService handles double-opt-in subscriptions. Sending the
// verification email is out of scope; the verify token is stored with the
// record and redeemed through the verify endpoint.
type NewsletterService interface {
	// Subscribe stores a pending subscription for the email.
	Subscribe(email string) (*models.NewsletterSubscription, error)
	// Verify redeems a verify token; idempotent for already-verified records.
	Verify(token string) error
}

// DefaultNewsletterService is the production NewsletterService backed by MongoDB.
type DefaultNewsletterService struct {
	Repo newsletterRepo.NewsletterRepository
}

// Subscribe stores a pending subscription.
func (s *DefaultNewsletterService) Subscribe(email string) (*models.NewsletterSubscription, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, utils.ValidationErrorf("a valid email is required")
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Failed to check subscription", zap.Error(err))
		return nil, fmt.Errorf("%w: subscription failed, please try again", utils.ErrInternal)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: this email is already subscribed", utils.ErrConflict)
	}

	sub := &models.NewsletterSubscription{
		ID:          uuid.New().String(),
		Email:       email,
		VerifyToken: uuid.New().String(),
	}
	if err := s.Repo.Create(sub); err != nil {
		utils.GetLogger().Error("Failed to create subscription", zap.Error(err))
		return nil, fmt.Errorf("%w: subscription failed, please try again", utils.ErrInternal)
	}
	return sub, nil
}

// Verify redeems a verify token.
func (s *DefaultNewsletterService) Verify(token string) error {
	if token == "" {
		return utils.ValidationErrorf("verification token is required")
	}

	sub, err := s.Repo.GetByToken(token)
	if err != nil {
		utils.GetLogger().Error("Failed to look up verification token", zap.Error(err))
		return fmt.Errorf("%w: verification failed, please try again", utils.ErrInternal)
	}
	if sub == nil {
		return fmt.Errorf("%w: unknown verification token", utils.ErrNotFound)
	}
	if sub.Verified {
		return nil
	}

	if err := s.Repo.MarkVerified(sub.ID); err != nil {
		utils.GetLogger().Error("Failed to mark subscription verified", zap.Error(err))
		return fmt.Errorf("%w: verification failed, please try again", utils.ErrInternal)
	}
	return nil
}
