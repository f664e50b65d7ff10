package newsletterRepo

import "autocare/models"

// NewsletterRepository defines methods for subscription data access.
type NewsletterRepository interface {
	// GetByEmail retrieves a subscription by email, or nil if absent.
	GetByEmail(email string) (*models.NewsletterSubscription, error)
	// GetByToken retrieves a subscription by verify token, or nil if absent.
	GetByToken(token string) (*models.NewsletterSubscription, error)
	// Create inserts a new subscription record.
	Create(sub *models.NewsletterSubscription) error
	// MarkVerified flips the subscription to verified.
	MarkVerified(id string) error
}
