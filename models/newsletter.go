package models

import "time"

// NewsletterSubscription is a double-opt-in subscription record. Delivery of
// the verification email is out of scope; the record carries the verify token.
type NewsletterSubscription struct {
	ID          string    `bson:"id" json:"id"`
	Email       string    `bson:"email" json:"email"`
	VerifyToken string    `bson:"verify_token" json:"-"`
	Verified    bool      `bson:"verified" json:"verified"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	VerifiedAt  time.Time `bson:"verified_at,omitempty" json:"verifiedAt,omitempty"`
}
