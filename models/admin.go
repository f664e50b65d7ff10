package models

import "time"

// Admin represents a back-office operator. Admins are provisioned by seeding,
// never via a registration endpoint.
//
// TokenHashes holds the SHA-256 hashes of every currently valid session token.
// A token authenticates iff its signature checks out AND its hash is still in
// this set, so a single session can be revoked server-side without touching
// the admin's other sessions.
type Admin struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	TokenHashes  []string  `bson:"token_hashes" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}
