package models

import "time"

// Car is a vehicle owned by a user. License plates are unique across the
// whole platform, not just per owner.
type Car struct {
	Model        string `bson:"model" json:"model"`
	Year         int    `bson:"year" json:"year"`
	LicensePlate string `bson:"license_plate" json:"licensePlate"`
}

// User represents a registered customer.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Password     string    `bson:"-" json:"password,omitempty"` // plain text, request payloads only
	PasswordHash string    `bson:"password_hash" json:"-"`
	PhoneNumber  string    `bson:"phone_number" json:"phoneNumber"`
	Cars         []Car     `bson:"cars" json:"cars"`
	TokenHashes  []string  `bson:"token_hashes" json:"-"` // hashes of live session tokens
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}
