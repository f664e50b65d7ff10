package models

import "time"

// CartItem is one (service, quantity) line. A cart holds at most one line per
// distinct service; re-adding increments the quantity.
type CartItem struct {
	ServiceID string `bson:"service_id" json:"serviceId"`
	Quantity  int    `bson:"quantity" json:"quantity"`
}

// Cart is the per-user cart document, created lazily on first add.
type Cart struct {
	ID        string     `bson:"id" json:"id"`
	UserID    string     `bson:"user_id" json:"userId"`
	Items     []CartItem `bson:"items" json:"items"`
	CreatedAt time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updatedAt"`
}
