package cartRepo

import (
	"context"
	"fmt"
	"time"

	"autocare/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCartRepo implements CartRepository using MongoDB.
type MongoCartRepo struct {
	coll *mongo.Collection
}

// NewMongoCartRepo creates a new instance of CartRepository using MongoDB.
func NewMongoCartRepo(db *mongo.Database) CartRepository {
	repo := &MongoCartRepo{coll: db.Collection("carts")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCartRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByUser retrieves the user's cart, or nil if none exists yet.
func (r *MongoCartRepo) GetByUser(userID string) (*models.Cart, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var cart models.Cart
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&cart); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch cart for user %s: %w", userID, err)
	}
	return &cart, nil
}

// IncrementOrInsert atomically bumps the quantity of an existing line or
// appends a new one. Two single-document updates instead of read-then-write,
// so concurrent adds from the same user cannot lose increments.
func (r *MongoCartRepo) IncrementOrInsert(userID, serviceID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()

	// Fast path: a line for this service already exists.
	incFilter := bson.M{"user_id": userID, "items.service_id": serviceID}
	incUpdate := bson.M{
		"$inc": bson.M{"items.$.quantity": 1},
		"$set": bson.M{"updated_at": now},
	}
	result, err := r.coll.UpdateOne(ctx, incFilter, incUpdate)
	if err != nil {
		return fmt.Errorf("failed to increment cart item for user %s: %w", userID, err)
	}
	if result.MatchedCount > 0 {
		return nil
	}

	// No such line: push one, upserting the cart document itself if missing.
	// The $ne guard keeps a concurrent add of the same service from producing
	// a duplicate line; the unique user_id index turns that race into a
	// duplicate-key error we resolve by retrying the increment.
	pushFilter := bson.M{"user_id": userID, "items.service_id": bson.M{"$ne": serviceID}}
	pushUpdate := bson.M{
		"$push": bson.M{"items": models.CartItem{ServiceID: serviceID, Quantity: 1}},
		"$set":  bson.M{"updated_at": now},
		"$setOnInsert": bson.M{
			"id":         uuid.New().String(),
			"created_at": now,
		},
	}
	_, err = r.coll.UpdateOne(ctx, pushFilter, pushUpdate, options.Update().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			_, retryErr := r.coll.UpdateOne(ctx, incFilter, incUpdate)
			if retryErr != nil {
				return fmt.Errorf("failed to increment cart item for user %s: %w", userID, retryErr)
			}
			return nil
		}
		return fmt.Errorf("failed to add cart item for user %s: %w", userID, err)
	}
	return nil
}

// RemoveItem removes the whole line for a service, whatever its quantity.
func (r *MongoCartRepo) RemoveItem(userID, serviceID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$pull": bson.M{"items": bson.M{"service_id": serviceID}},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"user_id": userID}, update)
	if err != nil {
		return fmt.Errorf("failed to remove cart item for user %s: %w", userID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("cart for user %s not found", userID)
	}
	return nil
}

// Clear empties the cart's items.
func (r *MongoCartRepo) Clear(userID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{"items": []models.CartItem{}, "updated_at": time.Now()},
	}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"user_id": userID}, update); err != nil {
		return fmt.Errorf("failed to clear cart for user %s: %w", userID, err)
	}
	return nil
}
