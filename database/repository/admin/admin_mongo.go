package adminRepo

import (
	"context"
	"fmt"
	"time"

	"autocare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAdminRepo implements AdminRepository using MongoDB.
type MongoAdminRepo struct {
	coll *mongo.Collection
}

// NewMongoAdminRepo creates a new instance of AdminRepository using MongoDB.
func NewMongoAdminRepo(db *mongo.Database) AdminRepository {
	repo := &MongoAdminRepo{coll: db.Collection("admins")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAdminRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves an admin by its unique ID, or nil if absent.
func (r *MongoAdminRepo) GetByID(id string) (*models.Admin, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var admin models.Admin
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&admin); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch admin with id %s: %w", id, err)
	}
	return &admin, nil
}

// GetByEmail retrieves an admin by its email address, or nil if absent.
func (r *MongoAdminRepo) GetByEmail(email string) (*models.Admin, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var admin models.Admin
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&admin); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch admin with email %s: %w", email, err)
	}
	return &admin, nil
}

// Create inserts a new admin document.
func (r *MongoAdminRepo) Create(admin *models.Admin) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	admin.CreatedAt = now
	admin.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, admin)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

// AddTokenHash adds a session token hash to the admin's live set.
func (r *MongoAdminRepo) AddTokenHash(adminID, hash string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$addToSet": bson.M{"token_hashes": hash},
		"$set":      bson.M{"updated_at": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": adminID}, update)
	if err != nil {
		return fmt.Errorf("failed to add token hash for admin %s: %w", adminID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("admin with id %s not found", adminID)
	}
	return nil
}

// RemoveTokenHash removes a single token hash; no-op if already absent.
func (r *MongoAdminRepo) RemoveTokenHash(adminID, hash string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$pull": bson.M{"token_hashes": hash},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": adminID}, update); err != nil {
		return fmt.Errorf("failed to remove token hash for admin %s: %w", adminID, err)
	}
	return nil
}

// HasTokenHash reports whether the hash is in the admin's live set.
func (r *MongoAdminRepo) HasTokenHash(adminID, hash string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"id": adminID, "token_hashes": hash})
	if err != nil {
		return false, fmt.Errorf("failed to check token hash for admin %s: %w", adminID, err)
	}
	return count > 0, nil
}
