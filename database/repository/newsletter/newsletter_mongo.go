package newsletterRepo

import (
	"context"
	"fmt"
	"time"

	"autocare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoNewsletterRepo implements NewsletterRepository using MongoDB.
type MongoNewsletterRepo struct {
	coll *mongo.Collection
}

// NewMongoNewsletterRepo creates a new instance of NewsletterRepository using MongoDB.
func NewMongoNewsletterRepo(db *mongo.Database) NewsletterRepository {
	repo := &MongoNewsletterRepo{coll: db.Collection("newsletter")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoNewsletterRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "verify_token", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoNewsletterRepo) findOne(filter bson.M) (*models.NewsletterSubscription, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var sub models.NewsletterSubscription
	if err := r.coll.FindOne(ctx, filter).Decode(&sub); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch subscription: %w", err)
	}
	return &sub, nil
}

// GetByEmail retrieves a subscription by email, or nil if absent.
func (r *MongoNewsletterRepo) GetByEmail(email string) (*models.NewsletterSubscription, error) {
	return r.findOne(bson.M{"email": email})
}

// GetByToken retrieves a subscription by verify token, or nil if absent.
func (r *MongoNewsletterRepo) GetByToken(token string) (*models.NewsletterSubscription, error) {
	return r.findOne(bson.M{"verify_token": token})
}

// Create inserts a new subscription document.
func (r *MongoNewsletterRepo) Create(sub *models.NewsletterSubscription) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	sub.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, sub); err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	return nil
}

// MarkVerified flips the subscription to verified.
func (r *MongoNewsletterRepo) MarkVerified(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"verified": true, "verified_at": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to verify subscription %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("subscription with id %s not found", id)
	}
	return nil
}
