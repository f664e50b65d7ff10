package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"autocare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo(db *mongo.Database) CatalogRepository {
	repo := &MongoCatalogRepo{coll: db.Collection("services")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCatalogRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "active", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves an offering by its unique ID, or nil if absent.
func (r *MongoCatalogRepo) GetByID(id string) (*models.ServiceOffering, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var offering models.ServiceOffering
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&offering); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch offering with id %s: %w", id, err)
	}
	return &offering, nil
}

func (r *MongoCatalogRepo) list(filter bson.M) ([]models.ServiceOffering, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve offerings: %w", err)
	}
	defer cursor.Close(ctx)

	var offerings []models.ServiceOffering
	for cursor.Next(ctx) {
		var o models.ServiceOffering
		if err := cursor.Decode(&o); err != nil {
			return nil, fmt.Errorf("failed to decode offering: %w", err)
		}
		offerings = append(offerings, o)
	}
	return offerings, nil
}

// ListActive retrieves offerings with the active flag set.
func (r *MongoCatalogRepo) ListActive() ([]models.ServiceOffering, error) {
	return r.list(bson.M{"active": true})
}

// ListAll retrieves every offering, active or not.
func (r *MongoCatalogRepo) ListAll() ([]models.ServiceOffering, error) {
	return r.list(bson.M{})
}

// Create inserts a new offering document.
func (r *MongoCatalogRepo) Create(offering *models.ServiceOffering) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	offering.CreatedAt = now
	offering.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, offering)
	if err != nil {
		return fmt.Errorf("failed to create offering: %w", err)
	}
	return nil
}

// Update modifies an existing offering document.
func (r *MongoCatalogRepo) Update(offering *models.ServiceOffering) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	offering.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": offering.ID}, bson.M{"$set": offering})
	if err != nil {
		return fmt.Errorf("failed to update offering with id %s: %w", offering.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("offering with id %s not found", offering.ID)
	}
	return nil
}

// Deactivate clears the active flag on an offering.
func (r *MongoCatalogRepo) Deactivate(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to deactivate offering with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("offering with id %s not found", id)
	}
	return nil
}
