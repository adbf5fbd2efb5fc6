package spaceRepo

import (
	"context"
	"fmt"
	"time"

	"venuehub/database"
	"venuehub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSpaceRepo implements SpaceRepository using MongoDB.
type MongoSpaceRepo struct {
	coll *mongo.Collection
}

// NewMongoSpaceRepo creates a new instance of SpaceRepository using MongoDB.
func NewMongoSpaceRepo() SpaceRepository {
	coll := database.Collection("spaces")
	repo := &MongoSpaceRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoSpaceRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "host_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a space by its unique ID.
func (r *MongoSpaceRepo) GetByID(id string) (*models.Space, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var space models.Space
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&space); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch space with id %s: %w", id, err)
	}
	return &space, nil
}
