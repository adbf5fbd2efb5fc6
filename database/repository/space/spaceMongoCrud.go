// File: database/repository/space/spaceMongoCrud.go
package spaceRepo

import (
	"fmt"
	"time"

	"venuehub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new space document.
func (r *MongoSpaceRepo) Create(space *models.Space) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	space.CreatedAt = now
	space.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, space)
	if err != nil {
		return fmt.Errorf("failed to create space: %w", err)
	}
	return nil
}

// Update modifies an existing space document.
func (r *MongoSpaceRepo) Update(space *models.Space) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	space.UpdatedAt = time.Now()
	filter := bson.M{"id": space.ID}
	update := bson.M{"$set": space}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update space with id %s: %w", space.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("space with id %s not found", space.ID)
	}
	return nil
}

// UpdateSetDocument applies a partial $set update to a space document.
func (r *MongoSpaceRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updated_at"] = time.Now()
	update := bson.M{"$set": updateDoc}

	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update space with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("space with id %s not found", id)
	}
	return nil
}

// Delete removes a space document by its ID.
func (r *MongoSpaceRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete space with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("space with id %s not found", id)
	}
	return nil
}

// SetAvailableDates replaces the availability allow-list of a space.
func (r *MongoSpaceRepo) SetAvailableDates(id string, dates []string) error {
	return r.UpdateSetDocument(id, bson.M{"available_dates": dates})
}
