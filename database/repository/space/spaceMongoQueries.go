// File: database/repository/space/spaceMongoQueries.go
package spaceRepo

import (
	"fmt"
	"time"

	"venuehub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// GetAll retrieves every listed space.
func (r *MongoSpaceRepo) GetAll() ([]models.Space, error) {
	return r.find(bson.M{})
}

// GetByHost retrieves all spaces owned by a host.
func (r *MongoSpaceRepo) GetByHost(hostID string) ([]models.Space, error) {
	return r.find(bson.M{"host_id": hostID})
}

func (r *MongoSpaceRepo) find(filter bson.M) ([]models.Space, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve spaces: %w", err)
	}
	defer cursor.Close(ctx)

	var spaces []models.Space
	for cursor.Next(ctx) {
		var s models.Space
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode space: %w", err)
		}
		spaces = append(spaces, s)
	}
	return spaces, nil
}
