package paymentConfigRepo

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

// The platform keeps a single credentials document; the mode field selects
// which key is live.
const configDocID = "stripe_config"

// MongoPaymentConfigRepo implements PaymentConfigRepository using MongoDB.
type MongoPaymentConfigRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentConfigRepo creates a new instance of PaymentConfigRepository using MongoDB.
func NewMongoPaymentConfigRepo() PaymentConfigRepository {
	coll := database.Collection("stripe_config")
	return &MongoPaymentConfigRepo{coll: coll}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Upsert stores the credentials document, creating it on first save.
func (r *MongoPaymentConfigRepo) Upsert(cfg *models.PaymentConfig) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cfg.UpdatedAt = time.Now()
	filter := bson.M{"_id": configDocID}
	update := bson.M{"$set": cfg}
	opts := options.Update().SetUpsert(true)

	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to save payment config: %w", err)
	}
	return nil
}

// Get retrieves the credentials document. Returns nil, nil when never saved.
func (r *MongoPaymentConfigRepo) Get() (*models.PaymentConfig, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var cfg models.PaymentConfig
	if err := r.coll.FindOne(ctx, bson.M{"_id": configDocID}).Decode(&cfg); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch payment config: %w", err)
	}
	return &cfg, nil
}
