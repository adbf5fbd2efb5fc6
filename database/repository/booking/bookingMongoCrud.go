// File: database/repository/booking/bookingMongoCrud.go
package bookingRepo

import (
	"fmt"
	"time"

	"venuehub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// UpdateStatus transitions a booking's status. Bookings are never deleted.
func (r *MongoBookingRepo) UpdateStatus(id string, status string) error {
	return r.set(id, bson.M{"status": status})
}

// SetCheckout records the gateway checkout session id on a booking.
func (r *MongoBookingRepo) SetCheckout(id string, checkoutID string) error {
	return r.set(id, bson.M{"checkout_id": checkoutID})
}

// ApplyPaymentOutcome writes the payment fields reported by the gateway.
// Empty Status leaves the booking status untouched (failed payments keep the
// booking pending so the client can retry).
func (r *MongoBookingRepo) ApplyPaymentOutcome(id string, outcome PaymentOutcome) error {
	doc := bson.M{"payment_status": outcome.PaymentStatus}
	if outcome.Status != "" {
		doc["status"] = outcome.Status
	}
	if outcome.PaymentMethod != "" {
		doc["payment_method"] = outcome.PaymentMethod
	}
	if outcome.PaymentRef != "" {
		doc["payment_ref"] = outcome.PaymentRef
	}
	return r.set(id, doc)
}

func (r *MongoBookingRepo) set(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updated_at"] = time.Now()
	update := bson.M{"$set": updateDoc}

	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update booking with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking with id %s not found", id)
	}
	return nil
}
