// File: database/repository/booking/bookingMongoQueries.go
package bookingRepo

import (
	"fmt"
	"time"

	"venuehub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// GetByClient retrieves all bookings made by a user.
func (r *MongoBookingRepo) GetByClient(clientID string) ([]models.Booking, error) {
	return r.find(bson.M{"client_id": clientID})
}

// GetBySpace retrieves all bookings against a space.
func (r *MongoBookingRepo) GetBySpace(spaceID string) ([]models.Booking, error) {
	return r.find(bson.M{"space_id": spaceID})
}

// ConfirmedDates returns the set of calendar days ("YYYY-MM-DD") covered by
// confirmed bookings for a space. Used by the availability predicate when a
// space defines no explicit allow-list.
func (r *MongoBookingRepo) ConfirmedDates(spaceID string) (map[string]struct{}, error) {
	bookings, err := r.find(bson.M{"space_id": spaceID, "status": models.BookingConfirmed})
	if err != nil {
		return nil, err
	}

	dates := make(map[string]struct{})
	for _, b := range bookings {
		for _, d := range b.Dates {
			dates[d] = struct{}{}
		}
	}
	return dates, nil
}

// FindPaidUnconfirmed returns bookings whose payment settled but whose status
// never reached confirmed. The reconciliation sweep repairs these.
func (r *MongoBookingRepo) FindPaidUnconfirmed() ([]models.Booking, error) {
	filter := bson.M{
		"payment_status": models.PaymentPaid,
		"status":         bson.M{"$nin": bson.A{models.BookingConfirmed, models.BookingCancelled}},
	}
	return r.find(filter)
}

func (r *MongoBookingRepo) find(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}
