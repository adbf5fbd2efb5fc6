package models

import "time"

// Booking status values. A booking is never deleted; cancellation is a
// status transition.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

// Payment status values tracked alongside the booking status.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

// Booking represents a persisted reservation of a space.
type Booking struct {
	ID             string    `bson:"id" json:"id"`                                     // Unique booking identifier (UUID)
	SpaceID        string    `bson:"space_id" json:"space_id"`                         // Space being reserved
	ClientID       string    `bson:"client_id" json:"client_id"`                       // User who made the booking
	HostID         string    `bson:"host_id" json:"host_id"`                           // Denormalized owner of the space
	BookingDate    string    `bson:"booking_date" json:"booking_date"`                 // First booked day, "YYYY-MM-DD"
	Dates          []string  `bson:"dates" json:"dates"`                               // Every booked day, consecutive, "YYYY-MM-DD"
	BookingMode    string    `bson:"booking_mode" json:"booking_mode"`                 // "daily" or "hourly"
	DurationUnits  int       `bson:"duration_units" json:"duration_units"`             // Days (daily) or hours (hourly)
	StartTime      string    `bson:"start_time,omitempty" json:"start_time,omitempty"` // "15:04", hourly bookings only
	EndTime        string    `bson:"end_time,omitempty" json:"end_time,omitempty"`     // Hourly only; "24:00" means end of day
	GuestCount     int       `bson:"guest_count" json:"guest_count"`
	Amenities      []string  `bson:"amenities,omitempty" json:"amenities,omitempty"` // Selected add-on names
	BasePrice      float64   `bson:"base_price" json:"base_price"`
	AmenitiesPrice float64   `bson:"amenities_price" json:"amenities_price"`
	ServiceFee     float64   `bson:"service_fee" json:"service_fee"`
	TotalPrice     float64   `bson:"total_price" json:"total_price"` // base + amenities + fee, authoritative once written
	Status         string    `bson:"status" json:"status"`
	PaymentStatus  string    `bson:"payment_status" json:"payment_status"`
	PaymentRef     string    `bson:"payment_ref,omitempty" json:"payment_ref,omitempty"`       // Gateway payment reference (payment intent)
	CheckoutID     string    `bson:"checkout_id,omitempty" json:"checkout_id,omitempty"`       // Gateway checkout session id
	PaymentMethod  string    `bson:"payment_method,omitempty" json:"payment_method,omitempty"` // Method reported by the gateway
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}

// BookingDraft is the client-submitted shape of a prospective reservation.
// It is never persisted as-is; the assembler turns it into a Booking.
type BookingDraft struct {
	SpaceID       string   `json:"space_id" binding:"required"`
	Date          string   `json:"date" binding:"required"` // "YYYY-MM-DD"
	BookingMode   string   `json:"booking_mode" binding:"required"`
	DurationUnits int      `json:"duration_units" binding:"required"`
	StartTime     string   `json:"start_time,omitempty"`
	GuestCount    int      `json:"guest_count" binding:"required"`
	Amenities     []string `json:"amenities,omitempty"`
}

// BookingReceipt is returned to the caller after a successful submission.
// EffectiveDays reports the clamped run length for daily bookings so the
// client can surface a shortened-range notice.
type BookingReceipt struct {
	BookingID      string   `json:"booking_id"`
	Dates          []string `json:"dates"`
	EffectiveDays  int      `json:"effective_days"`
	BasePrice      float64  `json:"base_price"`
	AmenitiesPrice float64  `json:"amenities_price"`
	ServiceFee     float64  `json:"service_fee"`
	TotalPrice     float64  `json:"total_price"`
}

// BookingQuote is a price/availability preview computed before submission.
type BookingQuote struct {
	Available      bool     `json:"available"`
	Dates          []string `json:"dates,omitempty"`
	EffectiveUnits int      `json:"effective_units"`
	BasePrice      float64  `json:"base_price"`
	AmenitiesPrice float64  `json:"amenities_price"`
	ServiceFee     float64  `json:"service_fee"`
	TotalPrice     float64  `json:"total_price"`
}
