package models

import "time"

// Pricing modes a space can advertise.
const (
	PricingModeDaily  = "daily"
	PricingModeHourly = "hourly"
	PricingModeBoth   = "both"
)

// Amenity is a priced add-on offered by a space, charged flat per booking.
type Amenity struct {
	Name        string  `bson:"name" json:"name"`
	Price       float64 `bson:"price" json:"price"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
}

// Space represents a rentable venue listed by a host.
type Space struct {
	ID             string    `bson:"id" json:"id"`                                               // Unique space identifier (UUID)
	HostID         string    `bson:"host_id" json:"host_id"`                                     // Owning host
	Title          string    `bson:"title" json:"title"`                                         // Display title
	Description    string    `bson:"description,omitempty" json:"description,omitempty"`         // Free-form description
	Capacity       int       `bson:"capacity" json:"capacity"`                                   // Maximum guest count
	PricingMode    string    `bson:"pricing_mode" json:"pricing_mode"`                           // "daily", "hourly" or "both"
	DailyPrice     float64   `bson:"daily_price,omitempty" json:"daily_price,omitempty"`         // Price per day (daily/both)
	HourlyPrice    float64   `bson:"hourly_price,omitempty" json:"hourly_price,omitempty"`       // Price per hour (hourly/both)
	AvailableDates []string  `bson:"available_dates,omitempty" json:"available_dates,omitempty"` // Allow-list of bookable days, "YYYY-MM-DD"
	Amenities      []Amenity `bson:"amenities,omitempty" json:"amenities,omitempty"`             // Host-defined priced add-ons, ordered
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}

// AmenityPrice returns the flat price for a named add-on, or false if the
// space does not offer it.
func (s *Space) AmenityPrice(name string) (float64, bool) {
	for _, a := range s.Amenities {
		if a.Name == name {
			return a.Price, true
		}
	}
	return 0, false
}

// SupportsMode reports whether the space can be booked in the given mode.
func (s *Space) SupportsMode(mode string) bool {
	switch s.PricingMode {
	case PricingModeBoth:
		return mode == PricingModeDaily || mode == PricingModeHourly
	default:
		return mode == s.PricingMode
	}
}
