package domain

// BookingPolicy is the per-salon rule configuration feeding the slot
// validator. A missing stored policy falls back to DefaultBookingPolicy.
type BookingPolicy struct {
	MinLeadTimeMinutes int
	MaxAdvanceDays     float64
	OpeningHours       OpeningHours
}

// DefaultBookingPolicy returns the policy used when none is stored.
func DefaultBookingPolicy() BookingPolicy {
	return BookingPolicy{
		MinLeadTimeMinutes: DefaultMinLeadTimeMinutes,
		MaxAdvanceDays:     DefaultMaxAdvanceDays,
		OpeningHours: OpeningHours{
			StartHour: DefaultOpeningStartHour,
			EndHour:   DefaultOpeningEndHour,
		},
	}
}

// Service represents a bookable salon service.
type Service struct {
	ID              string
	SalonID         string
	Name            string
	DurationMinutes int
	PriceChf        float64
	Active          bool
}
