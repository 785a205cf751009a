package domain

// Default booking policy, used when the salon has no stored configuration.
// Mirrors the values the booking flow was launched with.
const (
	DefaultMinLeadTimeMinutes = 60
	DefaultMaxAdvanceDays     = 90
	DefaultOpeningStartHour   = 9
	DefaultOpeningEndHour     = 19
)

// Business validation constants
const (
	MinAppointmentMinutes = 5
	MaxAppointmentMinutes = 480 // 8 hours
	MaxNoteLength         = 500
	MaxCancelReasonLength = 500
)

// Loyalty thresholds and multipliers (tier rules are in loyalty.go).
const (
	GoldVisitThreshold      = 8
	GoldSpendThresholdChf   = 1500
	SilverVisitThreshold    = 4
	SilverSpendThresholdChf = 800
	LoyaltyWindowDays       = 90
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
