package validate_slot

import (
	"time"

	"github.com/carosellagiuliano-max/SWK-SalonService/internal/domain"
)

// Request asks whether a candidate slot would currently be accepted.
type Request struct {
	SalonID         string
	ServiceID       string
	StartAt         time.Time
	DurationMinutes int // 0 = use the service's configured duration
}

// Response is advisory: a later booking re-validates against fresh state
// inside its transaction.
type Response struct {
	OK      bool
	Reasons []domain.SlotViolation
}
