package validate_slot

import (
	"context"
	"time"

	"github.com/carosellagiuliano-max/SWK-SalonService/internal/domain"
)

// AppointmentStore lists the slots a candidate must not overlap.
type AppointmentStore interface {
	ListScheduledBySalon(ctx context.Context, salonID string) ([]*domain.Appointment, error)
}

// SalonStore reads salon configuration.
type SalonStore interface {
	GetBookingPolicy(ctx context.Context, salonID string) (*domain.BookingPolicy, error)
	GetService(ctx context.Context, salonID, serviceID string) (*domain.Service, error)
}

// TimeProvider supplies the current instant (injectable for tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface the usecase needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
