package create_appointment

import (
	"context"
	"time"

	"github.com/carosellagiuliano-max/SWK-SalonService/internal/domain"
	"github.com/carosellagiuliano-max/SWK-SalonService/internal/integrations/identity"
	"github.com/carosellagiuliano-max/SWK-SalonService/internal/integrations/mail"
)

// AppointmentStore persists appointments.
type AppointmentStore interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	ListScheduledBySalon(ctx context.Context, salonID string) ([]*domain.Appointment, error)
}

// CustomerStore persists salon customers.
type CustomerStore interface {
	FindByProfile(ctx context.Context, salonID, profileID string) (*domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
}

// SalonStore reads salon configuration.
type SalonStore interface {
	GetBookingPolicy(ctx context.Context, salonID string) (*domain.BookingPolicy, error)
	GetService(ctx context.Context, salonID, serviceID string) (*domain.Service, error)
}

// IdentityClient is the identity-provider collaborator.
type IdentityClient interface {
	FindOrCreateUser(ctx context.Context, email, password, firstName, lastName string) (*identity.User, error)
}

// Mailer is the notification-delivery collaborator.
type Mailer interface {
	Send(ctx context.Context, to string, payload domain.NotificationContent) (*mail.DeliveryResult, error)
}

// TransactionManager runs the slot check and the insert atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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

// MetricsRecorder counts slot violations by kind.
type MetricsRecorder interface {
	IncSlotViolation(kind string)
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
