package appointments

import (
	"context"
	"time"

	"github.com/carosellagiuliano-max/SWK-SalonService/internal/domain"
	"github.com/carosellagiuliano-max/SWK-SalonService/internal/integrations/mail"
)

// AppointmentRepository is the storage surface the service needs.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	ListByCustomer(ctx context.Context, customerID string, limit uint64) ([]*domain.Appointment, error)
	Cancel(ctx context.Context, id string, reason *string, cancelledAt time.Time) (*domain.Appointment, error)
}

// CustomerRepository resolves the customer for the cancellation email.
type CustomerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
}

// Mailer is the notification-delivery collaborator.
type Mailer interface {
	Send(ctx context.Context, to string, payload domain.NotificationContent) (*mail.DeliveryResult, error)
}

// TimeProvider supplies the current instant (injectable for tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface the service needs.
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
