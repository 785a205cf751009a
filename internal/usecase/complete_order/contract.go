package complete_order

import (
	"context"
	"time"

	"github.com/carosellagiuliano-max/SWK-SalonService/internal/domain"
	"github.com/carosellagiuliano-max/SWK-SalonService/internal/integrations/mail"
	"github.com/carosellagiuliano-max/SWK-SalonService/internal/integrations/payments"
)

// OrderStore reads orders and records payment.
type OrderStore interface {
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	MarkPaid(ctx context.Context, id string, paidAt time.Time) (bool, error)
	TotalPaidByCustomer(ctx context.Context, customerID string) (float64, error)
}

// CustomerStore reads customers and writes loyalty state.
type CustomerStore interface {
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	UpdateLoyalty(ctx context.Context, id string, tier domain.LoyaltyTier, pointsEarned int) error
}

// AppointmentStore supplies the visit aggregate for loyalty evaluation.
type AppointmentStore interface {
	CountCompletedSince(ctx context.Context, customerID string, since time.Time) (int, error)
}

// PaymentsClient verifies incoming webhook events.
type PaymentsClient interface {
	VerifyAndParseEvent(payload []byte, signature string) (*payments.Event, error)
}

// Mailer is the notification-delivery collaborator.
type Mailer interface {
	Send(ctx context.Context, to string, payload domain.NotificationContent) (*mail.DeliveryResult, error)
}

// TransactionManager runs the payment transition and the loyalty write
// atomically.
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

// MetricsRecorder counts loyalty evaluations by resulting tier.
type MetricsRecorder interface {
	IncLoyaltyEvaluation(tier string)
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
