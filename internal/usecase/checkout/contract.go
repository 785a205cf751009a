package checkout

import (
	"context"
	"time"

	"github.com/carosellagiuliano-max/SWK-SalonService/internal/domain"
	"github.com/carosellagiuliano-max/SWK-SalonService/internal/integrations/payments"
)

// VoucherStore reads and redeems vouchers.
type VoucherStore interface {
	GetByCode(ctx context.Context, code string) (*domain.Voucher, error)
	MarkRedeemed(ctx context.Context, code string, redeemedAt time.Time) error
}

// OrderStore persists shop orders.
type OrderStore interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
}

// PaymentsClient opens hosted checkout sessions.
type PaymentsClient interface {
	CreateCheckoutSession(ctx context.Context, orderID string, amountChf float64) (*payments.CheckoutSession, error)
}

// TransactionManager runs the voucher redemption and the order insert
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

// MetricsRecorder counts voucher rejections by reason.
type MetricsRecorder interface {
	IncVoucherRejection(reason string)
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
