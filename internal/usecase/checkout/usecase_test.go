package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carosellagiuliano-max/SWK-SalonService/internal/domain"
	voucherStore "github.com/carosellagiuliano-max/SWK-SalonService/internal/infra/storage/voucher"
	"github.com/carosellagiuliano-max/SWK-SalonService/internal/integrations/payments"
	"github.com/carosellagiuliano-max/SWK-SalonService/pkg/metrics"
	"github.com/carosellagiuliano-max/SWK-SalonService/pkg/ptr"
)

var testNow = time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type nopTx struct{}

func (nopTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeVouchers struct {
	voucher     *domain.Voucher
	redeemedAt  *time.Time
	markErr     error
	markedCodes []string
}

func (f *fakeVouchers) GetByCode(_ context.Context, code string) (*domain.Voucher, error) {
	if f.voucher == nil || f.voucher.Code != code {
		return nil, voucherStore.ErrVoucherNotFound
	}
	v := *f.voucher
	return &v, nil
}

func (f *fakeVouchers) MarkRedeemed(_ context.Context, code string, redeemedAt time.Time) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.markedCodes = append(f.markedCodes, code)
	f.redeemedAt = &redeemedAt
	return nil
}

type fakeOrders struct {
	created []*domain.Order
}

func (f *fakeOrders) Create(_ context.Context, o *domain.Order) (*domain.Order, error) {
	o.ID = "order-1"
	o.CreatedAt = testNow
	f.created = append(f.created, o)
	return o, nil
}

type fakePayments struct {
	sessions []string
	amounts  []float64
}

func (f *fakePayments) CreateCheckoutSession(_ context.Context, orderID string, amountChf float64) (*payments.CheckoutSession, error) {
	f.sessions = append(f.sessions, orderID)
	f.amounts = append(f.amounts, amountChf)
	return &payments.CheckoutSession{ID: "sess-1", URL: "https://pay.example/sess-1"}, nil
}

type fixture struct {
	uc       *UseCase
	vouchers *fakeVouchers
	orders   *fakeOrders
	payments *fakePayments
}

func newFixture(vouchers *fakeVouchers) *fixture {
	orders := &fakeOrders{}
	pay := &fakePayments{}
	uc := NewUseCase(vouchers, orders, pay, nopTx{}, metrics.Nop{}, nopLogger{})
	uc.timeProvider = fixedClock{now: testNow}
	return &fixture{uc: uc, vouchers: vouchers, orders: orders, payments: pay}
}

func validVoucher() *domain.Voucher {
	return &domain.Voucher{
		Code:      "SOMMER25",
		AmountChf: 20,
		ExpiresAt: testNow.AddDate(0, 1, 0),
	}
}

func TestExecute_WithoutVoucher(t *testing.T) {
	f := newFixture(&fakeVouchers{})

	resp, err := f.uc.Execute(context.Background(), &Request{
		SalonID:    "salon-1",
		CustomerID: "customer-1",
		TotalChf:   120,
	})

	require.NoError(t, err)
	assert.Equal(t, "order-1", resp.OrderID)
	assert.Equal(t, 0.0, resp.VoucherApplied)
	assert.Equal(t, 120.0, resp.AmountDue)
	assert.Equal(t, "https://pay.example/sess-1", resp.CheckoutURL)

	require.Len(t, f.orders.created, 1)
	assert.Equal(t, domain.OrderPending, f.orders.created[0].Status)
	assert.Empty(t, f.vouchers.markedCodes)
}

func TestExecute_AppliesVoucher(t *testing.T) {
	f := newFixture(&fakeVouchers{voucher: validVoucher()})

	resp, err := f.uc.Execute(context.Background(), &Request{
		SalonID:     "salon-1",
		CustomerID:  "customer-1",
		TotalChf:    120,
		VoucherCode: ptr.Ptr("SOMMER25"),
	})

	require.NoError(t, err)
	assert.Equal(t, 20.0, resp.VoucherApplied)
	assert.Equal(t, 100.0, resp.AmountDue)

	require.Len(t, f.orders.created, 1)
	assert.Equal(t, 100.0, f.orders.created[0].TotalChf, "order carries the amount due after the voucher")
	assert.Equal(t, []string{"SOMMER25"}, f.vouchers.markedCodes)
	require.NotNil(t, f.vouchers.redeemedAt)
	assert.Equal(t, testNow, *f.vouchers.redeemedAt)
	assert.Equal(t, []float64{100.0}, f.payments.amounts)
}

func TestExecute_VoucherCoversFullTotal(t *testing.T) {
	voucher := validVoucher()
	voucher.AmountChf = 200
	f := newFixture(&fakeVouchers{voucher: voucher})

	resp, err := f.uc.Execute(context.Background(), &Request{
		SalonID:     "salon-1",
		CustomerID:  "customer-1",
		TotalChf:    80.50,
		VoucherCode: ptr.Ptr("SOMMER25"),
	})

	require.NoError(t, err)
	assert.Equal(t, 80.50, resp.VoucherApplied, "application caps at the order total")
	assert.Equal(t, 0.0, resp.AmountDue)
	assert.Empty(t, resp.CheckoutURL, "nothing left to charge")
	assert.Empty(t, f.payments.sessions)
}

func TestExecute_RejectsRedeemedVoucher(t *testing.T) {
	voucher := validVoucher()
	voucher.Redeemed = true
	f := newFixture(&fakeVouchers{voucher: voucher})

	_, err := f.uc.Execute(context.Background(), &Request{
		SalonID:     "salon-1",
		CustomerID:  "customer-1",
		TotalChf:    120,
		VoucherCode: ptr.Ptr("SOMMER25"),
	})

	var rejected *VoucherRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, domain.VoucherAlreadyRedeemed, rejected.Reason)
	assert.Empty(t, f.orders.created, "no order on rejection")
	assert.Empty(t, f.payments.sessions)
}

func TestExecute_RejectsExpiredVoucher(t *testing.T) {
	voucher := validVoucher()
	voucher.ExpiresAt = testNow.AddDate(0, 0, -1)
	f := newFixture(&fakeVouchers{voucher: voucher})

	_, err := f.uc.Execute(context.Background(), &Request{
		SalonID:     "salon-1",
		CustomerID:  "customer-1",
		TotalChf:    120,
		VoucherCode: ptr.Ptr("SOMMER25"),
	})

	var rejected *VoucherRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, domain.VoucherExpired, rejected.Reason)
}

func TestExecute_RejectsZeroTotalWithVoucher(t *testing.T) {
	f := newFixture(&fakeVouchers{voucher: validVoucher()})

	_, err := f.uc.Execute(context.Background(), &Request{
		SalonID:     "salon-1",
		CustomerID:  "customer-1",
		TotalChf:    0,
		VoucherCode: ptr.Ptr("SOMMER25"),
	})

	var rejected *VoucherRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, domain.VoucherOrderTotalIsZero, rejected.Reason)
}

func TestExecute_LostRedemptionRace(t *testing.T) {
	vouchers := &fakeVouchers{voucher: validVoucher(), markErr: voucherStore.ErrAlreadyRedeemed}
	f := newFixture(vouchers)

	_, err := f.uc.Execute(context.Background(), &Request{
		SalonID:     "salon-1",
		CustomerID:  "customer-1",
		TotalChf:    120,
		VoucherCode: ptr.Ptr("SOMMER25"),
	})

	var rejected *VoucherRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, domain.VoucherAlreadyRedeemed, rejected.Reason)
	assert.Empty(t, f.payments.sessions)
}

func TestExecute_VoucherNotFound(t *testing.T) {
	f := newFixture(&fakeVouchers{})

	_, err := f.uc.Execute(context.Background(), &Request{
		SalonID:     "salon-1",
		CustomerID:  "customer-1",
		TotalChf:    120,
		VoucherCode: ptr.Ptr("NOPE"),
	})

	require.ErrorIs(t, err, ErrVoucherNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture(&fakeVouchers{})

	_, err := f.uc.Execute(context.Background(), &Request{
		SalonID:    "salon-1",
		CustomerID: "customer-1",
		TotalChf:   0,
	})

	require.ErrorIs(t, err, ErrInvalidInput, "zero total without voucher is a shape error")
}
