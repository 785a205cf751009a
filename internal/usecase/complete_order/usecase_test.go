package complete_order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carosellagiuliano-max/SWK-SalonService/internal/domain"
	orderStore "github.com/carosellagiuliano-max/SWK-SalonService/internal/infra/storage/order"
	"github.com/carosellagiuliano-max/SWK-SalonService/internal/integrations/mail"
	paymentsClient "github.com/carosellagiuliano-max/SWK-SalonService/internal/integrations/payments"
	"github.com/carosellagiuliano-max/SWK-SalonService/pkg/metrics"
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

type fakeVerifier struct {
	event *paymentsClient.Event
	err   error
}

func (f *fakeVerifier) VerifyAndParseEvent([]byte, string) (*paymentsClient.Event, error) {
	return f.event, f.err
}

type loyaltyWrite struct {
	tier   domain.LoyaltyTier
	points int
}

type fakeOrders struct {
	order       *domain.Order
	alreadyPaid bool
	totalPaid   float64
	paidAt      *time.Time
}

func (f *fakeOrders) GetByID(_ context.Context, id string) (*domain.Order, error) {
	if f.order == nil || f.order.ID != id {
		return nil, orderStore.ErrOrderNotFound
	}
	o := *f.order
	return &o, nil
}

func (f *fakeOrders) MarkPaid(_ context.Context, _ string, paidAt time.Time) (bool, error) {
	if f.alreadyPaid {
		return false, nil
	}
	f.paidAt = &paidAt
	return true, nil
}

func (f *fakeOrders) TotalPaidByCustomer(context.Context, string) (float64, error) {
	return f.totalPaid, nil
}

type fakeCustomers struct {
	customer *domain.Customer
	writes   []loyaltyWrite
}

func (f *fakeCustomers) GetByID(context.Context, string) (*domain.Customer, error) {
	c := *f.customer
	return &c, nil
}

func (f *fakeCustomers) UpdateLoyalty(_ context.Context, _ string, tier domain.LoyaltyTier, pointsEarned int) error {
	f.writes = append(f.writes, loyaltyWrite{tier: tier, points: pointsEarned})
	return nil
}

type fakeAppointments struct {
	visits int
}

func (f *fakeAppointments) CountCompletedSince(context.Context, string, time.Time) (int, error) {
	return f.visits, nil
}

type fakeMailer struct {
	sent []domain.NotificationContent
}

func (f *fakeMailer) Send(_ context.Context, _ string, payload domain.NotificationContent) (*mail.DeliveryResult, error) {
	f.sent = append(f.sent, payload)
	return &mail.DeliveryResult{Delivered: true, Provider: "test"}, nil
}

type fixture struct {
	uc        *UseCase
	orders    *fakeOrders
	customers *fakeCustomers
	mailer    *fakeMailer
}

func newFixture(orders *fakeOrders, customers *fakeCustomers, appts *fakeAppointments, verifier *fakeVerifier) *fixture {
	mailer := &fakeMailer{}
	uc := NewUseCase(orders, customers, appts, verifier, mailer, nopTx{}, metrics.Nop{}, nopLogger{})
	uc.timeProvider = fixedClock{now: testNow}
	return &fixture{uc: uc, orders: orders, customers: customers, mailer: mailer}
}

func completedEvent() *fakeVerifier {
	return &fakeVerifier{event: &paymentsClient.Event{Type: paymentsClient.EventCheckoutCompleted, OrderID: "order-1"}}
}

func pendingOrder(totalChf float64) *fakeOrders {
	return &fakeOrders{
		order: &domain.Order{
			ID:         "order-1",
			SalonID:    "salon-1",
			CustomerID: "customer-1",
			TotalChf:   totalChf,
			Status:     domain.OrderPending,
		},
		totalPaid: totalChf,
	}
}

func standardCustomer() *fakeCustomers {
	return &fakeCustomers{
		customer: &domain.Customer{
			ID:          "customer-1",
			SalonID:     "salon-1",
			Email:       "max@example.ch",
			FirstName:   "Max",
			LastName:    "Muster",
			LoyaltyTier: domain.TierStandard,
		},
	}
}

func webhookRequest() *Request {
	return &Request{Payload: []byte(`{"type":"checkout.completed","orderId":"order-1"}`), Signature: "sig"}
}

func TestExecute_MarksPaidAndAwardsPoints(t *testing.T) {
	orders := pendingOrder(100.5)
	customers := standardCustomer()
	f := newFixture(orders, customers, &fakeAppointments{visits: 1}, completedEvent())

	resp, err := f.uc.Execute(context.Background(), webhookRequest())

	require.NoError(t, err)
	assert.Equal(t, "order-1", resp.OrderID)
	assert.False(t, resp.AlreadyPaid)
	assert.Equal(t, domain.TierStandard, resp.LoyaltyTier)
	assert.Equal(t, 100, resp.PointsEarned, "fractional CHF dropped before the 1.0 multiplier")
	assert.False(t, resp.TierUpgraded)

	require.NotNil(t, orders.paidAt)
	assert.Equal(t, testNow, *orders.paidAt)
	require.Len(t, customers.writes, 1)
	assert.Equal(t, loyaltyWrite{tier: domain.TierStandard, points: 100}, customers.writes[0])

	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, domain.TemplateOrderReceipt, f.mailer.sent[0].Template)
	assert.Equal(t, "100.50", f.mailer.sent[0].Variables["total"])
}

func TestExecute_UpgradesToSilverByVisits(t *testing.T) {
	orders := pendingOrder(50)
	customers := standardCustomer()
	f := newFixture(orders, customers, &fakeAppointments{visits: 4}, completedEvent())

	resp, err := f.uc.Execute(context.Background(), webhookRequest())

	require.NoError(t, err)
	assert.Equal(t, domain.TierSilver, resp.LoyaltyTier)
	assert.True(t, resp.TierUpgraded)
	assert.Equal(t, 60, resp.PointsEarned, "points use the freshly derived tier")
}

func TestExecute_UpgradesToGoldBySpend(t *testing.T) {
	orders := pendingOrder(200)
	orders.totalPaid = 1600
	customers := standardCustomer()
	f := newFixture(orders, customers, &fakeAppointments{visits: 0}, completedEvent())

	resp, err := f.uc.Execute(context.Background(), webhookRequest())

	require.NoError(t, err)
	assert.Equal(t, domain.TierGold, resp.LoyaltyTier)
	assert.Equal(t, 300, resp.PointsEarned)
}

func TestExecute_RetryIsIdempotent(t *testing.T) {
	orders := pendingOrder(100)
	orders.alreadyPaid = true
	customers := standardCustomer()
	f := newFixture(orders, customers, &fakeAppointments{}, completedEvent())

	resp, err := f.uc.Execute(context.Background(), webhookRequest())

	require.NoError(t, err)
	assert.True(t, resp.AlreadyPaid)
	assert.Empty(t, customers.writes, "no second loyalty write on retry")
	assert.Empty(t, f.mailer.sent, "no second receipt on retry")
}

func TestExecute_IgnoresOtherEventTypes(t *testing.T) {
	verifier := &fakeVerifier{event: &paymentsClient.Event{Type: "checkout.expired", OrderID: "order-1"}}
	orders := pendingOrder(100)
	f := newFixture(orders, standardCustomer(), &fakeAppointments{}, verifier)

	resp, err := f.uc.Execute(context.Background(), webhookRequest())

	require.NoError(t, err)
	assert.True(t, resp.Ignored)
	assert.Nil(t, orders.paidAt)
}

func TestExecute_RejectsInvalidSignature(t *testing.T) {
	verifier := &fakeVerifier{err: paymentsClient.ErrInvalidSignature}
	f := newFixture(pendingOrder(100), standardCustomer(), &fakeAppointments{}, verifier)

	_, err := f.uc.Execute(context.Background(), webhookRequest())

	require.ErrorIs(t, err, ErrInvalidSignature)
}

func TestExecute_OrderNotFound(t *testing.T) {
	verifier := &fakeVerifier{event: &paymentsClient.Event{Type: paymentsClient.EventCheckoutCompleted, OrderID: "ghost"}}
	f := newFixture(pendingOrder(100), standardCustomer(), &fakeAppointments{}, verifier)

	_, err := f.uc.Execute(context.Background(), webhookRequest())

	require.ErrorIs(t, err, ErrOrderNotFound)
}
