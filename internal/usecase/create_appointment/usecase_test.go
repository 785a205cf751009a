package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carosellagiuliano-max/SWK-SalonService/internal/domain"
	customerStore "github.com/carosellagiuliano-max/SWK-SalonService/internal/infra/storage/customer"
	salonStore "github.com/carosellagiuliano-max/SWK-SalonService/internal/infra/storage/salon"
	identityClient "github.com/carosellagiuliano-max/SWK-SalonService/internal/integrations/identity"
	"github.com/carosellagiuliano-max/SWK-SalonService/internal/integrations/mail"
	"github.com/carosellagiuliano-max/SWK-SalonService/pkg/metrics"
)

// testNow is a Monday noon; bookings in tests aim at the next morning.
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

type fakeAppointments struct {
	scheduled []*domain.Appointment
	created   []*domain.Appointment
}

func (f *fakeAppointments) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	appt.ID = "appt-1"
	appt.CreatedAt = testNow
	f.created = append(f.created, appt)
	return appt, nil
}

func (f *fakeAppointments) ListScheduledBySalon(context.Context, string) ([]*domain.Appointment, error) {
	return f.scheduled, nil
}

type fakeCustomers struct {
	existing *domain.Customer
}

func (f *fakeCustomers) FindByProfile(context.Context, string, string) (*domain.Customer, error) {
	if f.existing == nil {
		return nil, customerStore.ErrCustomerNotFound
	}
	return f.existing, nil
}

func (f *fakeCustomers) Create(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	c.ID = "customer-1"
	return c, nil
}

type fakeSalons struct {
	policy     *domain.BookingPolicy
	service    *domain.Service
	serviceErr error
}

func (f *fakeSalons) GetBookingPolicy(context.Context, string) (*domain.BookingPolicy, error) {
	if f.policy == nil {
		return nil, salonStore.ErrPolicyNotFound
	}
	return f.policy, nil
}

func (f *fakeSalons) GetService(context.Context, string, string) (*domain.Service, error) {
	if f.serviceErr != nil {
		return nil, f.serviceErr
	}
	return f.service, nil
}

type fakeIdentity struct {
	err error
}

func (f *fakeIdentity) FindOrCreateUser(context.Context, string, string, string, string) (*identityClient.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &identityClient.User{ID: "profile-1", Email: "max@example.ch"}, nil
}

type fakeMailer struct {
	sent []domain.NotificationContent
}

func (f *fakeMailer) Send(_ context.Context, _ string, payload domain.NotificationContent) (*mail.DeliveryResult, error) {
	f.sent = append(f.sent, payload)
	return &mail.DeliveryResult{Delivered: true, Provider: "test"}, nil
}

type fixture struct {
	uc           *UseCase
	appointments *fakeAppointments
	mailer       *fakeMailer
}

func newFixture(salons *fakeSalons, appts *fakeAppointments, id *fakeIdentity) *fixture {
	mailer := &fakeMailer{}
	uc := NewUseCase(appts, &fakeCustomers{}, salons, id, mailer, nopTx{}, metrics.Nop{}, nopLogger{})
	uc.timeProvider = fixedClock{now: testNow}
	return &fixture{uc: uc, appointments: appts, mailer: mailer}
}

func validRequest() *Request {
	return &Request{
		SalonID:   "salon-1",
		Email:     "max@example.ch",
		Password:  "secret",
		FirstName: "Max",
		LastName:  "Muster",
		ServiceID: "service-1",
		StartAt:   time.Date(2025, 6, 17, 10, 0, 0, 0, time.UTC),
	}
}

func defaultSalons() *fakeSalons {
	return &fakeSalons{
		policy: &domain.BookingPolicy{
			MinLeadTimeMinutes: 60,
			MaxAdvanceDays:     90,
			OpeningHours:       domain.OpeningHours{StartHour: 9, EndHour: 19},
		},
		service: &domain.Service{
			ID:              "service-1",
			SalonID:         "salon-1",
			Name:            "Haarschnitt & Föhnen",
			DurationMinutes: 70,
			PriceChf:        85,
			Active:          true,
		},
	}
}

func TestExecute_BooksValidSlot(t *testing.T) {
	f := newFixture(defaultSalons(), &fakeAppointments{}, &fakeIdentity{})

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "appt-1", resp.AppointmentID)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	assert.Equal(t, resp.StartAt.Add(70*time.Minute), resp.EndAt, "duration comes from the service")

	require.Len(t, f.appointments.created, 1)
	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, domain.TemplateBookingConfirmation, f.mailer.sent[0].Template)
	assert.Equal(t, "Max Muster", f.mailer.sent[0].Variables["customerName"])
}

func TestExecute_RejectsSlotViolatingRules(t *testing.T) {
	f := newFixture(defaultSalons(), &fakeAppointments{}, &fakeIdentity{})

	req := validRequest()
	req.StartAt = testNow.Add(30 * time.Minute) // violates the 60 minute lead time

	_, err := f.uc.Execute(context.Background(), req)

	var rejected *SlotRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Contains(t, rejected.Reasons, domain.ViolationLeadTimeTooShort)
	assert.Empty(t, f.appointments.created, "no write on rejection")
	assert.Empty(t, f.mailer.sent, "no confirmation on rejection")
}

func TestExecute_RejectsOverlap(t *testing.T) {
	appts := &fakeAppointments{
		scheduled: []*domain.Appointment{{
			StartAt: time.Date(2025, 6, 17, 10, 30, 0, 0, time.UTC),
			EndAt:   time.Date(2025, 6, 17, 11, 30, 0, 0, time.UTC),
			Status:  domain.StatusScheduled,
		}},
	}
	f := newFixture(defaultSalons(), appts, &fakeIdentity{})

	_, err := f.uc.Execute(context.Background(), validRequest())

	var rejected *SlotRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, []domain.SlotViolation{domain.ViolationOverlapsExisting}, rejected.Reasons)
}

func TestExecute_FallsBackToDefaultPolicy(t *testing.T) {
	salons := defaultSalons()
	salons.policy = nil // store has no policy row
	f := newFixture(salons, &fakeAppointments{}, &fakeIdentity{})

	// 10:00 next day satisfies the default 60min/90day/9-19 policy.
	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AppointmentID)
}

func TestExecute_WrongCredentials(t *testing.T) {
	f := newFixture(defaultSalons(), &fakeAppointments{}, &fakeIdentity{err: identityClient.ErrWrongPassword})

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrWrongCredentials)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	salons := defaultSalons()
	salons.serviceErr = salonStore.ErrServiceNotFound
	f := newFixture(salons, &fakeAppointments{}, &fakeIdentity{})

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture(defaultSalons(), &fakeAppointments{}, &fakeIdentity{})

	req := validRequest()
	req.Email = "not-an-email"

	_, err := f.uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrInvalidInput)
}
