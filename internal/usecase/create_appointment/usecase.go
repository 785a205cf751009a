package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/carosellagiuliano-max/SWK-SalonService/internal/domain"
	customerStore "github.com/carosellagiuliano-max/SWK-SalonService/internal/infra/storage/customer"
	salonStore "github.com/carosellagiuliano-max/SWK-SalonService/internal/infra/storage/salon"
	identityClient "github.com/carosellagiuliano-max/SWK-SalonService/internal/integrations/identity"
)

// UseCase books an appointment: it resolves the customer through the
// identity collaborator, runs the slot validator against fresh storage
// state inside a serializable transaction, and commits the write only on an
// accepting validation.
type UseCase struct {
	appointments AppointmentStore
	customers    CustomerStore
	salons       SalonStore
	identity     IdentityClient
	mailer       Mailer
	txManager    TransactionManager
	timeProvider TimeProvider
	metrics      MetricsRecorder
	logger       Logger
}

func NewUseCase(
	appointments AppointmentStore,
	customers CustomerStore,
	salons SalonStore,
	identity IdentityClient,
	mailer Mailer,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointments: appointments,
		customers:    customers,
		salons:       salons,
		identity:     identity,
		mailer:       mailer,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute runs the booking workflow.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: salon=%s, service=%s, start=%s",
		req.SalonID, req.ServiceID, req.StartAt.Format(time.RFC3339))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	user, err := uc.identity.FindOrCreateUser(ctx, req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, identityClient.ErrWrongPassword) {
			uc.logger.Warn("CreateAppointment: wrong credentials for existing account")
			return nil, ErrWrongCredentials
		}
		uc.logger.Error("CreateAppointment: identity lookup failed: %v", err)
		return nil, fmt.Errorf("%w: identity lookup: %v", ErrInternal, err)
	}

	customer, err := uc.findOrCreateCustomer(ctx, req, user.ID)
	if err != nil {
		return nil, err
	}

	service, err := uc.salons.GetService(ctx, req.SalonID, req.ServiceID)
	if err != nil {
		if errors.Is(err, salonStore.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service %s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service %s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: get service: %v", ErrInternal, err)
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = service.DurationMinutes
	}
	candidate := domain.TimeInterval{
		Start: req.StartAt,
		End:   req.StartAt.Add(time.Duration(duration) * time.Minute),
	}

	var created *domain.Appointment

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		policy, err := uc.loadPolicy(txCtx, req.SalonID)
		if err != nil {
			return err
		}

		scheduled, err := uc.appointments.ListScheduledBySalon(txCtx, req.SalonID)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to list scheduled appointments: %v", err)
			return fmt.Errorf("%w: list appointments: %v", ErrInternal, err)
		}

		ruleCtx := domain.RuleContext{
			MinLeadTimeMinutes: policy.MinLeadTimeMinutes,
			MaxAdvanceDays:     policy.MaxAdvanceDays,
			OpeningHours:       policy.OpeningHours,
			ExistingSlots:      existingIntervals(scheduled),
		}

		validation := domain.ValidateSlot(candidate, ruleCtx, now)
		if !validation.OK {
			for _, reason := range validation.Reasons {
				uc.metrics.IncSlotViolation(string(reason))
			}
			uc.logger.Warn("CreateAppointment: slot rejected: %v", validation.Reasons)
			return &SlotRejectedError{Reasons: validation.Reasons}
		}

		appt := &domain.Appointment{
			SalonID:     req.SalonID,
			CustomerID:  customer.ID,
			ServiceID:   service.ID,
			StartAt:     candidate.Start,
			EndAt:       candidate.End,
			Status:      domain.StatusScheduled,
			ServiceName: service.Name,
			Note:        req.Note,
		}

		created, err = uc.appointments.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: create appointment: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%s for customer=%s", created.ID, customer.ID)

	uc.sendConfirmation(ctx, customer, created)

	return &Response{
		AppointmentID: created.ID,
		CustomerID:    customer.ID,
		ServiceName:   created.ServiceName,
		Status:        string(created.Status),
		StartAt:       created.StartAt,
		EndAt:         created.EndAt,
		CreatedAt:     created.CreatedAt,
	}, nil
}

func (uc *UseCase) findOrCreateCustomer(ctx context.Context, req *Request, profileID string) (*domain.Customer, error) {
	customer, err := uc.customers.FindByProfile(ctx, req.SalonID, profileID)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, customerStore.ErrCustomerNotFound) {
		uc.logger.Error("CreateAppointment: customer lookup failed: %v", err)
		return nil, fmt.Errorf("%w: customer lookup: %v", ErrInternal, err)
	}

	created, err := uc.customers.Create(ctx, &domain.Customer{
		SalonID:   req.SalonID,
		ProfileID: profileID,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to create customer: %v", err)
		return nil, fmt.Errorf("%w: create customer: %v", ErrInternal, err)
	}

	return created, nil
}

func (uc *UseCase) loadPolicy(ctx context.Context, salonID string) (*domain.BookingPolicy, error) {
	policy, err := uc.salons.GetBookingPolicy(ctx, salonID)
	if err != nil {
		if errors.Is(err, salonStore.ErrPolicyNotFound) {
			fallback := domain.DefaultBookingPolicy()
			uc.logger.Info("CreateAppointment: no stored policy for salon=%s, using defaults", salonID)
			return &fallback, nil
		}
		uc.logger.Error("CreateAppointment: failed to get booking policy: %v", err)
		return nil, fmt.Errorf("%w: get booking policy: %v", ErrInternal, err)
	}
	return policy, nil
}

// sendConfirmation prepares and delivers the booking confirmation email.
// Preparation failure or delivery failure never fails the booking; the
// appointment is already committed.
func (uc *UseCase) sendConfirmation(ctx context.Context, customer *domain.Customer, appt *domain.Appointment) {
	payload := domain.PrepareNotification(domain.TemplateBookingConfirmation, map[string]string{
		"customerName":    customer.FullName(),
		"appointmentTime": appt.StartAt.Format("2006-01-02 15:04"),
	})
	if !payload.OK {
		uc.logger.Warn("CreateAppointment: confirmation payload incomplete, missing=%v, send skipped", payload.Missing)
		return
	}

	if _, err := uc.mailer.Send(ctx, customer.Email, *payload.Payload); err != nil {
		uc.logger.Error("CreateAppointment: confirmation email failed: %v", err)
	}
}
