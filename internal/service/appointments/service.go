package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/carosellagiuliano-max/SWK-SalonService/internal/domain"
	appointmentRepo "github.com/carosellagiuliano-max/SWK-SalonService/internal/infra/storage/appointment"
	"github.com/carosellagiuliano-max/SWK-SalonService/internal/service/appointments/models"
)

// DefaultHistoryLimit caps a customer's appointment history when the request
// does not specify a limit.
const DefaultHistoryLimit = 10

// Service exposes read and cancel operations on appointments. Creation goes
// through the booking usecase; this service never writes new slots.
type Service struct {
	appointmentRepo AppointmentRepository
	customerRepo    CustomerRepository
	mailer          Mailer
	timeProvider    TimeProvider
	logger          Logger
}

// NewService creates the appointments service.
func NewService(
	appointmentRepo AppointmentRepository,
	customerRepo CustomerRepository,
	mailer Mailer,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		customerRepo:    customerRepo,
		mailer:          mailer,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID fetches one appointment. A customer can only see their own.
func (s *Service) GetByID(ctx context.Context, id string, customerID string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s for customer=%s", id, customerID)

	appt, err := s.getOwned(ctx, id, customerID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainAppointment(appt), nil
}

// ListByCustomer fetches the customer's appointment history, soonest first.
func (s *Service) ListByCustomer(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	if req.CustomerID == "" {
		return nil, fmt.Errorf("%w: customerID is required", ErrInvalidInput)
	}

	limit := req.Limit
	if limit == 0 {
		limit = DefaultHistoryLimit
	}

	s.logger.Info("ListByCustomer: fetching appointments for customer=%s, limit=%d", req.CustomerID, limit)

	appts, err := s.appointmentRepo.ListByCustomer(ctx, req.CustomerID, limit)
	if err != nil {
		s.logger.Error("ListByCustomer: repository error for customer=%s: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: ListByCustomer - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByCustomer: fetched %d appointments for customer=%s", len(appts), req.CustomerID)
	return models.FromDomainAppointmentList(appts), nil
}

// Cancel cancels a customer's own scheduled appointment and sends the
// cancellation email.
func (s *Service) Cancel(ctx context.Context, id string, req *models.CancelAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Cancel: cancelling appointment id=%s by customer=%s", id, req.CustomerID)

	appt, err := s.getOwned(ctx, id, req.CustomerID)
	if err != nil {
		return nil, err
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%s cannot be cancelled, status=%s", id, appt.Status)
		return nil, ErrCannotCancel
	}

	cancelled, err := s.appointmentRepo.Cancel(ctx, id, req.CancellationReason, s.timeProvider.Now())
	if err != nil {
		switch {
		case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
			return nil, ErrAppointmentNotFound
		case errors.Is(err, appointmentRepo.ErrCannotCancel):
			// Raced with a concurrent status change.
			s.logger.Warn("Cancel: appointment id=%s changed state during cancellation", id)
			return nil, ErrCannotCancel
		default:
			s.logger.Error("Cancel: repository error for appointment id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%s", id)

	s.sendCancellation(ctx, cancelled)

	return models.FromDomainAppointment(cancelled), nil
}

// getOwned loads the appointment and enforces ownership.
func (s *Service) getOwned(ctx context.Context, id string, customerID string) (*domain.Appointment, error) {
	if id == "" || customerID == "" {
		return nil, fmt.Errorf("%w: appointment id and customerID are required", ErrInvalidInput)
	}

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if appt.CustomerID != customerID {
		s.logger.Warn("access denied for customer=%s to appointment id=%s", customerID, id)
		return nil, ErrAccessDenied
	}

	return appt, nil
}

// sendCancellation prepares and delivers the cancellation email. Failures
// never undo the cancellation.
func (s *Service) sendCancellation(ctx context.Context, appt *domain.Appointment) {
	customer, err := s.customerRepo.GetByID(ctx, appt.CustomerID)
	if err != nil {
		s.logger.Error("sendCancellation: customer lookup failed for appointment id=%s: %v", appt.ID, err)
		return
	}

	payload := domain.PrepareNotification(domain.TemplateCancellation, map[string]string{
		"customerName":    customer.FullName(),
		"appointmentTime": appt.StartAt.Format("2006-01-02 15:04"),
	})
	if !payload.OK {
		s.logger.Warn("sendCancellation: payload incomplete, missing=%v, send skipped", payload.Missing)
		return
	}

	if _, err := s.mailer.Send(ctx, customer.Email, *payload.Payload); err != nil {
		s.logger.Error("sendCancellation: email failed for appointment id=%s: %v", appt.ID, err)
	}
}
