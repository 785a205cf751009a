package validate_slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/carosellagiuliano-max/SWK-SalonService/internal/domain"
	salonStore "github.com/carosellagiuliano-max/SWK-SalonService/internal/infra/storage/salon"
)

// UseCase answers whether a candidate slot would currently pass the booking
// rules. The answer is advisory only; create_appointment re-validates inside
// its serializable transaction.
type UseCase struct {
	appointments AppointmentStore
	salons       SalonStore
	timeProvider TimeProvider
	logger       Logger
}

func NewUseCase(appointments AppointmentStore, salons SalonStore, logger Logger) *UseCase {
	return &UseCase{
		appointments: appointments,
		salons:       salons,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute runs the slot validator against the current salon state.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.SalonID == "" || req.ServiceID == "" || req.StartAt.IsZero() {
		return nil, fmt.Errorf("%w: salonID, serviceID and startAt are required", ErrInvalidInput)
	}

	service, err := uc.salons.GetService(ctx, req.SalonID, req.ServiceID)
	if err != nil {
		if errors.Is(err, salonStore.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("ValidateSlot: failed to get service %s: %v", req.ServiceID, err)
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

	policy, err := uc.salons.GetBookingPolicy(ctx, req.SalonID)
	if err != nil {
		if !errors.Is(err, salonStore.ErrPolicyNotFound) {
			uc.logger.Error("ValidateSlot: failed to get booking policy: %v", err)
			return nil, fmt.Errorf("%w: get booking policy: %v", ErrInternal, err)
		}
		fallback := domain.DefaultBookingPolicy()
		policy = &fallback
	}

	scheduled, err := uc.appointments.ListScheduledBySalon(ctx, req.SalonID)
	if err != nil {
		uc.logger.Error("ValidateSlot: failed to list scheduled appointments: %v", err)
		return nil, fmt.Errorf("%w: list appointments: %v", ErrInternal, err)
	}

	existing := make([]domain.TimeInterval, 0, len(scheduled))
	for _, appt := range scheduled {
		existing = append(existing, appt.Interval())
	}

	validation := domain.ValidateSlot(candidate, domain.RuleContext{
		MinLeadTimeMinutes: policy.MinLeadTimeMinutes,
		MaxAdvanceDays:     policy.MaxAdvanceDays,
		OpeningHours:       policy.OpeningHours,
		ExistingSlots:      existing,
	}, uc.timeProvider.Now())

	uc.logger.Info("ValidateSlot: salon=%s start=%s ok=%t reasons=%v",
		req.SalonID, req.StartAt.Format(time.RFC3339), validation.OK, validation.Reasons)

	return &Response{OK: validation.OK, Reasons: validation.Reasons}, nil
}
