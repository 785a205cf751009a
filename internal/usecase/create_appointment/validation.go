package create_appointment

import (
	"fmt"
	"strings"

	"github.com/carosellagiuliano-max/SWK-SalonService/internal/domain"
)

// validateRequest checks request shape only. All booking rules (lead time,
// opening hours, overlap) belong to domain.ValidateSlot.
func validateRequest(req *Request) error {
	if req.SalonID == "" {
		return fmt.Errorf("%w: salonID is required", ErrInvalidInput)
	}

	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}

	if req.FirstName == "" || req.LastName == "" {
		return fmt.Errorf("%w: first and last name are required", ErrInvalidInput)
	}

	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if req.StartAt.IsZero() {
		return fmt.Errorf("%w: startAt is required", ErrInvalidInput)
	}

	if req.DurationMinutes < 0 || req.DurationMinutes > domain.MaxAppointmentMinutes {
		return fmt.Errorf("%w: durationMinutes must be between 0 and %d", ErrInvalidInput, domain.MaxAppointmentMinutes)
	}

	if req.Note != nil && len(*req.Note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note exceeds %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	return nil
}

// existingIntervals projects scheduled appointments onto their occupied
// time ranges for the rule context.
func existingIntervals(appts []*domain.Appointment) []domain.TimeInterval {
	intervals := make([]domain.TimeInterval, 0, len(appts))
	for _, appt := range appts {
		intervals = append(intervals, appt.Interval())
	}
	return intervals
}
