package create_appointment

import (
	"errors"
	"fmt"

	"github.com/carosellagiuliano-max/SWK-SalonService/internal/domain"
)

var (
	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrServiceNotFound is returned when the requested service does not exist.
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrWrongCredentials is returned when the email belongs to an existing
	// account and the password does not match.
	ErrWrongCredentials = errors.New("create_appointment: wrong email or password")

	// ErrInternal is returned on internal usecase failures.
	ErrInternal = errors.New("create_appointment: internal error")
)

// SlotRejectedError carries every booking rule the candidate slot violated.
// Rejection is an expected outcome, not a failure path; handlers surface
// the full list to the customer.
type SlotRejectedError struct {
	Reasons []domain.SlotViolation
}

func (e *SlotRejectedError) Error() string {
	return fmt.Sprintf("create_appointment: slot rejected: %v", e.Reasons)
}
