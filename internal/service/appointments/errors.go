package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist.
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrAccessDenied is returned when a customer touches another customer's
	// appointment.
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel is returned when the appointment is not in a
	// cancellable state.
	ErrCannotCancel = errors.New("appointment cannot be cancelled")

	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("service: internal error")
)
