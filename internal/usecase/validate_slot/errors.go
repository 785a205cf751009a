package validate_slot

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("validate_slot: invalid input data")

	// ErrServiceNotFound is returned when the requested service does not exist.
	ErrServiceNotFound = errors.New("validate_slot: service not found")

	// ErrInternal is returned on internal usecase failures.
	ErrInternal = errors.New("validate_slot: internal error")
)
