package appointment

import "errors"

var (
	// ErrAppointmentNotFound is returned when no appointment matches the ID.
	ErrAppointmentNotFound = errors.New("appointment.store: appointment not found")

	// ErrCannotCancel is returned when the appointment is not in a cancellable state.
	ErrCannotCancel = errors.New("appointment.store: appointment cannot be cancelled")

	// ErrBuildQuery is returned when building the SQL query fails.
	ErrBuildQuery = errors.New("appointment.store: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails.
	ErrExecQuery = errors.New("appointment.store: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("appointment.store: failed to scan row")
)
