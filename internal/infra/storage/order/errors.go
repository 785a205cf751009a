package order

import "errors"

var (
	// ErrOrderNotFound is returned when no order matches the ID.
	ErrOrderNotFound = errors.New("order.store: order not found")

	// ErrBuildQuery is returned when building the SQL query fails.
	ErrBuildQuery = errors.New("order.store: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails.
	ErrExecQuery = errors.New("order.store: failed to execute query")
)
