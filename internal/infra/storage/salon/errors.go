package salon

import "errors"

var (
	// ErrPolicyNotFound is returned when the salon has no stored booking policy.
	ErrPolicyNotFound = errors.New("salon.store: booking policy not found")

	// ErrServiceNotFound is returned when no active service matches the ID.
	ErrServiceNotFound = errors.New("salon.store: service not found")

	// ErrBuildQuery is returned when building the SQL query fails.
	ErrBuildQuery = errors.New("salon.store: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails.
	ErrExecQuery = errors.New("salon.store: failed to execute query")
)
