package identity

import "errors"

var (
	// ErrWrongPassword is returned when the password does not match an
	// existing account.
	ErrWrongPassword = errors.New("identity client: wrong email or password")

	// ErrInternal is returned on client-side failures.
	ErrInternal = errors.New("identity client: internal error")

	// ErrInvalidResponse is returned when the provider answers with an
	// unexpected status or body.
	ErrInvalidResponse = errors.New("identity client: invalid response")
)
