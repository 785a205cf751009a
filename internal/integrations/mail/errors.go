package mail

import "errors"

var (
	// ErrInternal is returned on client-side failures.
	ErrInternal = errors.New("mail client: internal error")

	// ErrInvalidResponse is returned when the provider answers with an
	// unexpected status or body.
	ErrInvalidResponse = errors.New("mail client: invalid response")
)
