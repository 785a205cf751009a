package payments

import "errors"

var (
	// ErrInvalidSignature is returned when a webhook event fails HMAC
	// verification.
	ErrInvalidSignature = errors.New("payments client: invalid webhook signature")

	// ErrInvalidEvent is returned when a webhook body cannot be parsed.
	ErrInvalidEvent = errors.New("payments client: invalid webhook event")

	// ErrInternal is returned on client-side failures.
	ErrInternal = errors.New("payments client: internal error")

	// ErrInvalidResponse is returned when the provider answers with an
	// unexpected status or body.
	ErrInvalidResponse = errors.New("payments client: invalid response")
)
