package complete_order

import "errors"

var (
	// ErrInvalidSignature is returned when the webhook signature does not
	// match the shared secret.
	ErrInvalidSignature = errors.New("complete_order: invalid webhook signature")

	// ErrInvalidEvent is returned on malformed or unsupported event payloads.
	ErrInvalidEvent = errors.New("complete_order: invalid event")

	// ErrOrderNotFound is returned when the event references an unknown order.
	ErrOrderNotFound = errors.New("complete_order: order not found")

	// ErrInternal is returned on internal usecase failures.
	ErrInternal = errors.New("complete_order: internal error")
)
