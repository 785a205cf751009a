package checkout

import (
	"errors"
	"fmt"

	"github.com/carosellagiuliano-max/SWK-SalonService/internal/domain"
)

var (
	// ErrInvalidInput is returned on malformed request data.
	ErrInvalidInput = errors.New("checkout: invalid input data")

	// ErrVoucherNotFound is returned when the given code matches no voucher.
	ErrVoucherNotFound = errors.New("checkout: voucher not found")

	// ErrInternal is returned on internal usecase failures.
	ErrInternal = errors.New("checkout: internal error")
)

// VoucherRejectedError carries the single reason the redeemer rejected the
// voucher. Like a slot rejection this is an expected outcome; handlers
// surface the reason to the customer.
type VoucherRejectedError struct {
	Reason domain.VoucherRejectReason
}

func (e *VoucherRejectedError) Error() string {
	return fmt.Sprintf("checkout: voucher rejected: %s", e.Reason)
}
