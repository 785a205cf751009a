package voucher

import "errors"

var (
	// ErrVoucherNotFound is returned when no voucher matches the code.
	ErrVoucherNotFound = errors.New("voucher.store: voucher not found")

	// ErrAlreadyRedeemed is returned when marking an already redeemed voucher.
	ErrAlreadyRedeemed = errors.New("voucher.store: voucher already redeemed")

	// ErrBuildQuery is returned when building the SQL query fails.
	ErrBuildQuery = errors.New("voucher.store: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails.
	ErrExecQuery = errors.New("voucher.store: failed to execute query")
)
