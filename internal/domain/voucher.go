package domain

import (
	"math"
	"time"
)

// Voucher is a read-only snapshot of a stored voucher. RedeemVoucher never
// marks it redeemed; that write belongs to the caller after the order
// commits.
type Voucher struct {
	Code      string
	AmountChf float64
	ExpiresAt time.Time
	Redeemed  bool
}

// VoucherRejectReason explains a failed redemption.
type VoucherRejectReason string

const (
	VoucherAlreadyRedeemed  VoucherRejectReason = "already_redeemed"
	VoucherExpired          VoucherRejectReason = "expired"
	VoucherOrderTotalIsZero VoucherRejectReason = "order_total_must_exceed_zero"
)

// VoucherRedemption is the outcome of RedeemVoucher. On rejection Remaining
// carries the order total unchanged and Reason is set.
type VoucherRedemption struct {
	OK        bool
	Applied   float64
	Remaining float64
	Reason    VoucherRejectReason
}

// RedeemVoucher computes the discount a voucher applies to an order total.
// Unlike slot validation this short-circuits: the first failing check wins.
func RedeemVoucher(voucher Voucher, orderTotal float64, now time.Time) VoucherRedemption {
	if voucher.Redeemed {
		return VoucherRedemption{OK: false, Remaining: orderTotal, Reason: VoucherAlreadyRedeemed}
	}
	if now.After(voucher.ExpiresAt) {
		return VoucherRedemption{OK: false, Remaining: orderTotal, Reason: VoucherExpired}
	}
	if orderTotal <= 0 {
		return VoucherRedemption{OK: false, Remaining: orderTotal, Reason: VoucherOrderTotalIsZero}
	}

	applied := math.Min(orderTotal, voucher.AmountChf)
	remaining := roundRappen(orderTotal - applied)

	return VoucherRedemption{OK: true, Applied: applied, Remaining: remaining}
}

// roundRappen rounds to two decimal places (CHF cents).
func roundRappen(v float64) float64 {
	return math.Round(v*100) / 100
}
