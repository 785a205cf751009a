package domain

import "time"

// OrderStatus represents the payment state of a shop order.
type OrderStatus string

const (
	OrderPending OrderStatus = "pending"
	OrderPaid    OrderStatus = "paid"
)

// Order represents a shop order awaiting or past payment. TotalChf is the
// amount due after any voucher application.
type Order struct {
	ID          string
	SalonID     string
	CustomerID  string
	TotalChf    float64
	VoucherCode *string
	Status      OrderStatus
	PaidAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsPaid returns true once the payment collaborator confirmed the order.
func (o *Order) IsPaid() bool {
	return o.Status == OrderPaid
}
