package checkout

// Request carries the checkout input. VoucherCode is optional; without it
// the full total goes to payment.
type Request struct {
	SalonID     string
	CustomerID  string
	TotalChf    float64
	VoucherCode *string
}

// Response is the created order plus the hosted payment session. When the
// remaining amount is zero no session is opened and CheckoutURL stays empty.
type Response struct {
	OrderID        string
	TotalChf       float64
	VoucherApplied float64
	AmountDue      float64
	CheckoutURL    string
}
