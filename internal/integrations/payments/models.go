package payments

// CheckoutSession is the provider-hosted payment page for an order.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Event is a webhook notification from the payment provider. Only
// checkout.completed drives a state transition in this service.
type Event struct {
	Type    string `json:"type"`
	OrderID string `json:"orderId"`
}

// EventCheckoutCompleted marks a confirmed payment.
const EventCheckoutCompleted = "checkout.completed"

type createSessionRequest struct {
	OrderID   string  `json:"orderId"`
	AmountChf float64 `json:"amountChf"`
	Currency  string  `json:"currency"`
}
