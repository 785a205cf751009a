package checkout

import (
	checkoutUC "github.com/carosellagiuliano-max/SWK-SalonService/internal/usecase/checkout"
)

// CheckoutRequest HTTP request model
type CheckoutRequest struct {
	SalonID     string  `json:"salonId"`
	TotalChf    float64 `json:"totalChf"`
	VoucherCode *string `json:"voucherCode,omitempty"`
}

// CheckoutResponse HTTP response model
type CheckoutResponse struct {
	OrderID        string  `json:"orderId"`
	TotalChf       float64 `json:"totalChf"`
	VoucherApplied float64 `json:"voucherApplied"`
	AmountDue      float64 `json:"amountDue"`
	CheckoutURL    string  `json:"checkoutUrl,omitempty"`
}

// VoucherRejectedResponse names the reason the voucher was declined.
type VoucherRejectedResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

// ToUseCaseRequest converts the HTTP request into the usecase model.
func (r *CheckoutRequest) ToUseCaseRequest(customerID string) *checkoutUC.Request {
	return &checkoutUC.Request{
		SalonID:     r.SalonID,
		CustomerID:  customerID,
		TotalChf:    r.TotalChf,
		VoucherCode: r.VoucherCode,
	}
}

// FromUseCaseResponse converts the usecase response into the HTTP response.
func FromUseCaseResponse(resp *checkoutUC.Response) *CheckoutResponse {
	return &CheckoutResponse{
		OrderID:        resp.OrderID,
		TotalChf:       resp.TotalChf,
		VoucherApplied: resp.VoucherApplied,
		AmountDue:      resp.AmountDue,
		CheckoutURL:    resp.CheckoutURL,
	}
}
