package cancel_appointment

import "github.com/carosellagiuliano-max/SWK-SalonService/internal/service/appointments/models"

// CancelAppointmentRequest HTTP request model
type CancelAppointmentRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest converts the HTTP request into the service model.
func (r *CancelAppointmentRequest) ToServiceRequest(customerID string) *models.CancelAppointmentRequest {
	return &models.CancelAppointmentRequest{
		CustomerID:         customerID,
		CancellationReason: r.CancellationReason,
	}
}
