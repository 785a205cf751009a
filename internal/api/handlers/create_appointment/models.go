package create_appointment

import (
	"time"

	createAppointment "github.com/carosellagiuliano-max/SWK-SalonService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	SalonID         string  `json:"salonId"`
	Email           string  `json:"email"`
	Password        string  `json:"password"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Phone           *string `json:"phone,omitempty"`
	ServiceID       string  `json:"serviceId"`
	StartAt         string  `json:"startAt"` // RFC 3339, z.B. "2025-10-15T10:00:00+02:00"
	DurationMinutes int     `json:"durationMinutes,omitempty"`
	Note            *string `json:"note,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	AppointmentID string `json:"appointmentId"`
	CustomerID    string `json:"customerId"`
	ServiceName   string `json:"serviceName"`
	Status        string `json:"status"`
	StartAt       string `json:"startAt"`
	EndAt         string `json:"endAt"`
	CreatedAt     string `json:"createdAt"`
}

// SlotRejectedResponse lists every booking rule the slot violated.
type SlotRejectedResponse struct {
	Error   string   `json:"error"`
	Reasons []string `json:"reasons"`
}

// ToUseCaseRequest converts the HTTP request into the usecase model.
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	startAt, err := time.Parse(time.RFC3339, r.StartAt)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		SalonID:         r.SalonID,
		Email:           r.Email,
		Password:        r.Password,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Phone:           r.Phone,
		ServiceID:       r.ServiceID,
		StartAt:         startAt,
		DurationMinutes: r.DurationMinutes,
		Note:            r.Note,
	}, nil
}

// FromUseCaseResponse converts the usecase response into the HTTP response.
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		AppointmentID: resp.AppointmentID,
		CustomerID:    resp.CustomerID,
		ServiceName:   resp.ServiceName,
		Status:        resp.Status,
		StartAt:       resp.StartAt.Format(time.RFC3339),
		EndAt:         resp.EndAt.Format(time.RFC3339),
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
