package models

import (
	"time"

	"github.com/carosellagiuliano-max/SWK-SalonService/internal/domain"
)

// Request models

// CancelAppointmentRequest asks to cancel a customer's appointment.
type CancelAppointmentRequest struct {
	CustomerID         string  `json:"customerId"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ListAppointmentsRequest fetches a customer's appointment history.
type ListAppointmentsRequest struct {
	CustomerID string `json:"customerId"`
	Limit      uint64 `json:"limit,omitempty"`
}

// Response models

// AppointmentResponse is the outward appointment representation.
type AppointmentResponse struct {
	ID          string `json:"id"`
	SalonID     string `json:"salonId"`
	CustomerID  string `json:"customerId"`
	ServiceID   string `json:"serviceId"`
	StartAt     string `json:"startAt"` // ISO 8601
	EndAt       string `json:"endAt"`   // ISO 8601
	Status      string `json:"status"`
	ServiceName string `json:"serviceName"`

	Note               *string `json:"note,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse wraps a list of appointments.
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromDomainAppointment converts a domain model into the DTO.
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:                 a.ID,
		SalonID:            a.SalonID,
		CustomerID:         a.CustomerID,
		ServiceID:          a.ServiceID,
		StartAt:            a.StartAt.Format(time.RFC3339),
		EndAt:              a.EndAt.Format(time.RFC3339),
		Status:             string(a.Status),
		ServiceName:        a.ServiceName,
		Note:               a.Note,
		CancellationReason: a.CancellationReason,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}

	if a.CancelledAt != nil {
		cancelledStr := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainAppointmentList converts a list of domain models into the DTO.
func FromDomainAppointmentList(appts []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appts)),
	}

	for _, appt := range appts {
		if apptResp := FromDomainAppointment(appt); apptResp != nil {
			resp.Appointments = append(resp.Appointments, *apptResp)
		}
	}

	return resp
}
