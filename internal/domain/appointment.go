package domain

import "time"

// AppointmentStatus represents the status of an appointment.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
	StatusNoShow    AppointmentStatus = "no_show"
)

// Appointment represents a booked salon appointment.
type Appointment struct {
	ID         string
	SalonID    string
	CustomerID string
	StaffID    string
	ServiceID  string
	StartAt    time.Time
	EndAt      time.Time
	Status     AppointmentStatus

	// Denormalized for history
	ServiceName string
	Note        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the appointment's occupied time range.
func (a *Appointment) Interval() TimeInterval {
	return TimeInterval{Start: a.StartAt, End: a.EndAt}
}

// IsActive returns true if the appointment still occupies its slot.
func (a *Appointment) IsActive() bool {
	return a.Status == StatusScheduled
}

// CanBeCancelled returns true if the appointment can be cancelled.
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled
}

// CountsAsVisit returns true if the appointment counts toward the loyalty
// visit aggregate.
func (a *Appointment) CountsAsVisit() bool {
	return a.Status == StatusCompleted
}
