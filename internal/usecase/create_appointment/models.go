package create_appointment

import "time"

// Request carries the booking input collected from the customer.
type Request struct {
	SalonID         string
	Email           string
	Password        string
	FirstName       string
	LastName        string
	Phone           *string
	ServiceID       string
	StartAt         time.Time
	DurationMinutes int // 0 = use the service's configured duration
	Note            *string
}

// Response is the created appointment.
type Response struct {
	AppointmentID string
	CustomerID    string
	ServiceName   string
	Status        string
	StartAt       time.Time
	EndAt         time.Time
	CreatedAt     time.Time
}
