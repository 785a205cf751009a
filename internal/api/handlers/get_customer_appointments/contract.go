package get_customer_appointments

import (
	"context"

	"github.com/carosellagiuliano-max/SWK-SalonService/internal/service/appointments/models"
)

type AppointmentService interface {
	ListByCustomer(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
