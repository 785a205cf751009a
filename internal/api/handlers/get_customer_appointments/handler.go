package get_customer_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/carosellagiuliano-max/SWK-SalonService/internal/api/handlers"
	"github.com/carosellagiuliano-max/SWK-SalonService/internal/api/middleware"
	"github.com/carosellagiuliano-max/SWK-SalonService/internal/service/appointments"
	"github.com/carosellagiuliano-max/SWK-SalonService/internal/service/appointments/models"
)

const (
	msgMissingCustomerID = "fehlende Kundenkennung"
	msgInvalidLimit      = "ungültiger Limit-Parameter"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments?limit=10
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		h.logger.Warn("GET /appointments - Missing customer ID")
		handlers.RespondUnauthorized(w, msgMissingCustomerID)
		return
	}

	var limit uint64
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.ParseUint(limitStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid limit: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	result, err := h.service.ListByCustomer(r.Context(), &models.ListAppointmentsRequest{
		CustomerID: customerID,
		Limit:      limit,
	})
	if err != nil {
		if errors.Is(err, appointments.ErrInvalidInput) {
			h.logger.Warn("GET /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingCustomerID)
			return
		}
		h.logger.Error("GET /appointments - Failed to list appointments: customer=%s, error=%v", customerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments - Retrieved %d appointments for customer=%s", len(result.Appointments), customerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
