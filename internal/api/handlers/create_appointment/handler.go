package create_appointment

import (
	"errors"
	"net/http"

	"github.com/carosellagiuliano-max/SWK-SalonService/internal/api/handlers"
	createAppointment "github.com/carosellagiuliano-max/SWK-SalonService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "ungültiger Anfrageinhalt"
	msgInvalidStartAt     = "ungültiges Startdatum, erwartet wird RFC 3339"
	msgInvalidInput       = "ungültige Eingabedaten"
	msgServiceNotFound    = "Dienstleistung nicht gefunden"
	msgWrongCredentials   = "E-Mail oder Passwort ist falsch"
	msgSlotRejected       = "der gewünschte Termin ist nicht verfügbar"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse startAt: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartAt)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var slotRejected *createAppointment.SlotRejectedError

		switch {
		case errors.As(err, &slotRejected):
			h.logger.Warn("POST /appointments - Slot rejected: salon=%s, reasons=%v", req.SalonID, slotRejected.Reasons)
			reasons := make([]string, 0, len(slotRejected.Reasons))
			for _, reason := range slotRejected.Reasons {
				reasons = append(reasons, string(reason))
			}
			handlers.RespondJSON(w, http.StatusUnprocessableEntity, SlotRejectedResponse{
				Error:   msgSlotRejected,
				Reasons: reasons,
			})

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: salon=%s, service=%s", req.SalonID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrWrongCredentials):
			h.logger.Warn("POST /appointments - Wrong credentials for existing account")
			handlers.RespondError(w, http.StatusUnauthorized, msgWrongCredentials)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: salon=%s, error=%v", req.SalonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: id=%s, customer=%s, salon=%s",
		result.AppointmentID, result.CustomerID, req.SalonID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
