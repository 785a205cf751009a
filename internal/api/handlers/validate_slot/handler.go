package validate_slot

import (
	"errors"
	"net/http"

	"github.com/carosellagiuliano-max/SWK-SalonService/internal/api/handlers"
	validateSlot "github.com/carosellagiuliano-max/SWK-SalonService/internal/usecase/validate_slot"
)

const (
	msgInvalidRequestBody = "ungültiger Anfrageinhalt"
	msgInvalidStartAt     = "ungültiges Startdatum, erwartet wird RFC 3339"
	msgInvalidInput       = "ungültige Eingabedaten"
	msgServiceNotFound    = "Dienstleistung nicht gefunden"
)

type Handler struct {
	useCase ValidateSlotUseCase
	logger  Logger
}

func NewHandler(useCase ValidateSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/validate-slot
//
// Always responds 200 on a processed request; a rejected slot is a valid
// answer, not an error.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/validate-slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments/validate-slot - Failed to parse startAt: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartAt)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, validateSlot.ErrInvalidInput):
			h.logger.Warn("POST /appointments/validate-slot - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, validateSlot.ErrServiceNotFound):
			h.logger.Warn("POST /appointments/validate-slot - Service not found: salon=%s, service=%s", req.SalonID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("POST /appointments/validate-slot - Failed: salon=%s, error=%v", req.SalonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
