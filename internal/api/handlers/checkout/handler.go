package checkout

import (
	"errors"
	"net/http"

	"github.com/carosellagiuliano-max/SWK-SalonService/internal/api/handlers"
	"github.com/carosellagiuliano-max/SWK-SalonService/internal/api/middleware"
	checkoutUC "github.com/carosellagiuliano-max/SWK-SalonService/internal/usecase/checkout"
)

const (
	msgInvalidRequestBody = "ungültiger Anfrageinhalt"
	msgMissingCustomerID  = "fehlende Kundenkennung"
	msgInvalidInput       = "ungültige Eingabedaten"
	msgVoucherNotFound    = "Gutschein nicht gefunden"
	msgVoucherRejected    = "der Gutschein kann nicht eingelöst werden"
)

type Handler struct {
	useCase CheckoutUseCase
	logger  Logger
}

func NewHandler(useCase CheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/shop/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		h.logger.Warn("POST /shop/checkout - Missing customer ID")
		handlers.RespondUnauthorized(w, msgMissingCustomerID)
		return
	}

	var req CheckoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /shop/checkout - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(customerID))
	if err != nil {
		var voucherRejected *checkoutUC.VoucherRejectedError

		switch {
		case errors.As(err, &voucherRejected):
			h.logger.Warn("POST /shop/checkout - Voucher rejected: customer=%s, reason=%s", customerID, voucherRejected.Reason)
			handlers.RespondJSON(w, http.StatusUnprocessableEntity, VoucherRejectedResponse{
				Error:  msgVoucherRejected,
				Reason: string(voucherRejected.Reason),
			})

		case errors.Is(err, checkoutUC.ErrVoucherNotFound):
			h.logger.Warn("POST /shop/checkout - Voucher not found: customer=%s", customerID)
			handlers.RespondNotFound(w, msgVoucherNotFound)

		case errors.Is(err, checkoutUC.ErrInvalidInput):
			h.logger.Warn("POST /shop/checkout - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /shop/checkout - Failed: customer=%s, error=%v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /shop/checkout - Order created: order=%s, customer=%s, due=%.2f",
		result.OrderID, customerID, result.AmountDue)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
