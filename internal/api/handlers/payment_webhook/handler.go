package payment_webhook

import (
	"errors"
	"io"
	"net/http"

	"github.com/carosellagiuliano-max/SWK-SalonService/internal/api/handlers"
	completeOrder "github.com/carosellagiuliano-max/SWK-SalonService/internal/usecase/complete_order"
)

// SignatureHeader carries the provider's HMAC signature over the raw body.
const SignatureHeader = "X-Webhook-Signature"

// maxBodyBytes caps webhook payloads; provider events are small.
const maxBodyBytes = 64 * 1024

const (
	msgUnreadableBody   = "ungültiger Anfrageinhalt"
	msgInvalidSignature = "ungültige Signatur"
	msgInvalidEvent     = "ungültiges Ereignis"
	msgOrderNotFound    = "Bestellung nicht gefunden"
)

type Handler struct {
	useCase CompleteOrderUseCase
	logger  Logger
}

func NewHandler(useCase CompleteOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/webhooks/payments
//
// The body is passed through unparsed: the usecase verifies the signature
// against the raw bytes before decoding.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		h.logger.Warn("POST /webhooks/payments - Unreadable body: %v", err)
		handlers.RespondBadRequest(w, msgUnreadableBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &completeOrder.Request{
		Payload:   payload,
		Signature: r.Header.Get(SignatureHeader),
	})
	if err != nil {
		switch {
		case errors.Is(err, completeOrder.ErrInvalidSignature):
			h.logger.Warn("POST /webhooks/payments - Invalid signature")
			handlers.RespondUnauthorized(w, msgInvalidSignature)

		case errors.Is(err, completeOrder.ErrInvalidEvent):
			h.logger.Warn("POST /webhooks/payments - Invalid event: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEvent)

		case errors.Is(err, completeOrder.ErrOrderNotFound):
			h.logger.Warn("POST /webhooks/payments - Order not found")
			handlers.RespondNotFound(w, msgOrderNotFound)

		default:
			h.logger.Error("POST /webhooks/payments - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	switch {
	case result.Ignored:
		h.logger.Info("POST /webhooks/payments - Event ignored: order=%s", result.OrderID)
	case result.AlreadyPaid:
		h.logger.Info("POST /webhooks/payments - Retry acknowledged: order=%s", result.OrderID)
	default:
		h.logger.Info("POST /webhooks/payments - Order paid: order=%s, points=%d, tier=%s",
			result.OrderID, result.PointsEarned, result.LoyaltyTier)
	}

	handlers.RespondJSON(w, http.StatusOK, nil)
}
