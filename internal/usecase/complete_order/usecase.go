package complete_order

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/carosellagiuliano-max/SWK-SalonService/internal/domain"
	orderStore "github.com/carosellagiuliano-max/SWK-SalonService/internal/infra/storage/order"
	paymentsClient "github.com/carosellagiuliano-max/SWK-SalonService/internal/integrations/payments"
)

// UseCase processes payment webhook deliveries. A verified
// checkout.completed event transitions the order to paid, re-evaluates the
// customer's loyalty tier from fresh visit and spend aggregates, and awards
// points for the paid amount. Retried deliveries are acknowledged without a
// second transition.
type UseCase struct {
	orders       OrderStore
	customers    CustomerStore
	appointments AppointmentStore
	payments     PaymentsClient
	mailer       Mailer
	txManager    TransactionManager
	timeProvider TimeProvider
	metrics      MetricsRecorder
	logger       Logger
}

func NewUseCase(
	orders OrderStore,
	customers CustomerStore,
	appointments AppointmentStore,
	payments PaymentsClient,
	mailer Mailer,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		orders:       orders,
		customers:    customers,
		appointments: appointments,
		payments:     payments,
		mailer:       mailer,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute verifies and applies one webhook delivery.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	event, err := uc.payments.VerifyAndParseEvent(req.Payload, req.Signature)
	if err != nil {
		if errors.Is(err, paymentsClient.ErrInvalidSignature) {
			uc.logger.Warn("CompleteOrder: webhook signature rejected")
			return nil, ErrInvalidSignature
		}
		uc.logger.Warn("CompleteOrder: malformed event: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}

	if event.Type != paymentsClient.EventCheckoutCompleted {
		uc.logger.Info("CompleteOrder: ignoring event type %s for order=%s", event.Type, event.OrderID)
		return &Response{OrderID: event.OrderID, Ignored: true}, nil
	}

	uc.logger.Info("CompleteOrder: checkout completed for order=%s", event.OrderID)

	now := uc.timeProvider.Now()
	resp := &Response{OrderID: event.OrderID}

	var (
		customer *domain.Customer
		order    *domain.Order
	)

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var err error
		order, err = uc.orders.GetByID(txCtx, event.OrderID)
		if err != nil {
			if errors.Is(err, orderStore.ErrOrderNotFound) {
				uc.logger.Warn("CompleteOrder: order %s not found", event.OrderID)
				return ErrOrderNotFound
			}
			uc.logger.Error("CompleteOrder: failed to get order %s: %v", event.OrderID, err)
			return fmt.Errorf("%w: get order: %v", ErrInternal, err)
		}

		transitioned, err := uc.orders.MarkPaid(txCtx, order.ID, now)
		if err != nil {
			uc.logger.Error("CompleteOrder: failed to mark order %s paid: %v", order.ID, err)
			return fmt.Errorf("%w: mark paid: %v", ErrInternal, err)
		}
		if !transitioned {
			uc.logger.Info("CompleteOrder: order %s already paid, retry acknowledged", order.ID)
			resp.AlreadyPaid = true
			return nil
		}

		customer, err = uc.applyLoyalty(txCtx, order, now, resp)
		return err
	})
	if err != nil {
		return nil, err
	}

	if !resp.AlreadyPaid && customer != nil {
		uc.metrics.IncLoyaltyEvaluation(string(resp.LoyaltyTier))
		uc.sendReceipt(ctx, customer, order)
	}

	return resp, nil
}

// applyLoyalty re-derives the tier from the 90-day visit count and the
// lifetime paid total (which already includes this order), then awards
// points for the paid amount at the resulting tier.
func (uc *UseCase) applyLoyalty(ctx context.Context, order *domain.Order, now time.Time, resp *Response) (*domain.Customer, error) {
	customer, err := uc.customers.GetByID(ctx, order.CustomerID)
	if err != nil {
		uc.logger.Error("CompleteOrder: failed to get customer %s: %v", order.CustomerID, err)
		return nil, fmt.Errorf("%w: get customer: %v", ErrInternal, err)
	}

	since := now.AddDate(0, 0, -domain.LoyaltyWindowDays)
	visits, err := uc.appointments.CountCompletedSince(ctx, customer.ID, since)
	if err != nil {
		uc.logger.Error("CompleteOrder: failed to count visits for customer %s: %v", customer.ID, err)
		return nil, fmt.Errorf("%w: count visits: %v", ErrInternal, err)
	}

	totalSpend, err := uc.orders.TotalPaidByCustomer(ctx, customer.ID)
	if err != nil {
		uc.logger.Error("CompleteOrder: failed to sum spend for customer %s: %v", customer.ID, err)
		return nil, fmt.Errorf("%w: sum spend: %v", ErrInternal, err)
	}

	tier := domain.QualifyForUpgrade(visits, totalSpend)
	points := domain.CalculateLoyaltyPoints(order.TotalChf, tier)

	if err := uc.customers.UpdateLoyalty(ctx, customer.ID, tier, points); err != nil {
		uc.logger.Error("CompleteOrder: failed to update loyalty for customer %s: %v", customer.ID, err)
		return nil, fmt.Errorf("%w: update loyalty: %v", ErrInternal, err)
	}

	resp.LoyaltyTier = tier
	resp.PointsEarned = points
	resp.TierUpgraded = tier != customer.LoyaltyTier

	uc.logger.Info("CompleteOrder: customer=%s visits=%d spend=%.2f tier=%s points=%d",
		customer.ID, visits, totalSpend, tier, points)

	return customer, nil
}

// sendReceipt prepares and delivers the order receipt email. Failures never
// fail the webhook; the payment is already recorded.
func (uc *UseCase) sendReceipt(ctx context.Context, customer *domain.Customer, order *domain.Order) {
	payload := domain.PrepareNotification(domain.TemplateOrderReceipt, map[string]string{
		"customerName": customer.FullName(),
		"orderNumber":  order.ID,
		"total":        strconv.FormatFloat(order.TotalChf, 'f', 2, 64),
	})
	if !payload.OK {
		uc.logger.Warn("CompleteOrder: receipt payload incomplete, missing=%v, send skipped", payload.Missing)
		return
	}

	if _, err := uc.mailer.Send(ctx, customer.Email, *payload.Payload); err != nil {
		uc.logger.Error("CompleteOrder: receipt email failed: %v", err)
	}
}
