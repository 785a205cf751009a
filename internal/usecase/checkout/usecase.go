package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/carosellagiuliano-max/SWK-SalonService/internal/domain"
	voucherStore "github.com/carosellagiuliano-max/SWK-SalonService/internal/infra/storage/voucher"
)

// UseCase opens a shop checkout: it redeems an optional voucher against the
// order total, creates the pending order, and hands the remaining amount to
// the payment collaborator. Voucher redemption and the order insert run in
// one serializable transaction, so two checkouts racing on the same code
// cannot both apply it.
type UseCase struct {
	vouchers     VoucherStore
	orders       OrderStore
	payments     PaymentsClient
	txManager    TransactionManager
	timeProvider TimeProvider
	metrics      MetricsRecorder
	logger       Logger
}

func NewUseCase(
	vouchers VoucherStore,
	orders OrderStore,
	payments PaymentsClient,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		vouchers:     vouchers,
		orders:       orders,
		payments:     payments,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute runs the checkout workflow.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("Checkout: salon=%s, customer=%s, total=%.2f", req.SalonID, req.CustomerID, req.TotalChf)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("Checkout: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var (
		created   *domain.Order
		applied   float64
		amountDue = req.TotalChf
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if req.VoucherCode != nil {
			voucher, err := uc.vouchers.GetByCode(txCtx, *req.VoucherCode)
			if err != nil {
				if errors.Is(err, voucherStore.ErrVoucherNotFound) {
					uc.logger.Warn("Checkout: voucher %s not found", *req.VoucherCode)
					return ErrVoucherNotFound
				}
				uc.logger.Error("Checkout: voucher lookup failed: %v", err)
				return fmt.Errorf("%w: voucher lookup: %v", ErrInternal, err)
			}

			redemption := domain.RedeemVoucher(*voucher, req.TotalChf, now)
			if !redemption.OK {
				uc.metrics.IncVoucherRejection(string(redemption.Reason))
				uc.logger.Warn("Checkout: voucher %s rejected: %s", voucher.Code, redemption.Reason)
				return &VoucherRejectedError{Reason: redemption.Reason}
			}
			applied = redemption.Applied
			amountDue = redemption.Remaining
		}

		order, err := uc.orders.Create(txCtx, &domain.Order{
			SalonID:     req.SalonID,
			CustomerID:  req.CustomerID,
			TotalChf:    amountDue,
			VoucherCode: req.VoucherCode,
			Status:      domain.OrderPending,
		})
		if err != nil {
			uc.logger.Error("Checkout: failed to create order: %v", err)
			return fmt.Errorf("%w: create order: %v", ErrInternal, err)
		}
		created = order

		if req.VoucherCode != nil {
			if err := uc.vouchers.MarkRedeemed(txCtx, *req.VoucherCode, now); err != nil {
				if errors.Is(err, voucherStore.ErrAlreadyRedeemed) {
					// Lost the race after the read; treat like any other
					// already-redeemed rejection and roll the order back.
					uc.metrics.IncVoucherRejection(string(domain.VoucherAlreadyRedeemed))
					return &VoucherRejectedError{Reason: domain.VoucherAlreadyRedeemed}
				}
				uc.logger.Error("Checkout: failed to mark voucher redeemed: %v", err)
				return fmt.Errorf("%w: mark voucher redeemed: %v", ErrInternal, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := &Response{
		OrderID:        created.ID,
		TotalChf:       req.TotalChf,
		VoucherApplied: applied,
		AmountDue:      amountDue,
	}

	if amountDue <= 0 {
		uc.logger.Info("Checkout: order %s fully covered by voucher, no payment session", created.ID)
		return resp, nil
	}

	session, err := uc.payments.CreateCheckoutSession(ctx, created.ID, amountDue)
	if err != nil {
		uc.logger.Error("Checkout: failed to create payment session for order %s: %v", created.ID, err)
		return nil, fmt.Errorf("%w: create checkout session: %v", ErrInternal, err)
	}
	resp.CheckoutURL = session.URL

	uc.logger.Info("Checkout: order %s created, due=%.2f, session=%s", created.ID, amountDue, session.ID)
	return resp, nil
}

// validateRequest checks request shape only. A non-positive total with a
// voucher attached is left to the redeemer, which owns that rejection.
func validateRequest(req *Request) error {
	if req.SalonID == "" {
		return fmt.Errorf("%w: salonID is required", ErrInvalidInput)
	}
	if req.CustomerID == "" {
		return fmt.Errorf("%w: customerID is required", ErrInvalidInput)
	}
	if req.VoucherCode != nil && *req.VoucherCode == "" {
		return fmt.Errorf("%w: voucherCode must not be empty", ErrInvalidInput)
	}
	if req.VoucherCode == nil && req.TotalChf <= 0 {
		return fmt.Errorf("%w: totalChf must be positive", ErrInvalidInput)
	}
	return nil
}
