package commands

import (
	"context"
	"time"
)

// RefundPaymentCommandHandler returns money against an order's payment record.
type RefundPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory

	// now is the clock used to stamp refunds. Overridable in tests.
	now func() time.Time
}

// NewRefundPaymentCommandHandler creates a handler for refunding payments.
func NewRefundPaymentCommandHandler(uowFactory PaymentUoWFactory) RefundPaymentCommandHandler {
	return RefundPaymentCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle loads the order's payment record and refunds the requested amount.
// The record enforces that refunds never exceed what remains captured.
func (h *RefundPaymentCommandHandler) Handle(ctx context.Context, cmd RefundPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()

	record, err := paymentRepo.GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if _, err = record.Refund(cmd.Amount(), h.now()); err != nil {
		return err
	}

	if err = paymentRepo.Update(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
