package commands

import (
	"context"
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/payment"
	"pizzeria/internal/pkg/errs"
)

// SettlePaymentCommandHandler creates (or resumes) the payment record for an
// order and moves the money. The amount due is the order's final total at
// settlement time, discounts applied. Retrying a settlement is safe: the
// authorization is idempotent and a repeated capture is absorbed.
type SettlePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory

	// now is the clock used to evaluate pricing and stamp payment history.
	// Overridable in tests.
	now func() time.Time
}

// NewSettlePaymentCommandHandler creates a handler for settling payments.
func NewSettlePaymentCommandHandler(uowFactory PaymentUoWFactory) SettlePaymentCommandHandler {
	return SettlePaymentCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle loads the order, fixes the amount due from its current pricing, and
// authorizes (and for card/online captures) the payment.
func (h *SettlePaymentCommandHandler) Handle(ctx context.Context, cmd SettlePaymentCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := h.now()
	due, err := aggregate.FinalTotal(now)
	if err != nil {
		return err
	}

	paymentRepo := uow.PaymentRepository()

	record, err := paymentRepo.GetByOrderID(ctx, cmd.OrderID())
	created := false
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}

		record, err = payment.NewRecord(kernel.NewUUID(), cmd.OrderID(), cmd.Method(), due)
		if err != nil {
			return err
		}
		created = true
	}

	if _, err = record.Authorize(now); err != nil {
		return err
	}

	// Cash is captured at the door; card and online are captured here.
	if cmd.Method().RequiresAuthorization() {
		if _, err = record.Capture(record.Due(), now); err != nil && !errors.Is(err, payment.ErrPaymentAlreadyCaptured) {
			return err
		}
	}

	if created {
		err = paymentRepo.Add(ctx, record)
	} else {
		err = paymentRepo.Update(ctx, record)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
