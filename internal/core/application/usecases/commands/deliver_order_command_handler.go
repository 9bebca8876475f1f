package commands

import (
	"context"
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/payment"
	"pizzeria/internal/pkg/errs"
)

// DeliverOrderCommandHandler hands over a dispatched order at the door:
// the order is delivered, its courier freed, and an open payment captured.
type DeliverOrderCommandHandler struct {
	uowFactory UoWFactory
	now        func() time.Time
}

// NewDeliverOrderCommandHandler creates a handler for manual delivery confirmation.
func NewDeliverOrderCommandHandler(uowFactory UoWFactory) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle executes the delivery.
func (h *DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
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

	if err = aggregate.Deliver(); err != nil {
		return err
	}

	if courierID := aggregate.Courier(); courierID != nil {
		courierRepo := uow.CourierRepository()

		c, courierErr := courierRepo.Get(ctx, *courierID)
		if courierErr != nil {
			return courierErr
		}

		if courierErr = c.Complete(); courierErr != nil {
			return courierErr
		}

		if courierErr = courierRepo.Update(ctx, c); courierErr != nil {
			return courierErr
		}
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = captureOnDelivery(ctx, uow, aggregate.ID(), h.now()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// captureOnDelivery captures the outstanding amount of the order's payment
// record, if one exists and is still capturable. Orders without a record
// (or already captured ones) are left alone.
func captureOnDelivery(ctx context.Context, uow UoW, orderID kernel.UUID, at time.Time) error {
	paymentRepo := uow.PaymentRepository()

	record, err := paymentRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	if _, err = record.Capture(record.Due(), at); err != nil {
		if errors.Is(err, payment.ErrPaymentAlreadyCaptured) {
			return nil
		}
		return err
	}

	return paymentRepo.Update(ctx, record)
}
