package commands

import (
	"context"
	"time"

	"pizzeria/internal/core/domain/model/courier"
)

// MoveCouriersCommandHandler advances all in-flight deliveries by one tick.
// When a courier reaches the destination the order is delivered, the courier
// freed, and an outstanding cash payment captured.
type MoveCouriersCommandHandler struct {
	uowFactory UoWFactory

	// now is the clock used to stamp payment captures. Overridable in tests.
	now func() time.Time
}

// NewMoveCouriersCommandHandler creates a handler for the movement tick.
func NewMoveCouriersCommandHandler(uowFactory UoWFactory) MoveCouriersCommandHandler {
	return MoveCouriersCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle moves every busy courier toward its order's destination. All courier
// moves and resulting deliveries commit in a single transaction, matching the
// simulation tick they belong to.
func (h *MoveCouriersCommandHandler) Handle(ctx context.Context, cmd MoveCouriersCommand) error {
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

	busyCouriers, err := uow.CourierRepository().GetAllBusy(ctx)
	if err != nil {
		return err
	}

	for _, c := range busyCouriers {
		if err = h.moveCourier(ctx, uow, c); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// moveCourier advances a single courier and completes the delivery on arrival.
func (h *MoveCouriersCommandHandler) moveCourier(ctx context.Context, uow UoW, c *courier.Courier) error {
	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, *c.OrderID())
	if err != nil {
		return err
	}

	arrived, err := c.Move(aggregate.Destination())
	if err != nil {
		return err
	}

	if arrived {
		if err = aggregate.Deliver(); err != nil {
			return err
		}

		if err = c.Complete(); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}

		if err = captureOnDelivery(ctx, uow, aggregate.ID(), h.now()); err != nil {
			return err
		}
	}

	return uow.CourierRepository().Update(ctx, c)
}
