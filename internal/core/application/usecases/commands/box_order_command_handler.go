package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/inventory"
)

// BoxOrderCommandHandler moves orders from Baking to Boxed and frees their
// oven batch. The oven is only released after the transition and the update
// both succeed, so a failed command never under-reports oven usage.
type BoxOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	oven       inventory.Oven
}

// NewBoxOrderCommandHandler creates a handler for boxing orders.
func NewBoxOrderCommandHandler(uowFactory OrderUoWFactory, oven inventory.Oven) BoxOrderCommandHandler {
	return BoxOrderCommandHandler{
		uowFactory: uowFactory,
		oven:       oven,
	}
}

// Handle loads the order, boxes it, and frees its oven batch.
func (h *BoxOrderCommandHandler) Handle(ctx context.Context, cmd BoxOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Box(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.oven.FinishBatch(aggregate.TotalUnits())
}
