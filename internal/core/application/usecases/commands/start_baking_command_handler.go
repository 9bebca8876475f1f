package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/inventory"
)

// StartBakingCommandHandler drives the bake transition against the shared
// kitchen resources. The stock and the oven are process-wide singletons; the
// aggregate's StartBaking keeps the reserve/commit/release protocol atomic,
// so a failure here never leaks a reservation.
type StartBakingCommandHandler struct {
	uowFactory OrderUoWFactory
	stock      inventory.Inventory
	oven       inventory.Oven
}

// NewStartBakingCommandHandler creates a handler for the bake transition.
func NewStartBakingCommandHandler(
	uowFactory OrderUoWFactory,
	stock inventory.Inventory,
	oven inventory.Oven,
) StartBakingCommandHandler {
	return StartBakingCommandHandler{
		uowFactory: uowFactory,
		stock:      stock,
		oven:       oven,
	}
}

// Handle loads the order and sends it into the oven.
func (h *StartBakingCommandHandler) Handle(ctx context.Context, cmd StartBakingCommand) error {
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

	if err = aggregate.StartBaking(h.stock, h.oven); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
