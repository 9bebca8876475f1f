package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/menu"
)

// AddItemCommandHandler appends order lines against the shared menu.
type AddItemCommandHandler struct {
	uowFactory OrderUoWFactory
	menu       *menu.Menu
}

// NewAddItemCommandHandler creates a handler for adding order lines.
// The menu is shared, immutable process state resolved at composition time.
func NewAddItemCommandHandler(uowFactory OrderUoWFactory, m *menu.Menu) AddItemCommandHandler {
	return AddItemCommandHandler{
		uowFactory: uowFactory,
		menu:       m,
	}
}

// Handle loads the order, resolves the SKUs against the menu, and appends the
// line. The aggregate rejects the change if the order is no longer mutable.
func (h *AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) error {
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

	if err = aggregate.AddItem(h.menu, cmd.SKU(), cmd.Size(), cmd.ToppingSKUs(), cmd.Quantity()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
