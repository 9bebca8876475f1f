package commands

import (
	"context"
)

// ApplyDiscountCommandHandler attaches pricing strategies to open orders.
type ApplyDiscountCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewApplyDiscountCommandHandler creates a handler for applying discounts.
func NewApplyDiscountCommandHandler(uowFactory OrderUoWFactory) ApplyDiscountCommandHandler {
	return ApplyDiscountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order and sets its pricing strategy. The aggregate rejects
// the change once the order has gone past Accepted.
func (h *ApplyDiscountCommandHandler) Handle(ctx context.Context, cmd ApplyDiscountCommand) error {
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

	if err = aggregate.SetPricingStrategy(cmd.Strategy()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
