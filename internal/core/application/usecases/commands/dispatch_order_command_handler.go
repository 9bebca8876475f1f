package commands

import (
	"context"

	"pizzeria/internal/core/domain/services"
)

// DispatchOrderCommandHandler assigns a courier to a boxed order. It is a
// cross-aggregate operation: the order and the chosen courier change together
// inside one transaction.
type DispatchOrderCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.Dispatcher
}

// NewDispatchOrderCommandHandler creates a handler for dispatching orders.
func NewDispatchOrderCommandHandler(uowFactory UoWFactory, dispatcher services.Dispatcher) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle loads the order and the free couriers, lets the dispatcher choose,
// and persists both sides of the assignment atomically.
func (h *DispatchOrderCommandHandler) Handle(ctx context.Context, cmd DispatchOrderCommand) error {
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
	courierRepo := uow.CourierRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	freeCouriers, err := courierRepo.GetAllFree(ctx)
	if err != nil {
		return err
	}

	chosen, err := h.dispatcher.Dispatch(aggregate, freeCouriers)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, chosen); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
