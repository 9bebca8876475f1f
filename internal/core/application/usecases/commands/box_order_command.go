package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var ErrBoxOrderCommandIsNotConstructed = errors.New(
	"BoxOrderCommand must be created via NewBoxOrderCommand constructor",
)

// BoxOrderCommand represents taking a finished order out of the oven and
// packing it. Boxing is mandatory before dispatch.
type BoxOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewBoxOrderCommand creates a command to box an order.
func NewBoxOrderCommand(orderID kernel.UUID) (BoxOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return BoxOrderCommand{}, err
	}

	return BoxOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c BoxOrderCommand) Validate() error {
	return c.guard.Validate(ErrBoxOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c BoxOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
