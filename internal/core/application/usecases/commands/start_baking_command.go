package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var ErrStartBakingCommandIsNotConstructed = errors.New(
	"StartBakingCommand must be created via NewStartBakingCommand constructor",
)

// StartBakingCommand represents sending an accepted order into the oven.
// This is the transition that commits ingredients and claims oven space.
type StartBakingCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartBakingCommand creates a command to start baking an order.
func NewStartBakingCommand(orderID kernel.UUID) (StartBakingCommand, error) {
	if err := orderID.Validate(); err != nil {
		return StartBakingCommand{}, err
	}

	return StartBakingCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartBakingCommand) Validate() error {
	return c.guard.Validate(ErrStartBakingCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c StartBakingCommand) OrderID() kernel.UUID {
	return c.orderID
}
