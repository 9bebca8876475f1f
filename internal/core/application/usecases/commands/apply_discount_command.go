package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/pricing"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrApplyDiscountCommandIsNotConstructed = errors.New(
		"ApplyDiscountCommand must be created via NewApplyDiscountCommand constructor",
	)
	// ErrNilStrategy is returned when no pricing strategy is supplied.
	ErrNilStrategy = errors.New("pricing strategy is required")
)

// ApplyDiscountCommand attaches a pricing strategy to an open order.
type ApplyDiscountCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	strategy pricing.Strategy

	guard guard.ConstructorGuard
}

// NewApplyDiscountCommand creates a command to apply the given strategy.
func NewApplyDiscountCommand(orderID kernel.UUID, strategy pricing.Strategy) (ApplyDiscountCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ApplyDiscountCommand{}, err
	}

	if strategy == nil {
		return ApplyDiscountCommand{}, ErrNilStrategy
	}

	return ApplyDiscountCommand{
		orderID:  orderID,
		strategy: strategy,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyDiscountCommand) Validate() error {
	return c.guard.Validate(ErrApplyDiscountCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ApplyDiscountCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Strategy returns the pricing strategy to apply.
func (c ApplyDiscountCommand) Strategy() pricing.Strategy {
	return c.strategy
}
