package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/payment"
	"pizzeria/internal/pkg/guard"
)

var ErrSettlePaymentCommandIsNotConstructed = errors.New(
	"SettlePaymentCommand must be created via NewSettlePaymentCommand constructor",
)

// SettlePaymentCommand represents settling an order with a payment method.
// Card and online payments are authorized and captured immediately; cash is
// authorized as a marker and captured when the courier arrives.
type SettlePaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	method  payment.Method

	guard guard.ConstructorGuard
}

// NewSettlePaymentCommand creates a command to settle an order's payment.
func NewSettlePaymentCommand(orderID kernel.UUID, method payment.Method) (SettlePaymentCommand, error) {
	cmd := SettlePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setMethod(method),
	); err != nil {
		return SettlePaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SettlePaymentCommand) Validate() error {
	return c.guard.Validate(ErrSettlePaymentCommandIsNotConstructed)
}

// OrderID returns the order being settled.
func (c SettlePaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Method returns the chosen payment method.
func (c SettlePaymentCommand) Method() payment.Method {
	return c.method
}

func (c *SettlePaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SettlePaymentCommand) setMethod(method payment.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}
