package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrRefundPaymentCommandIsNotConstructed = errors.New(
	"RefundPaymentCommand must be created via NewRefundPaymentCommand constructor",
)

// RefundPaymentCommand represents returning part or all of a captured payment.
type RefundPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	amount  kernel.Money

	guard guard.ConstructorGuard
}

// NewRefundPaymentCommand creates a command to refund an order's payment.
// The amount must not be negative; whether it fits what was captured is
// decided by the payment record.
func NewRefundPaymentCommand(orderID kernel.UUID, amount kernel.Money) (RefundPaymentCommand, error) {
	cmd := RefundPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAmount(amount),
	); err != nil {
		return RefundPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RefundPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRefundPaymentCommandIsNotConstructed)
}

// OrderID returns the order whose payment is refunded.
func (c RefundPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Amount returns the amount to refund.
func (c RefundPaymentCommand) Amount() kernel.Money {
	return c.amount
}

func (c *RefundPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RefundPaymentCommand) setAmount(amount kernel.Money) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidError("amount")
	}

	c.amount = amount.Quantize()
	return nil
}
