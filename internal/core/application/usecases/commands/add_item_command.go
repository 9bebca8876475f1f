package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/product"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrAddItemCommandIsNotConstructed = errors.New(
		"AddItemCommand must be created via NewAddItemCommand constructor",
	)
	ErrSKUIsRequired = errors.New("sku is required")
)

// AddItemCommand represents a request to append a line to an order that is
// still being composed: a pizza SKU, its size, optional topping SKUs, and a
// quantity.
type AddItemCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	sku         string
	size        product.Size
	toppingSKUs []string
	quantity    int

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command to add an order line.
// Validates the order ID, SKU, size, and quantity up front; SKU existence is
// checked against the menu by the handler.
func NewAddItemCommand(
	orderID kernel.UUID,
	sku string,
	size product.Size,
	toppingSKUs []string,
	quantity int,
) (AddItemCommand, error) {
	cmd := AddItemCommand{
		toppingSKUs: append([]string(nil), toppingSKUs...),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSKU(sku),
		cmd.setSize(size),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AddItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SKU returns the pizza SKU to add.
func (c AddItemCommand) SKU() string {
	return c.sku
}

// Size returns the requested pizza size.
func (c AddItemCommand) Size() product.Size {
	return c.size
}

// ToppingSKUs returns a copy of the requested topping SKUs.
func (c AddItemCommand) ToppingSKUs() []string {
	return append([]string(nil), c.toppingSKUs...)
}

// Quantity returns how many units to add.
func (c AddItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddItemCommand) setSKU(sku string) error {
	if sku == "" {
		return ErrSKUIsRequired
	}

	c.sku = sku
	return nil
}

func (c *AddItemCommand) setSize(size product.Size) error {
	if err := size.Validate(); err != nil {
		return err
	}

	c.size = size
	return nil
}

func (c *AddItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return order.ErrInvalidQuantity
	}

	c.quantity = quantity
	return nil
}
