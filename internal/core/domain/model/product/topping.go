package product

import (
	"errors"

	"pizzeria/internal/core/domain/model/inventory"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// Topping is an immutable catalog item that can be added to an order line.
// Its unit price is added to the pizza's sized unit price before the line
// price is quantized. A topping may carry its own ingredient requirements,
// which do not scale with pizza size.
type Topping struct {
	sku          string
	name         string
	price        kernel.Money
	requirements []inventory.Requirement
}

// NewTopping creates a Topping definition.
// The SKU and name must be non-empty and the price must not be negative.
func NewTopping(sku string, name string, price kernel.Money, requirements []inventory.Requirement) (Topping, error) {
	if sku == "" {
		return Topping{}, errs.NewValueIsRequiredError("topping sku")
	}
	if name == "" {
		return Topping{}, errs.NewValueIsRequiredError("topping name")
	}
	if price.IsNegative() {
		return Topping{}, errs.NewValueIsInvalidErrorWithCause(
			"topping price",
			errors.New("price of "+sku+" must be >= 0"),
		)
	}

	return Topping{
		sku:          sku,
		name:         name,
		price:        price.Quantize(),
		requirements: append([]inventory.Requirement(nil), requirements...),
	}, nil
}

// SKU returns the topping's unique catalog identifier.
func (t Topping) SKU() string {
	return t.sku
}

// Name returns the topping's display name.
func (t Topping) Name() string {
	return t.name
}

// Price returns the per-portion price. Topping prices do not vary with size.
func (t Topping) Price() kernel.Money {
	return t.price
}

// Requirements returns a copy of the topping's ingredient requirements.
func (t Topping) Requirements() []inventory.Requirement {
	return append([]inventory.Requirement(nil), t.requirements...)
}
