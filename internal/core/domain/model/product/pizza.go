package product

import (
	"errors"

	"pizzeria/internal/core/domain/model/inventory"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// Pizza is an immutable catalog definition of a pizza product.
//
// Invariants:
//   - defaultPrice (the MEDIUM baseline) is not negative
//   - the recipe is non-empty and every amount is strictly positive
//
// Sized prices and sized recipes are derived on demand, never stored:
// both scale linearly by the size multiplier, the price quantized to money
// precision, each recipe amount scaled independently.
type Pizza struct {
	sku          string
	name         string
	defaultPrice kernel.Money
	recipe       []inventory.Requirement
}

// NewPizza creates a Pizza definition with its MEDIUM-baseline price and recipe.
func NewPizza(sku string, name string, defaultPrice kernel.Money, recipe []inventory.Requirement) (Pizza, error) {
	if sku == "" {
		return Pizza{}, errs.NewValueIsRequiredError("pizza sku")
	}
	if name == "" {
		return Pizza{}, errs.NewValueIsRequiredError("pizza name")
	}
	if defaultPrice.IsNegative() {
		return Pizza{}, errs.NewValueIsInvalidErrorWithCause(
			"pizza price",
			errors.New("price of "+sku+" must be >= 0"),
		)
	}
	if len(recipe) == 0 {
		return Pizza{}, errs.NewValueIsRequiredErrorWithCause(
			"pizza recipe",
			errors.New("recipe of "+sku+" must be non-empty"),
		)
	}
	for _, req := range recipe {
		if !req.Amount.IsPositive() {
			return Pizza{}, errs.NewValueIsInvalidErrorWithCause(
				"pizza recipe",
				errors.New("all ingredient amounts of "+sku+" must be > 0"),
			)
		}
	}

	return Pizza{
		sku:          sku,
		name:         name,
		defaultPrice: defaultPrice.Quantize(),
		recipe:       append([]inventory.Requirement(nil), recipe...),
	}, nil
}

// SKU returns the pizza's unique catalog identifier.
func (p Pizza) SKU() string {
	return p.sku
}

// Name returns the pizza's display name.
func (p Pizza) Name() string {
	return p.name
}

// DefaultPrice returns the MEDIUM baseline price.
func (p Pizza) DefaultPrice() kernel.Money {
	return p.defaultPrice
}

// Price returns the sized unit price: quantize(defaultPrice × multiplier).
func (p Pizza) Price(size Size) (kernel.Money, error) {
	multiplier, err := size.Multiplier()
	if err != nil {
		return kernel.Money{}, err
	}
	return p.defaultPrice.Mul(multiplier).Quantize(), nil
}

// Requirements returns the recipe scaled to the given size. Each amount is
// scaled by the size multiplier independently, so no rounding artifact is
// shared across ingredients.
func (p Pizza) Requirements(size Size) ([]inventory.Requirement, error) {
	multiplier, err := size.Multiplier()
	if err != nil {
		return nil, err
	}

	out := make([]inventory.Requirement, 0, len(p.recipe))
	for _, req := range p.recipe {
		out = append(out, req.Scale(multiplier))
	}
	return out, nil
}

// Recipe returns a copy of the MEDIUM-baseline recipe.
func (p Pizza) Recipe() []inventory.Requirement {
	return append([]inventory.Requirement(nil), p.recipe...)
}
