package inventory

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"

	"pizzeria/internal/pkg/errs"
)

// Ingredient is a named unit-of-measure kitchen resource, e.g. {"Dough", "kg"}.
// It is a small comparable value object so it can key requirement maps.
type Ingredient struct {
	Name string
	Unit string
}

// NewIngredient creates an Ingredient. Name and unit must be non-empty.
func NewIngredient(name string, unit string) (Ingredient, error) {
	if name == "" {
		return Ingredient{}, errs.NewValueIsRequiredError("ingredient name")
	}
	if unit == "" {
		return Ingredient{}, errs.NewValueIsRequiredError("ingredient unit")
	}
	return Ingredient{Name: name, Unit: unit}, nil
}

// String returns "Name (unit)" for logs and error messages.
func (i Ingredient) String() string {
	return i.Name + " (" + i.Unit + ")"
}

// Requirement binds an Ingredient to a positive amount.
// Recipe amounts are defined at medium size; other sizes scale them linearly,
// each amount independently (no shared rounding across ingredients).
type Requirement struct {
	Ingredient Ingredient
	Amount     decimal.Decimal
}

// NewRequirement creates a Requirement. The amount must be strictly positive.
func NewRequirement(ingredient Ingredient, amount decimal.Decimal) (Requirement, error) {
	if ingredient.Name == "" {
		return Requirement{}, errs.NewValueIsRequiredError("ingredient")
	}
	if !amount.IsPositive() {
		return Requirement{}, errs.NewValueIsInvalidErrorWithCause(
			"requirement amount",
			errors.New(amount.String()+" is not greater than 0"),
		)
	}
	return Requirement{Ingredient: ingredient, Amount: amount}, nil
}

// Scale returns a copy of the requirement with its amount multiplied by factor.
func (r Requirement) Scale(factor decimal.Decimal) Requirement {
	return Requirement{Ingredient: r.Ingredient, Amount: r.Amount.Mul(factor)}
}

// Requirements maps ingredients to total required amounts. It is the shape in
// which the order aggregate hands ingredient demand to the Inventory.
type Requirements map[Ingredient]decimal.Decimal

// Merge adds amount to the entry for ingredient, creating it if absent.
func (r Requirements) Merge(ingredient Ingredient, amount decimal.Decimal) {
	r[ingredient] = r[ingredient].Add(amount)
}

// MergeAll folds every entry of other into r.
func (r Requirements) MergeAll(other Requirements) {
	for ingredient, amount := range other {
		r.Merge(ingredient, amount)
	}
}

// Clone returns an independent copy of the map.
func (r Requirements) Clone() Requirements {
	out := make(Requirements, len(r))
	for ingredient, amount := range r {
		out[ingredient] = amount
	}
	return out
}

// Ingredients returns the ingredient keys sorted by name, so error messages
// and audit lines have a deterministic order.
func (r Requirements) Ingredients() []Ingredient {
	out := make([]Ingredient, 0, len(r))
	for ingredient := range r {
		out = append(out, ingredient)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
