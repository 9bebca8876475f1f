package order

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"pizzeria/internal/core/domain/model/inventory"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/product"
)

// ErrInvalidQuantity is returned when an item is created or requested with a
// non-positive quantity.
var ErrInvalidQuantity = errors.New("quantity must be greater than zero")

// Item is a single order line: a pizza in a chosen size, optional toppings,
// and a quantity. Items are immutable value objects; the unit price and the
// per-unit ingredient needs are fixed at construction so a later menu change
// never alters an existing order line.
type Item struct {
	pizza    product.Pizza
	size     product.Size
	toppings []product.Topping
	quantity int

	unitPrice kernel.Money
	perUnit   inventory.Requirements
}

// NewItem creates an order line and freezes its price and ingredient needs.
//
// The unit price is quantize(sized pizza price + sum of topping prices).
// Topping prices are flat: they do not scale with the pizza size.
func NewItem(pizza product.Pizza, size product.Size, toppings []product.Topping, quantity int) (Item, error) {
	if quantity <= 0 {
		return Item{}, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}

	price, err := pizza.Price(size)
	if err != nil {
		return Item{}, err
	}

	perUnit := inventory.Requirements{}
	pizzaReqs, err := pizza.Requirements(size)
	if err != nil {
		return Item{}, err
	}
	for _, req := range pizzaReqs {
		perUnit.Merge(req.Ingredient, req.Amount)
	}

	unitPrice := price
	for _, topping := range toppings {
		unitPrice = unitPrice.Add(topping.Price())
		for _, req := range topping.Requirements() {
			perUnit.Merge(req.Ingredient, req.Amount)
		}
	}

	return Item{
		pizza:     pizza,
		size:      size,
		toppings:  append([]product.Topping(nil), toppings...),
		quantity:  quantity,
		unitPrice: unitPrice.Quantize(),
		perUnit:   perUnit,
	}, nil
}

// Pizza returns the pizza on this line.
func (i Item) Pizza() product.Pizza {
	return i.pizza
}

// Size returns the chosen pizza size.
func (i Item) Size() product.Size {
	return i.size
}

// Toppings returns a copy of the toppings on this line.
func (i Item) Toppings() []product.Topping {
	return append([]product.Topping(nil), i.toppings...)
}

// SKU returns the pizza's SKU. Implements pricing.ItemView.
func (i Item) SKU() string {
	return i.pizza.SKU()
}

// Quantity returns how many units of this line were ordered.
// Implements pricing.ItemView.
func (i Item) Quantity() int {
	return i.quantity
}

// IsPizza reports whether the line is a pizza. Every order line carries a
// pizza, so this is always true; toppings ride on their line rather than
// being lines of their own. Implements pricing.ItemView.
func (i Item) IsPizza() bool {
	return true
}

// UnitPrice returns the frozen price of a single unit, toppings included.
// Implements pricing.ItemView.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// LineTotal returns quantize(unit price x quantity).
func (i Item) LineTotal() kernel.Money {
	return i.unitPrice.MulInt(i.quantity).Quantize()
}

// Requirements returns the ingredient needs of the whole line: the frozen
// per-unit needs multiplied by the quantity.
func (i Item) Requirements() inventory.Requirements {
	factor := decimal.NewFromInt(int64(i.quantity))
	total := inventory.Requirements{}
	for ingredient, amount := range i.perUnit {
		total.Merge(ingredient, amount.Mul(factor))
	}
	return total
}
