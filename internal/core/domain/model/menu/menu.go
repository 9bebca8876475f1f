// Package menu provides the read-only catalog orders are composed against.
// A Menu is built once from pizza and topping definitions and shared across
// many orders; it owns no mutable state after construction.
package menu

import (
	"errors"
	"fmt"
	"strings"

	"pizzeria/internal/core/domain/model/product"
	"pizzeria/internal/pkg/errs"
)

var (
	// ErrDuplicateSKU is returned at construction when two catalog items share
	// a SKU, compared case-insensitively.
	ErrDuplicateSKU = errors.New("duplicate SKU")

	// ErrMenuItemNotFound is the unwrap target for SKU lookup misses.
	ErrMenuItemNotFound = errors.New("menu item not found")
)

// Menu is the immutable product catalog: pizzas and toppings indexed by SKU.
//
// Lookup misses return an error wrapping ErrMenuItemNotFound rather than a
// nil item, so callers cannot accidentally compose an order line against an
// absent product.
type Menu struct {
	pizzas     []product.Pizza
	toppings   []product.Topping
	pizzaBySKU map[string]int
	topBySKU   map[string]int
}

// NewMenu builds a Menu from catalog definitions. Construction fails with an
// error wrapping ErrDuplicateSKU when any two items, pizza or topping, share
// a SKU ignoring case.
func NewMenu(pizzas []product.Pizza, toppings []product.Topping) (*Menu, error) {
	m := &Menu{
		pizzas:     append([]product.Pizza(nil), pizzas...),
		toppings:   append([]product.Topping(nil), toppings...),
		pizzaBySKU: make(map[string]int, len(pizzas)),
		topBySKU:   make(map[string]int, len(toppings)),
	}

	seen := make(map[string]struct{}, len(pizzas)+len(toppings))
	for i, p := range m.pizzas {
		key := normalizeSKU(p.SKU())
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSKU, p.SKU())
		}
		seen[key] = struct{}{}
		m.pizzaBySKU[key] = i
	}
	for i, tp := range m.toppings {
		key := normalizeSKU(tp.SKU())
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSKU, tp.SKU())
		}
		seen[key] = struct{}{}
		m.topBySKU[key] = i
	}

	return m, nil
}

// Pizzas returns a copy of all pizza definitions in catalog order.
func (m *Menu) Pizzas() []product.Pizza {
	return append([]product.Pizza(nil), m.pizzas...)
}

// Toppings returns a copy of all topping definitions in catalog order.
func (m *Menu) Toppings() []product.Topping {
	return append([]product.Topping(nil), m.toppings...)
}

// FindPizzaSKU looks up a pizza by SKU, ignoring case.
func (m *Menu) FindPizzaSKU(sku string) (product.Pizza, error) {
	i, ok := m.pizzaBySKU[normalizeSKU(sku)]
	if !ok {
		return product.Pizza{}, notFound("pizza", sku)
	}
	return m.pizzas[i], nil
}

// FindToppingSKU looks up a topping by SKU, ignoring case.
func (m *Menu) FindToppingSKU(sku string) (product.Topping, error) {
	i, ok := m.topBySKU[normalizeSKU(sku)]
	if !ok {
		return product.Topping{}, notFound("topping", sku)
	}
	return m.toppings[i], nil
}

// SearchPizzas returns every pizza whose name contains the query as a
// case-insensitive substring, in catalog order. The result may be empty;
// search misses are not an error.
func (m *Menu) SearchPizzas(query string) []product.Pizza {
	needle := strings.ToLower(query)

	out := make([]product.Pizza, 0)
	for _, p := range m.pizzas {
		if strings.Contains(strings.ToLower(p.Name()), needle) {
			out = append(out, p)
		}
	}
	return out
}

// SearchToppings returns every topping whose name contains the query as a
// case-insensitive substring, in catalog order.
func (m *Menu) SearchToppings(query string) []product.Topping {
	needle := strings.ToLower(query)

	out := make([]product.Topping, 0)
	for _, tp := range m.toppings {
		if strings.Contains(strings.ToLower(tp.Name()), needle) {
			out = append(out, tp)
		}
	}
	return out
}

func normalizeSKU(sku string) string {
	return strings.ToLower(strings.TrimSpace(sku))
}

func notFound(kind string, sku string) error {
	return fmt.Errorf("%w: %w", ErrMenuItemNotFound,
		errs.NewObjectNotFoundError(kind, sku))
}
