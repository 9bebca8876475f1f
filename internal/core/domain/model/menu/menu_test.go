package menu_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzeria/internal/core/domain/model/inventory"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/menu"
	"pizzeria/internal/core/domain/model/product"
	"pizzeria/internal/pkg/errs"
)

func newPizza(t *testing.T, sku, name, price string) product.Pizza {
	t.Helper()
	dough, err := inventory.NewIngredient("Dough", "kg")
	require.NoError(t, err)
	req, err := inventory.NewRequirement(dough, decimal.RequireFromString("1.0"))
	require.NoError(t, err)
	money, err := kernel.NewMoneyFromString(price)
	require.NoError(t, err)

	p, err := product.NewPizza(sku, name, money, []inventory.Requirement{req})
	require.NoError(t, err)
	return p
}

func newTopping(t *testing.T, sku, name, price string) product.Topping {
	t.Helper()
	money, err := kernel.NewMoneyFromString(price)
	require.NoError(t, err)

	tp, err := product.NewTopping(sku, name, money, nil)
	require.NoError(t, err)
	return tp
}

func TestNewMenu(t *testing.T) {
	margherita := newPizza(t, "pz-mar", "Margherita", "10.00")
	pepperoni := newPizza(t, "pz-pep", "Pepperoni", "12.00")
	cheese := newTopping(t, "tp-exch", "Extra Cheese", "2.00")

	t.Run("should build catalog", func(t *testing.T) {
		m, err := menu.NewMenu([]product.Pizza{margherita, pepperoni}, []product.Topping{cheese})

		require.NoError(t, err)
		assert.Len(t, m.Pizzas(), 2)
		assert.Len(t, m.Toppings(), 1)
	})

	t.Run("rejects duplicate pizza SKUs case-insensitively", func(t *testing.T) {
		dup := newPizza(t, "PZ-MAR", "Margherita Bianca", "11.00")

		_, err := menu.NewMenu([]product.Pizza{margherita, dup}, nil)

		require.ErrorIs(t, err, menu.ErrDuplicateSKU)
	})

	t.Run("rejects SKU shared between pizza and topping", func(t *testing.T) {
		clash := newTopping(t, "pz-mar", "Cheese", "1.00")

		_, err := menu.NewMenu([]product.Pizza{margherita}, []product.Topping{clash})

		require.ErrorIs(t, err, menu.ErrDuplicateSKU)
	})
}

func TestMenu_FindBySKU(t *testing.T) {
	m, err := menu.NewMenu(
		[]product.Pizza{newPizza(t, "pz-mar", "Margherita", "10.00")},
		[]product.Topping{newTopping(t, "tp-exch", "Extra Cheese", "2.00")},
	)
	require.NoError(t, err)

	t.Run("finds pizza ignoring case", func(t *testing.T) {
		p, findErr := m.FindPizzaSKU("PZ-MAR")

		require.NoError(t, findErr)
		assert.Equal(t, "Margherita", p.Name())
	})

	t.Run("finds topping", func(t *testing.T) {
		tp, findErr := m.FindToppingSKU("tp-exch")

		require.NoError(t, findErr)
		assert.Equal(t, "Extra Cheese", tp.Name())
	})

	t.Run("pizza lookup miss", func(t *testing.T) {
		_, findErr := m.FindPizzaSKU("pz-hawaii")

		require.ErrorIs(t, findErr, menu.ErrMenuItemNotFound)
		require.ErrorIs(t, findErr, errs.ErrObjectNotFound)
	})

	t.Run("topping lookup does not see pizza SKUs", func(t *testing.T) {
		_, findErr := m.FindToppingSKU("pz-mar")

		require.ErrorIs(t, findErr, menu.ErrMenuItemNotFound)
	})
}

func TestMenu_Search(t *testing.T) {
	m, err := menu.NewMenu(
		[]product.Pizza{
			newPizza(t, "pz-mar", "Margherita", "10.00"),
			newPizza(t, "pz-marx", "Margherita Bianca", "11.00"),
			newPizza(t, "pz-pep", "Pepperoni", "12.00"),
		},
		[]product.Topping{newTopping(t, "tp-exch", "Extra Cheese", "2.00")},
	)
	require.NoError(t, err)

	t.Run("substring match is case-insensitive and ordered", func(t *testing.T) {
		found := m.SearchPizzas("MARGHERITA")

		require.Len(t, found, 2)
		assert.Equal(t, "pz-mar", found[0].SKU())
		assert.Equal(t, "pz-marx", found[1].SKU())
	})

	t.Run("no match returns empty slice", func(t *testing.T) {
		found := m.SearchPizzas("hawaii")

		assert.Empty(t, found)
	})

	t.Run("empty query matches everything", func(t *testing.T) {
		assert.Len(t, m.SearchPizzas(""), 3)
	})

	t.Run("topping search", func(t *testing.T) {
		assert.Len(t, m.SearchToppings("cheese"), 1)
	})
}
