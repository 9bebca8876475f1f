package commands_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"pizzeria/internal/core/domain/model/inventory"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/menu"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/product"
)

func fixtureMenu(t *testing.T) *menu.Menu {
	t.Helper()

	dough, err := inventory.NewIngredient("Dough", "kg")
	require.NoError(t, err)
	cheese, err := inventory.NewIngredient("Cheese", "kg")
	require.NoError(t, err)

	doughReq, err := inventory.NewRequirement(dough, decimal.RequireFromString("0.250"))
	require.NoError(t, err)
	cheeseReq, err := inventory.NewRequirement(cheese, decimal.RequireFromString("0.100"))
	require.NoError(t, err)

	price, err := kernel.NewMoneyFromString("10.00")
	require.NoError(t, err)
	margherita, err := product.NewPizza("pz-margherita", "Margherita", price,
		[]inventory.Requirement{doughReq, cheeseReq})
	require.NoError(t, err)

	toppingPrice, err := kernel.NewMoneyFromString("2.00")
	require.NoError(t, err)
	olives, err := inventory.NewIngredient("Olives", "kg")
	require.NoError(t, err)
	olivesReq, err := inventory.NewRequirement(olives, decimal.RequireFromString("0.020"))
	require.NoError(t, err)
	oliveTopping, err := product.NewTopping("tp-olives", "Olives", toppingPrice,
		[]inventory.Requirement{olivesReq})
	require.NoError(t, err)

	m, err := menu.NewMenu([]product.Pizza{margherita}, []product.Topping{oliveTopping})
	require.NoError(t, err)
	return m
}

func fixtureStock(t *testing.T) *inventory.StockInventory {
	t.Helper()

	dough, err := inventory.NewIngredient("Dough", "kg")
	require.NoError(t, err)
	cheese, err := inventory.NewIngredient("Cheese", "kg")
	require.NoError(t, err)
	olives, err := inventory.NewIngredient("Olives", "kg")
	require.NoError(t, err)

	stock, err := inventory.NewStockInventory(inventory.Requirements{
		dough:  decimal.NewFromInt(10),
		cheese: decimal.NewFromInt(10),
		olives: decimal.NewFromInt(1),
	})
	require.NoError(t, err)
	return stock
}

func fixtureLocation(t *testing.T, x, y float64) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(x, y)
	require.NoError(t, err)
	return loc
}

// seedOrder creates an order with one margherita line and stores it in the
// fake repositories at the requested status.
func seedOrder(t *testing.T, factory *fakeUoWFactory, status order.Status) *order.Order {
	t.Helper()

	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), fixtureLocation(t, 30, 40), false)
	require.NoError(t, err)
	require.NoError(t, aggregate.AddItem(fixtureMenu(t), "pz-margherita", product.SizeMedium, nil, 2))

	if status != order.New {
		require.NoError(t, aggregate.Accept())
	}
	if status == order.Baking || status == order.Boxed {
		stock := fixtureStock(t)
		oven, ovenErr := inventory.NewBatchOven(10)
		require.NoError(t, ovenErr)
		require.NoError(t, aggregate.StartBaking(stock, oven))
	}
	if status == order.Boxed {
		require.NoError(t, aggregate.Box())
	}

	require.NoError(t, factory.uow.orders.Add(t.Context(), aggregate))
	return aggregate
}
