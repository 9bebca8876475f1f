package cmd

import (
	"github.com/shopspring/decimal"

	"pizzeria/internal/core/domain/model/inventory"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/menu"
	"pizzeria/internal/core/domain/model/product"
)

// catalogBuilder assembles the static menu and opening stock. The first
// construction error sticks and is reported once at the end.
type catalogBuilder struct {
	err error
}

func (b *catalogBuilder) ingredient(name, unit string) inventory.Ingredient {
	ing, err := inventory.NewIngredient(name, unit)
	if err != nil && b.err == nil {
		b.err = err
	}
	return ing
}

func (b *catalogBuilder) requirement(ing inventory.Ingredient, amount string) inventory.Requirement {
	req, err := inventory.NewRequirement(ing, decimal.RequireFromString(amount))
	if err != nil && b.err == nil {
		b.err = err
	}
	return req
}

func (b *catalogBuilder) money(s string) kernel.Money {
	m, err := kernel.NewMoneyFromString(s)
	if err != nil && b.err == nil {
		b.err = err
	}
	return m
}

func (b *catalogBuilder) pizza(sku, name, price string, reqs []inventory.Requirement) product.Pizza {
	p, err := product.NewPizza(sku, name, b.money(price), reqs)
	if err != nil && b.err == nil {
		b.err = err
	}
	return p
}

func (b *catalogBuilder) topping(sku, name, price string, reqs []inventory.Requirement) product.Topping {
	t, err := product.NewTopping(sku, name, b.money(price), reqs)
	if err != nil && b.err == nil {
		b.err = err
	}
	return t
}

// defaultCatalog builds the menu and the opening-day stock that the
// application serves until a real catalog source exists.
func defaultCatalog() (*menu.Menu, *inventory.StockInventory, error) {
	b := &catalogBuilder{}

	dough := b.ingredient("Dough", "kg")
	tomato := b.ingredient("Tomato Sauce", "l")
	mozzarella := b.ingredient("Mozzarella", "kg")
	pepperoni := b.ingredient("Pepperoni", "kg")
	gorgonzola := b.ingredient("Gorgonzola", "kg")
	olives := b.ingredient("Olives", "kg")
	mushrooms := b.ingredient("Mushrooms", "kg")

	pizzas := []product.Pizza{
		b.pizza("pz-margherita", "Margherita", "10.00", []inventory.Requirement{
			b.requirement(dough, "0.250"),
			b.requirement(tomato, "0.100"),
			b.requirement(mozzarella, "0.125"),
		}),
		b.pizza("pz-pepperoni", "Pepperoni", "12.50", []inventory.Requirement{
			b.requirement(dough, "0.250"),
			b.requirement(tomato, "0.100"),
			b.requirement(mozzarella, "0.125"),
			b.requirement(pepperoni, "0.080"),
		}),
		b.pizza("pz-quattro", "Quattro Formaggi", "14.00", []inventory.Requirement{
			b.requirement(dough, "0.250"),
			b.requirement(mozzarella, "0.100"),
			b.requirement(gorgonzola, "0.080"),
		}),
	}

	toppings := []product.Topping{
		b.topping("tp-olives", "Olives", "2.00", []inventory.Requirement{
			b.requirement(olives, "0.030"),
		}),
		b.topping("tp-mushrooms", "Mushrooms", "2.50", []inventory.Requirement{
			b.requirement(mushrooms, "0.050"),
		}),
		b.topping("tp-extra-cheese", "Extra Cheese", "3.00", []inventory.Requirement{
			b.requirement(mozzarella, "0.075"),
		}),
	}

	if b.err != nil {
		return nil, nil, b.err
	}

	m, err := menu.NewMenu(pizzas, toppings)
	if err != nil {
		return nil, nil, err
	}

	stock, err := inventory.NewStockInventory(inventory.Requirements{
		dough:      decimal.NewFromInt(50),
		tomato:     decimal.NewFromInt(20),
		mozzarella: decimal.NewFromInt(25),
		pepperoni:  decimal.NewFromInt(10),
		gorgonzola: decimal.NewFromInt(8),
		olives:     decimal.NewFromInt(5),
		mushrooms:  decimal.NewFromInt(6),
	})
	if err != nil {
		return nil, nil, err
	}

	return m, stock, nil
}
