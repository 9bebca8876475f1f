package inventory_test

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzeria/internal/core/domain/model/inventory"
)

func ingredient(t *testing.T, name string) inventory.Ingredient {
	t.Helper()
	ing, err := inventory.NewIngredient(name, "kg")
	require.NoError(t, err)
	return ing
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newStock(t *testing.T, seed map[string]string) *inventory.StockInventory {
	t.Helper()
	initial := make(inventory.Requirements)
	for name, amt := range seed {
		initial[ingredient(t, name)] = amount(amt)
	}

	inv, err := inventory.NewStockInventory(initial)
	require.NoError(t, err)
	return inv
}

func TestNewStockInventory(t *testing.T) {
	t.Run("copies the initial stock", func(t *testing.T) {
		dough := ingredient(t, "Dough")
		initial := inventory.Requirements{dough: amount("5")}

		inv, err := inventory.NewStockInventory(initial)
		require.NoError(t, err)

		initial[dough] = amount("0")
		assert.Equal(t, "5", inv.CurrentStock()[dough].String())
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		_, err := inventory.NewStockInventory(inventory.Requirements{
			ingredient(t, "Dough"): amount("-1"),
		})

		require.Error(t, err)
	})
}

func TestStockInventory_Availability(t *testing.T) {
	inv := newStock(t, map[string]string{"Dough": "2.0", "Cheese": "0.6"})

	t.Run("true when stock covers every requirement", func(t *testing.T) {
		ok := inv.Availability(inventory.Requirements{
			ingredient(t, "Dough"):  amount("2.0"),
			ingredient(t, "Cheese"): amount("0.6"),
		})

		assert.True(t, ok)
	})

	t.Run("false when any ingredient falls short", func(t *testing.T) {
		ok := inv.Availability(inventory.Requirements{
			ingredient(t, "Dough"):  amount("1.0"),
			ingredient(t, "Cheese"): amount("0.7"),
		})

		assert.False(t, ok)
	})

	t.Run("false for an ingredient not stocked at all", func(t *testing.T) {
		ok := inv.Availability(inventory.Requirements{
			ingredient(t, "Truffle"): amount("0.1"),
		})

		assert.False(t, ok)
	})

	t.Run("never mutates stock", func(t *testing.T) {
		before := inv.CurrentStock()
		inv.Availability(inventory.Requirements{ingredient(t, "Dough"): amount("1.0")})

		assert.Equal(t, before, inv.CurrentStock())
	})
}

func TestStockInventory_ReserveReleaseRoundTrip(t *testing.T) {
	inv := newStock(t, map[string]string{"Dough": "2.0", "Cheese": "0.6"})
	dough := ingredient(t, "Dough")
	cheese := ingredient(t, "Cheese")

	reqs := inventory.Requirements{dough: amount("2.0"), cheese: amount("0.6")}

	token, err := inv.Reserve(reqs)
	require.NoError(t, err)

	// Earmarked stock is not available to anyone else.
	assert.Equal(t, "0", inv.CurrentStock()[dough].String())
	assert.False(t, inv.Availability(inventory.Requirements{dough: amount("0.1")}))

	require.NoError(t, inv.Release(token))

	// Release restores the pre-reservation stock exactly.
	assert.Equal(t, "2", inv.CurrentStock()[dough].String())
	assert.Equal(t, "0.6", inv.CurrentStock()[cheese].String())
}

func TestStockInventory_ReserveCommit(t *testing.T) {
	inv := newStock(t, map[string]string{"Dough": "3.0"})
	dough := ingredient(t, "Dough")

	token, err := inv.Reserve(inventory.Requirements{dough: amount("1.25")})
	require.NoError(t, err)

	require.NoError(t, inv.Commit(token))

	assert.Equal(t, "1.75", inv.CurrentStock()[dough].String())
}

func TestStockInventory_InsufficientStock(t *testing.T) {
	inv := newStock(t, map[string]string{"Dough": "1.0", "Cheese": "0.2"})

	_, err := inv.Reserve(inventory.Requirements{
		ingredient(t, "Dough"):  amount("2.5"),
		ingredient(t, "Cheese"): amount("0.1"),
	})

	require.Error(t, err)
	require.ErrorIs(t, err, inventory.ErrInsufficientIngredients)

	var shortageErr *inventory.InsufficientIngredientsError
	require.ErrorAs(t, err, &shortageErr)
	require.Len(t, shortageErr.Shortages, 1)
	assert.Equal(t, "Dough", shortageErr.Shortages[0].Ingredient.Name)
	assert.Equal(t, "2.5", shortageErr.Shortages[0].Needed.String())
	assert.Equal(t, "1", shortageErr.Shortages[0].Available.String())

	// No partial reservation: stock is untouched.
	assert.Equal(t, "1", inv.CurrentStock()[ingredient(t, "Dough")].String())
	assert.Equal(t, "0.2", inv.CurrentStock()[ingredient(t, "Cheese")].String())
}

func TestStockInventory_TokenIsSingleUse(t *testing.T) {
	t.Run("double commit fails", func(t *testing.T) {
		inv := newStock(t, map[string]string{"Dough": "1.0"})
		token, _ := inv.Reserve(inventory.Requirements{ingredient(t, "Dough"): amount("1.0")})

		require.NoError(t, inv.Commit(token))
		require.ErrorIs(t, inv.Commit(token), inventory.ErrReservationAlreadySettled)
	})

	t.Run("double release fails", func(t *testing.T) {
		inv := newStock(t, map[string]string{"Dough": "1.0"})
		token, _ := inv.Reserve(inventory.Requirements{ingredient(t, "Dough"): amount("1.0")})

		require.NoError(t, inv.Release(token))
		require.ErrorIs(t, inv.Release(token), inventory.ErrReservationAlreadySettled)
	})

	t.Run("release after commit fails", func(t *testing.T) {
		inv := newStock(t, map[string]string{"Dough": "1.0"})
		token, _ := inv.Reserve(inventory.Requirements{ingredient(t, "Dough"): amount("1.0")})

		require.NoError(t, inv.Commit(token))
		require.ErrorIs(t, inv.Release(token), inventory.ErrReservationAlreadySettled)
	})

	t.Run("commit after release fails and does not deduct", func(t *testing.T) {
		inv := newStock(t, map[string]string{"Dough": "1.0"})
		dough := ingredient(t, "Dough")
		token, _ := inv.Reserve(inventory.Requirements{dough: amount("1.0")})

		require.NoError(t, inv.Release(token))
		require.ErrorIs(t, inv.Commit(token), inventory.ErrReservationAlreadySettled)
		assert.Equal(t, "1", inv.CurrentStock()[dough].String())
	})

	t.Run("unknown token fails", func(t *testing.T) {
		inv := newStock(t, map[string]string{"Dough": "1.0"})
		other := newStock(t, map[string]string{"Dough": "1.0"})
		token, _ := other.Reserve(inventory.Requirements{ingredient(t, "Dough"): amount("1.0")})

		require.ErrorIs(t, inv.Commit(token), inventory.ErrReservationNotFound)
	})
}

func TestStockInventory_ReserveValidation(t *testing.T) {
	inv := newStock(t, map[string]string{"Dough": "1.0"})

	t.Run("empty requirements rejected", func(t *testing.T) {
		_, err := inv.Reserve(inventory.Requirements{})

		require.ErrorIs(t, err, inventory.ErrEmptyRequirements)
	})

	t.Run("non-positive amount rejected", func(t *testing.T) {
		_, err := inv.Reserve(inventory.Requirements{ingredient(t, "Dough"): amount("0")})

		require.Error(t, err)
	})
}

func TestStockInventory_ConcurrentReserve(t *testing.T) {
	// 10 goroutines race for stock that can satisfy exactly 4 reservations.
	inv := newStock(t, map[string]string{"Dough": "4.0"})
	dough := ingredient(t, "Dough")

	var wg sync.WaitGroup
	results := make(chan error, 10)

	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := inv.Reserve(inventory.Requirements{dough: amount("1.0")})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			require.ErrorIs(t, err, inventory.ErrInsufficientIngredients)
		}
	}

	assert.Equal(t, 4, succeeded)
	assert.Equal(t, "0", inv.CurrentStock()[dough].String())
}

func TestReservationToken_Snapshot(t *testing.T) {
	inv := newStock(t, map[string]string{"Dough": "2.0"})
	dough := ingredient(t, "Dough")

	token, err := inv.Reserve(inventory.Requirements{dough: amount("1.5")})
	require.NoError(t, err)

	snapshot := token.Snapshot()
	assert.Equal(t, "1.5", snapshot[dough].String())

	// Mutating the snapshot must not affect the token.
	snapshot[dough] = amount("99")
	assert.Equal(t, "1.5", token.Snapshot()[dough].String())
}
