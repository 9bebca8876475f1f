package courier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzeria/internal/core/domain/model/courier"
	"pizzeria/internal/core/domain/model/kernel"
)

func location(t *testing.T, x, y float64) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(x, y)
	require.NoError(t, err)
	return loc
}

func scooter(t *testing.T, speed float64) courier.Vehicle {
	t.Helper()
	vehicle, err := courier.NewVehicle(courier.VehicleScooter, speed)
	require.NoError(t, err)
	return vehicle
}

func newCourier(t *testing.T, speed float64, x, y float64) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewUUID(), "Alice", scooter(t, speed), location(t, x, y))
	require.NoError(t, err)
	return c
}

func TestNewVehicle(t *testing.T) {
	t.Run("should create vehicle with positive speed", func(t *testing.T) {
		vehicle, err := courier.NewVehicle(courier.VehicleBike, 1.5)

		require.NoError(t, err)
		assert.Equal(t, courier.VehicleBike, vehicle.Kind())
		assert.InDelta(t, 1.5, vehicle.Speed(), 1e-9)
	})

	t.Run("should reject non-positive speed", func(t *testing.T) {
		_, err := courier.NewVehicle(courier.VehicleCar, 0)
		assert.Error(t, err)

		_, err = courier.NewVehicle(courier.VehicleCar, -2)
		assert.Error(t, err)
	})

	t.Run("should reject unknown kind", func(t *testing.T) {
		_, err := courier.NewVehicle(courier.VehicleKindUnknown, 1)
		assert.Error(t, err)
	})

	t.Run("should reject zero value vehicle", func(t *testing.T) {
		var vehicle courier.Vehicle
		assert.Error(t, vehicle.Validate())
	})

	t.Run("should round-trip kind tokens", func(t *testing.T) {
		for _, kind := range []courier.VehicleKind{courier.VehicleBike, courier.VehicleScooter, courier.VehicleCar} {
			parsed, err := courier.VehicleKindFromString(kind.String())

			require.NoError(t, err)
			assert.Equal(t, kind, parsed)
		}
	})
}

func TestNewCourier(t *testing.T) {
	t.Run("should create a free courier", func(t *testing.T) {
		c := newCourier(t, 2, 10, 10)

		assert.True(t, c.IsAvailable())
		assert.Nil(t, c.OrderID())
		assert.Equal(t, "Alice", c.Name())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := courier.NewCourier(kernel.NewUUID(), "", scooter(t, 2), location(t, 0, 0))
		assert.Error(t, err)
	})

	t.Run("should reject invalid vehicle", func(t *testing.T) {
		var vehicle courier.Vehicle
		_, err := courier.NewCourier(kernel.NewUUID(), "Alice", vehicle, location(t, 0, 0))
		assert.Error(t, err)
	})

	t.Run("should reject direct struct instantiation", func(t *testing.T) {
		var c courier.Courier
		assert.ErrorIs(t, c.Validate(), courier.ErrCourierIsNotConstructed)
	})
}

func TestCourierAssignment(t *testing.T) {
	t.Run("should take and complete an order", func(t *testing.T) {
		c := newCourier(t, 2, 10, 10)
		orderID := kernel.NewUUID()

		require.NoError(t, c.Take(orderID))

		assert.False(t, c.IsAvailable())
		require.NotNil(t, c.OrderID())
		assert.True(t, c.OrderID().IsEqual(orderID))

		require.NoError(t, c.Complete())
		assert.True(t, c.IsAvailable())
	})

	t.Run("should refuse a second order while busy", func(t *testing.T) {
		c := newCourier(t, 2, 10, 10)
		first := kernel.NewUUID()
		require.NoError(t, c.Take(first))

		err := c.Take(kernel.NewUUID())

		assert.ErrorIs(t, err, courier.ErrCourierBusy)
		assert.True(t, c.OrderID().IsEqual(first), "existing assignment is kept")
	})

	t.Run("should refuse to complete while idle", func(t *testing.T) {
		c := newCourier(t, 2, 10, 10)
		assert.ErrorIs(t, c.Complete(), courier.ErrCourierIdle)
	})
}

func TestCourierMovement(t *testing.T) {
	t.Run("should advance by vehicle speed per tick", func(t *testing.T) {
		c := newCourier(t, 3, 0, 0)
		target := location(t, 10, 0)

		arrived, err := c.Move(target)

		require.NoError(t, err)
		assert.False(t, arrived)
		assert.InDelta(t, 3, c.Location().X(), 1e-9)
	})

	t.Run("should snap to the target when within reach", func(t *testing.T) {
		c := newCourier(t, 5, 8, 0)
		target := location(t, 10, 0)

		arrived, err := c.Move(target)

		require.NoError(t, err)
		assert.True(t, arrived)
		equal, err := c.Location().IsEqual(target)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("should arrive across ticks", func(t *testing.T) {
		c := newCourier(t, 4, 0, 0)
		target := location(t, 6, 8) // distance 10

		ticks := 0
		arrived := false
		for !arrived {
			var err error
			arrived, err = c.Move(target)
			require.NoError(t, err)
			ticks++
			require.Less(t, ticks, 10, "courier must arrive in bounded ticks")
		}

		assert.Equal(t, 3, ticks)
	})

	t.Run("should measure distance to a location", func(t *testing.T) {
		c := newCourier(t, 1, 0, 0)

		distance, err := c.DistanceTo(location(t, 3, 4))

		require.NoError(t, err)
		assert.InDelta(t, 5, distance, 1e-9)
	})
}

func TestRestoreCourier(t *testing.T) {
	t.Run("should rehydrate a busy courier", func(t *testing.T) {
		orderID := kernel.NewUUID()

		restored, err := courier.RestoreCourier(
			kernel.NewUUID(), "Bob", scooter(t, 2), location(t, 5, 5), &orderID,
		)

		require.NoError(t, err)
		assert.False(t, restored.IsAvailable())
		require.NotNil(t, restored.OrderID())
		assert.True(t, restored.OrderID().IsEqual(orderID))
	})
}
