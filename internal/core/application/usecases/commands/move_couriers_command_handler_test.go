package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/courier"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/payment"
)

// seedDispatchedOrder pairs a boxed order with a busy courier riding toward it.
func seedDispatchedOrder(t *testing.T, factory *fakeUoWFactory, courierX, courierY, speed float64) (*order.Order, *courier.Courier) {
	t.Helper()

	aggregate := seedOrder(t, factory, order.Boxed)

	vehicle, err := courier.NewVehicle(courier.VehicleBike, speed)
	require.NoError(t, err)
	c, err := courier.NewCourier(kernel.NewUUID(), "Rider", vehicle, fixtureLocation(t, courierX, courierY))
	require.NoError(t, err)

	require.NoError(t, c.Take(aggregate.ID()))
	require.NoError(t, aggregate.Dispatch(c.ID()))

	require.NoError(t, factory.uow.orders.Update(t.Context(), aggregate))
	require.NoError(t, factory.uow.couriers.Add(t.Context(), c))
	return aggregate, c
}

func TestMoveCouriersCommandHandler_Handle(t *testing.T) {
	t.Run("should deliver the order and capture the cash payment on arrival", func(t *testing.T) {
		factory := newFakeUoWFactory()
		// destination is (30, 40); one step of 5 closes the gap
		aggregate, c := seedDispatchedOrder(t, factory, 30, 35, 5)

		due, err := aggregate.FinalTotal(time.Now())
		require.NoError(t, err)
		record, err := payment.NewRecord(kernel.NewUUID(), aggregate.ID(), payment.MethodCash, due)
		require.NoError(t, err)
		require.NoError(t, factory.uow.payments.Add(t.Context(), record))

		cmd, err := commands.NewMoveCouriersCommand()
		require.NoError(t, err)

		h := commands.NewMoveCouriersCommandHandler(factory)
		require.NoError(t, h.Handle(t.Context(), cmd))

		storedOrder, err := factory.uow.orders.Get(t.Context(), aggregate.ID())
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, storedOrder.Status())

		storedCourier, err := factory.uow.couriers.Get(t.Context(), c.ID())
		require.NoError(t, err)
		assert.True(t, storedCourier.IsAvailable())

		storedRecord, err := factory.uow.payments.GetByOrderID(t.Context(), aggregate.ID())
		require.NoError(t, err)
		assert.Equal(t, payment.StatusCaptured, storedRecord.Status())
		assert.Equal(t, due.String(), storedRecord.Captured().String())
	})

	t.Run("should only advance a courier that is still on the way", func(t *testing.T) {
		factory := newFakeUoWFactory()
		aggregate, c := seedDispatchedOrder(t, factory, 30, 0, 5)

		cmd, err := commands.NewMoveCouriersCommand()
		require.NoError(t, err)

		h := commands.NewMoveCouriersCommandHandler(factory)
		require.NoError(t, h.Handle(t.Context(), cmd))

		storedOrder, err := factory.uow.orders.Get(t.Context(), aggregate.ID())
		require.NoError(t, err)
		assert.Equal(t, order.Dispatched, storedOrder.Status())

		storedCourier, err := factory.uow.couriers.Get(t.Context(), c.ID())
		require.NoError(t, err)
		assert.False(t, storedCourier.IsAvailable())
		assert.InDelta(t, 5, storedCourier.Location().Y(), 1e-9)
	})

	t.Run("should deliver without a payment record on file", func(t *testing.T) {
		factory := newFakeUoWFactory()
		aggregate, _ := seedDispatchedOrder(t, factory, 30, 40, 5)

		cmd, err := commands.NewMoveCouriersCommand()
		require.NoError(t, err)

		h := commands.NewMoveCouriersCommandHandler(factory)
		require.NoError(t, h.Handle(t.Context(), cmd))

		storedOrder, err := factory.uow.orders.Get(t.Context(), aggregate.ID())
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, storedOrder.Status())
	})

	t.Run("should do nothing when every courier is idle", func(t *testing.T) {
		factory := newFakeUoWFactory()
		seedCourier(t, factory, "Idle", 0, 0)

		cmd, err := commands.NewMoveCouriersCommand()
		require.NoError(t, err)

		h := commands.NewMoveCouriersCommandHandler(factory)
		assert.NoError(t, h.Handle(t.Context(), cmd))
	})
}
