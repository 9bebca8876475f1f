package services

import (
	"errors"
	"math"

	"pizzeria/internal/core/domain/model/courier"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

var (
	// ErrNoCouriersAvailable is returned when no free courier can take the order.
	ErrNoCouriersAvailable = errors.New("no couriers available")

	// ErrCourierUnavailable is returned when the chosen courier became busy
	// between selection and assignment. The order is left untouched, so the
	// dispatch can simply be retried.
	ErrCourierUnavailable = errors.New("chosen courier is unavailable")
)

// AssignmentStrategy selects which free courier should carry an order headed
// for the given destination. Implementations must not mutate the couriers.
type AssignmentStrategy interface {
	// Choose picks one courier out of the candidates.
	// Returns ErrNoCouriersAvailable when no candidate qualifies.
	Choose(destination kernel.Location, couriers []*courier.Courier) (*courier.Courier, error)
}

// NearestCourier is the default assignment strategy: it picks the free
// courier with the shortest straight-line distance to the destination.
// Ties go to the courier listed first.
type NearestCourier struct{}

// NewNearestCourier creates a NearestCourier strategy.
func NewNearestCourier() NearestCourier {
	return NearestCourier{}
}

// Choose implements AssignmentStrategy.
func (NearestCourier) Choose(destination kernel.Location, couriers []*courier.Courier) (*courier.Courier, error) {
	var (
		best         *courier.Courier
		bestDistance = math.MaxFloat64
	)

	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}

		if !c.IsAvailable() {
			continue
		}

		distance, err := c.DistanceTo(destination)
		if err != nil {
			return nil, err
		}

		if distance < bestDistance {
			bestDistance = distance
			best = c
		}
	}

	if best == nil {
		return nil, ErrNoCouriersAvailable
	}

	return best, nil
}

// Dispatcher is a domain service that hands boxed orders to couriers.
//
// Business rules:
//   - Only boxed orders can be dispatched; the order aggregate enforces this
//   - The courier is chosen by the configured AssignmentStrategy
//   - Assignment is atomic: a failure on either side leaves both the order
//     and the courier in their previous state
type Dispatcher struct {
	strategy AssignmentStrategy
}

// NewDispatcher creates a Dispatcher. A nil strategy falls back to
// NearestCourier.
func NewDispatcher(strategy AssignmentStrategy) Dispatcher {
	if strategy == nil {
		strategy = NewNearestCourier()
	}
	return Dispatcher{strategy: strategy}
}

// Dispatch chooses a courier for the order and executes the assignment.
//
// Parameters:
//   - o: the boxed order to hand over
//   - couriers: the candidate couriers
//
// Returns:
//   - *courier.Courier: the courier now carrying the order
//   - error: ErrNoCouriersAvailable if nobody can take it,
//     ErrCourierUnavailable if the chosen courier was taken concurrently,
//     or a transition error from the order
func (d Dispatcher) Dispatch(o *order.Order, couriers []*courier.Courier) (*courier.Courier, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	chosen, err := d.strategy.Choose(o.Destination(), couriers)
	if err != nil {
		return nil, err
	}

	if err := chosen.Take(o.ID()); err != nil {
		if errors.Is(err, courier.ErrCourierBusy) {
			return nil, errors.Join(ErrCourierUnavailable, err)
		}
		return nil, err
	}

	if err := o.Dispatch(chosen.ID()); err != nil {
		// Roll the courier back so a failed transition has no side effects.
		if freeErr := chosen.Complete(); freeErr != nil {
			return nil, errors.Join(err, freeErr)
		}
		return nil, err
	}

	return chosen, nil
}
