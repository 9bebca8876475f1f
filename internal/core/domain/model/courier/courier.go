package courier

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")

	// ErrCourierBusy is returned when a busy courier is asked to take another order.
	ErrCourierBusy = errors.New("courier is already carrying an order")

	// ErrCourierIdle is returned when an idle courier is asked to complete a delivery.
	ErrCourierIdle = errors.New("courier is not carrying an order")
)

// Courier represents a delivery courier. It is an aggregate root that manages
// the courier's identity, position, and current assignment.
//
// Business rules:
//   - Courier must have a valid UUID, non-empty name, and a valid vehicle
//   - A courier carries at most one order at a time
//   - Movement advances toward a target by the vehicle's speed per tick
//
// Example usage:
//
//	vehicle, _ := NewVehicle(VehicleScooter, 2.5)
//	location, _ := kernel.NewLocation(10, 10)
//	courier, err := NewCourier(kernel.NewUUID(), "Alice", vehicle, location)
//	if err != nil {
//	    // Handle construction error
//	}
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID

	// name is the human-readable name of the courier
	name string

	// vehicle determines how fast the courier moves
	vehicle Vehicle

	// location is the courier's current position
	location kernel.Location

	// orderID is the order being carried (nil when the courier is free)
	orderID *kernel.UUID

	// isConstructed ensures the courier was created via a constructor
	isConstructed bool
}

// NewCourier creates a free Courier at the given location.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: human-readable name (must be non-empty)
//   - vehicle: a valid Vehicle
//   - location: initial position
//
// Returns:
//   - *Courier: a fully initialized courier ready for dispatch
//   - error: validation error if any parameter is invalid
func NewCourier(id kernel.UUID, name string, vehicle Vehicle, location kernel.Location) (*Courier, error) {
	courier := &Courier{
		isConstructed: true,
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setVehicle(vehicle),
		courier.setLocation(location),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// RestoreCourier rehydrates a Courier from persistence, including a possibly
// in-flight assignment.
func RestoreCourier(
	id kernel.UUID,
	name string,
	vehicle Vehicle,
	location kernel.Location,
	orderID *kernel.UUID,
) (*Courier, error) {
	courier, err := NewCourier(id, name, vehicle, location)
	if err != nil {
		return nil, err
	}

	courier.orderID = orderID
	return courier, nil
}

// Validate ensures the Courier instance was properly constructed.
func (c *Courier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCourierIsNotConstructed
	}

	return nil
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's name.
func (c *Courier) Name() string {
	return c.name
}

// Vehicle returns the courier's vehicle.
func (c *Courier) Vehicle() Vehicle {
	return c.vehicle
}

// Location returns the courier's current position.
func (c *Courier) Location() kernel.Location {
	return c.location
}

// OrderID returns the order being carried, or nil when the courier is free.
func (c *Courier) OrderID() *kernel.UUID {
	return c.orderID
}

// IsAvailable reports whether the courier can take an order.
func (c *Courier) IsAvailable() bool {
	return c.orderID == nil
}

// Take assigns an order to the courier, marking it busy.
//
// Returns ErrCourierBusy if the courier already carries an order; the
// existing assignment is kept.
func (c *Courier) Take(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	if c.orderID != nil {
		return ErrCourierBusy
	}

	c.orderID = &orderID
	return nil
}

// Complete finishes the current delivery and frees the courier.
func (c *Courier) Complete() error {
	if c.orderID == nil {
		return ErrCourierIdle
	}

	c.orderID = nil
	return nil
}

// DistanceTo returns the straight-line distance to the given location.
func (c *Courier) DistanceTo(target kernel.Location) (float64, error) {
	return c.location.Distance(target)
}

// Move advances the courier toward the target by one tick of the vehicle's
// speed. The courier stops exactly at the target when it is within reach.
//
// Returns:
//   - true when the courier has arrived at the target
//   - an error if the target is invalid
func (c *Courier) Move(target kernel.Location) (bool, error) {
	next, err := c.location.MoveToward(target, c.vehicle.Speed())
	if err != nil {
		return false, err
	}

	c.location = next
	return c.location.IsEqual(target)
}

// setID validates and sets the courier's unique identifier.
// This is a private method used only during construction.
func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

// setName validates and sets the courier's name.
// This is a private method used only during construction.
func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

// setVehicle validates and sets the courier's vehicle.
// This is a private method used only during construction.
func (c *Courier) setVehicle(vehicle Vehicle) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}
	c.vehicle = vehicle
	return nil
}

// setLocation validates and sets the courier's position.
// This is a private method used only during construction.
func (c *Courier) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}
