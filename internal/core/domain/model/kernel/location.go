package kernel

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

const (
	// CityMinCoordinate is the minimum valid coordinate on the city map.
	CityMinCoordinate float64 = 0
	// CityMaxCoordinate is the maximum valid coordinate on the city map.
	CityMaxCoordinate float64 = 100
)

// ErrLocationIsNotConstructed is returned when attempting to use an improperly
// initialized Location. Locations must be created via NewLocation or
// NewRandomLocation to guarantee their coordinates are within city bounds.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation or NewRandomLocation constructors")

// Location is an immutable value object representing a point on the city map.
// It is used both for order delivery destinations and courier positions.
// The zero value is invalid and fails validation; use the constructors.
//
// Example:
//
//	loc, err := kernel.NewLocation(12.5, 40)
//	if err != nil {
//	    // handle out-of-bounds coordinates
//	}
type Location struct { //nolint:recvcheck //using for validation
	x     float64
	y     float64
	guard guard.ConstructorGuard
}

// NewLocation creates a Location with the given coordinates.
// Both coordinates must be finite and within
// [CityMinCoordinate..CityMaxCoordinate] inclusive.
func NewLocation(x float64, y float64) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setX(x), loc.setY(y)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// NewRandomLocation creates a Location with random coordinates inside the city
// bounds. Useful for tests and for seeding courier starting positions.
func NewRandomLocation() (Location, error) {
	x := CityMinCoordinate + rand.Float64()*(CityMaxCoordinate-CityMinCoordinate)
	y := CityMinCoordinate + rand.Float64()*(CityMaxCoordinate-CityMinCoordinate)
	return NewLocation(x, y)
}

// Validate checks that the Location was created through a constructor.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// X returns the X coordinate.
func (l Location) X() float64 {
	return l.x
}

// Y returns the Y coordinate.
func (l Location) Y() float64 {
	return l.y
}

// String returns a human-readable representation such as "Location(12.5,40)".
func (l Location) String() string {
	return fmt.Sprintf("Location(%g,%g)", l.x, l.y)
}

// IsEqual reports whether two locations share the same coordinates.
// Returns an error if either location was not properly constructed.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := l.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return l.x == other.x && l.y == other.y, nil
}

// Distance returns the Euclidean distance between two locations.
// Returns an error if either location was not properly constructed.
func (l Location) Distance(other Location) (float64, error) {
	if err := l.Validate(); err != nil {
		return 0, err
	}
	if err := other.Validate(); err != nil {
		return 0, err
	}

	return math.Hypot(l.x-other.x, l.y-other.y), nil
}

// MoveToward returns a new Location advanced from l toward target by at most
// step distance units. If the target is within step, the target is returned.
// Used by courier movement simulation.
func (l Location) MoveToward(target Location, step float64) (Location, error) {
	dist, err := l.Distance(target)
	if err != nil {
		return Location{}, err
	}
	if step < 0 {
		return Location{}, errs.NewValueIsOutOfRangeError("step", step, CityMinCoordinate, CityMaxCoordinate)
	}
	if dist <= step {
		return target, nil
	}

	ratio := step / dist
	return NewLocation(l.x+(target.x-l.x)*ratio, l.y+(target.y-l.y)*ratio)
}

func (l *Location) setX(x float64) error {
	if math.IsNaN(x) || x < CityMinCoordinate || x > CityMaxCoordinate {
		return errs.NewValueIsOutOfRangeError("x", x, CityMinCoordinate, CityMaxCoordinate)
	}
	l.x = x
	return nil
}

func (l *Location) setY(y float64) error {
	if math.IsNaN(y) || y < CityMinCoordinate || y > CityMaxCoordinate {
		return errs.NewValueIsOutOfRangeError("y", y, CityMinCoordinate, CityMaxCoordinate)
	}
	l.y = y
	return nil
}
