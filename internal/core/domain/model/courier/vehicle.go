package courier

import (
	"errors"
	"fmt"

	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// VehicleKind identifies the kind of vehicle a courier rides.
type VehicleKind int

const (
	// VehicleKindUnknown represents an invalid or undefined vehicle kind.
	VehicleKindUnknown VehicleKind = iota

	// VehicleBike is a bicycle.
	VehicleBike

	// VehicleScooter is a motor scooter.
	VehicleScooter

	// VehicleCar is a car.
	VehicleCar
)

// getVehicleKindStrings returns a map of VehicleKind values to their string
// representations.
func getVehicleKindStrings() map[VehicleKind]string {
	return map[VehicleKind]string{
		VehicleKindUnknown: "UNKNOWN",
		VehicleBike:        "BIKE",
		VehicleScooter:     "SCOOTER",
		VehicleCar:         "CAR",
	}
}

// getValidVehicleKindStrings returns a map of only valid VehicleKind values.
func getValidVehicleKindStrings() map[VehicleKind]string {
	//nolint:exhaustive // VehicleKindUnknown is intentionally excluded as it's invalid
	return map[VehicleKind]string{
		VehicleBike:    "BIKE",
		VehicleScooter: "SCOOTER",
		VehicleCar:     "CAR",
	}
}

// Validate checks if the VehicleKind value is valid.
func (k VehicleKind) Validate() error {
	if _, ok := getValidVehicleKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"vehicle kind is invalid",
			fmt.Errorf("%d is not a valid vehicle kind", k),
		)
	}
	return nil
}

// String returns the persistence token of the kind. Implements fmt.Stringer.
func (k VehicleKind) String() string {
	if str, ok := getVehicleKindStrings()[k]; ok {
		return str
	}
	return "UNKNOWN"
}

// VehicleKindFromString parses a persistence token back into a VehicleKind.
func VehicleKindFromString(raw string) (VehicleKind, error) {
	for kind, str := range getValidVehicleKindStrings() {
		if str == raw {
			return kind, nil
		}
	}
	return VehicleKindUnknown, errs.NewValueIsInvalidErrorWithCause(
		"vehicle kind is invalid",
		fmt.Errorf("%q is not a valid vehicle kind", raw),
	)
}

// Vehicle is a value object pairing a vehicle kind with its speed, expressed
// as distance covered per movement tick. Speed must be strictly positive.
type Vehicle struct {
	kind  VehicleKind
	speed float64

	guard guard.ConstructorGuard
}

// NewVehicle creates a Vehicle.
func NewVehicle(kind VehicleKind, speed float64) (Vehicle, error) {
	vehicle := Vehicle{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		vehicle.setKind(kind),
		vehicle.setSpeed(speed),
	); err != nil {
		return Vehicle{}, err
	}

	return vehicle, nil
}

// Validate ensures the Vehicle was created via NewVehicle.
func (v Vehicle) Validate() error {
	return v.guard.Validate(errors.New("Vehicle must be created via NewVehicle constructor"))
}

// Kind returns the vehicle kind.
func (v Vehicle) Kind() VehicleKind {
	return v.kind
}

// Speed returns the distance the vehicle covers per movement tick.
func (v Vehicle) Speed() float64 {
	return v.speed
}

// String returns "KIND @ speed" for logs.
func (v Vehicle) String() string {
	return fmt.Sprintf("%s @ %.2f", v.kind, v.speed)
}

func (v *Vehicle) setKind(kind VehicleKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	v.kind = kind
	return nil
}

func (v *Vehicle) setSpeed(speed float64) error {
	if speed <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"speed is invalid",
			fmt.Errorf("%f is not greater than 0", speed),
		)
	}
	v.speed = speed
	return nil
}
