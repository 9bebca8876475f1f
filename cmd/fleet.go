package cmd

import (
	"context"
	"fmt"

	"pizzeria/internal/core/domain/model/courier"
	"pizzeria/internal/core/domain/model/kernel"
)

// SeedFleet registers the default couriers on first start. An already
// populated fleet is left untouched.
func (c *CompositionRoot) SeedFleet(ctx context.Context) error {
	uow := c.uowFactory.Create()
	repo := uow.CourierRepository()

	existing, err := repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("checking fleet: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	defaults := []struct {
		name  string
		kind  courier.VehicleKind
		speed float64
		x, y  float64
	}{
		{"Marco", courier.VehicleBike, 2, 10, 10},
		{"Sofia", courier.VehicleScooter, 4, 50, 50},
		{"Luca", courier.VehicleCar, 6, 90, 20},
	}

	for _, d := range defaults {
		vehicle, vehicleErr := courier.NewVehicle(d.kind, d.speed)
		if vehicleErr != nil {
			return vehicleErr
		}

		location, locationErr := kernel.NewLocation(d.x, d.y)
		if locationErr != nil {
			return locationErr
		}

		rider, riderErr := courier.NewCourier(kernel.NewUUID(), d.name, vehicle, location)
		if riderErr != nil {
			return riderErr
		}

		if addErr := repo.Add(ctx, rider); addErr != nil {
			return fmt.Errorf("seeding courier %s: %w", d.name, addErr)
		}
	}

	c.logger.InfoContext(ctx, "seeded default fleet", "couriers", len(defaults))
	return nil
}
