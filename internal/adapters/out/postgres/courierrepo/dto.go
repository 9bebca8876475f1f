// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
// This package implements the repository pattern for the courier domain aggregate, handling
// the conversion between domain entities and database representations.
package courierrepo

import (
	"github.com/google/uuid"

	"pizzeria/internal/core/domain/model/courier"
	"pizzeria/internal/core/domain/model/kernel"
)

// CourierDTO represents the database structure for persisting courier aggregates.
// A non-null OrderID marks the courier as busy with that delivery.
type CourierDTO struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name        string      `gorm:"type:varchar(255);not null"`
	VehicleKind string      `gorm:"type:varchar(16);not null"`
	Speed       float64     `gorm:"type:double precision;not null"`
	Location    LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	OrderID     *uuid.UUID  `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for courier entities.
// Overrides GORM's default naming convention to use "couriers" instead of "courier_dtos".
func (CourierDTO) TableName() string {
	return "couriers"
}

// LocationDTO represents the embedded location coordinates within the courier table.
// Stores the courier's current position on the delivery grid.
type LocationDTO struct {
	X float64 `gorm:"type:double precision"`
	Y float64 `gorm:"type:double precision"`
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	var orderID *uuid.UUID
	if id := aggregate.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return CourierDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		VehicleKind: aggregate.Vehicle().Kind().String(),
		Speed:       aggregate.Vehicle().Speed(),
		Location: LocationDTO{
			X: aggregate.Location().X(),
			Y: aggregate.Location().Y(),
		},
		OrderID: orderID,
	}
}

// toDomain converts a database DTO to a courier domain aggregate.
// Reconstructs the complete aggregate including the current assignment using RestoreCourier.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	kind, err := courier.VehicleKindFromString(dto.VehicleKind)
	if err != nil {
		return nil, err
	}

	vehicle, err := courier.NewVehicle(kind, dto.Speed)
	if err != nil {
		return nil, err
	}

	loc, err := kernel.NewLocation(dto.Location.X, dto.Location.Y)
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		orderID = &oID
	}

	return courier.RestoreCourier(id, dto.Name, vehicle, loc, orderID)
}
