package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/courier"
	"pizzeria/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	// The courier must be valid and not already exist in the repository.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	// The courier must exist in the repository and be valid.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	// Returns an errs.ObjectNotFoundError when no such courier exists.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAll retrieves all couriers.
	GetAll(ctx context.Context) ([]*courier.Courier, error)

	// GetAllFree retrieves all couriers not currently carrying an order.
	GetAllFree(ctx context.Context) ([]*courier.Courier, error)

	// GetAllBusy retrieves all couriers currently carrying an order.
	// Used by the movement job to advance in-flight deliveries.
	GetAllBusy(ctx context.Context) ([]*courier.Courier, error)
}
