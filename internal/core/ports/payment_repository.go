package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment records.
// Each order has at most one payment record.
type PaymentRepository interface {
	// Add persists a new payment record.
	Add(ctx context.Context, record *payment.Record) error

	// Update persists changes to an existing payment record.
	Update(ctx context.Context, record *payment.Record) error

	// GetByOrderID retrieves the payment record settling the given order.
	// Returns an errs.ObjectNotFoundError when the order has no record yet.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*payment.Record, error)
}
