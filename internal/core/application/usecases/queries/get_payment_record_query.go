package queries

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrGetPaymentRecordQueryIsNotConstructed = errors.New(
		"GetPaymentRecordQuery must be created via NewGetPaymentRecordQuery constructor",
	)
)

// GetPaymentRecordQuery retrieves the payment read model settling an order,
// including the append-only audit history.
type GetPaymentRecordQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPaymentRecordQuery creates a query for the given order's payment.
func NewGetPaymentRecordQuery(orderID kernel.UUID) (GetPaymentRecordQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetPaymentRecordQuery{}, err
	}

	return GetPaymentRecordQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPaymentRecordQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentRecordQueryIsNotConstructed)
}

// OrderID returns the identifier of the order whose payment is looked up.
func (q GetPaymentRecordQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetPaymentRecordQueryResponse is the payment read model.
type GetPaymentRecordQueryResponse struct {
	ID         kernel.UUID
	OrderID    kernel.UUID
	Method     string
	Status     string
	Due        kernel.Money
	Authorized kernel.Money
	Captured   kernel.Money
	Refunded   kernel.Money
	History    []string
}
