package queries

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
		"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
	)
)

// GetOrdersByStatusQuery retrieves the read models of every order currently
// in the given status, oldest first, for kitchen and dispatch dashboards.
//
// Example:
//
//	query, err := NewGetOrdersByStatusQuery(order.Boxed)
//	if err != nil {
//	    return err
//	}
//
//	boxed, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list boxed orders: %w", err)
//	}
//
//	fmt.Printf("%d orders waiting for a courier\n", len(boxed))
type GetOrdersByStatusQuery struct {
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query for the given status.
func NewGetOrdersByStatusQuery(status order.Status) (GetOrdersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersByStatusQuery{}, err
	}

	return GetOrdersByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the status being filtered on.
func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}

// GetOrdersByStatusQueryResponse is one row of the status listing.
type GetOrdersByStatusQueryResponse struct {
	ID          kernel.UUID
	Destination kernel.Location
	Total       kernel.Money
}
