package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pizzeria/internal/core/domain/model/kernel"
)

// GetOrdersByStatusQueryHandler lists order read models filtered by status.
type GetOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStatusQueryHandler creates a handler for status listings.
func NewGetOrdersByStatusQueryHandler(db *gorm.DB) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{db: db}
}

// Handle executes the listing, oldest first.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]GetOrdersByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersByStatusQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			destination_x,
			destination_y,
			total
		FROM orders
		WHERE status = ?
		ORDER BY updated_at
	`, query.Status().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id    uuid.UUID
			x, y  float64
			total string
		)

		if err = rows.Scan(&id, &x, &y, &total); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		destination, locErr := kernel.NewLocation(x, y)
		if locErr != nil {
			return nil, locErr
		}

		totalMoney, moneyErr := kernel.MoneyFromPersisted(total)
		if moneyErr != nil {
			return nil, moneyErr
		}

		orders = append(orders, GetOrdersByStatusQueryResponse{
			ID:          orderID,
			Destination: destination,
			Total:       totalMoney,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
