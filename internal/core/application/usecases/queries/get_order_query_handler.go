package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves a single order read model from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ObjectNotFound for unknown orders.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			courier_id,
			destination_x,
			destination_y,
			status,
			is_first_order,
			subtotal,
			total
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var (
		id           uuid.UUID
		customerID   uuid.UUID
		courierID    uuid.NullUUID
		x, y         float64
		status       string
		isFirstOrder bool
		subtotal     string
		total        string
	)

	err := row.Scan(&id, &customerID, &courierID, &x, &y, &status, &isFirstOrder, &subtotal, &total)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderQueryResponse{}, err
	}

	return buildOrderResponse(id, customerID, courierID, x, y, status, isFirstOrder, subtotal, total)
}

func buildOrderResponse(
	id uuid.UUID,
	customerID uuid.UUID,
	courierID uuid.NullUUID,
	x, y float64,
	status string,
	isFirstOrder bool,
	subtotal string,
	total string,
) (GetOrderQueryResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	customer, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	var courier *kernel.UUID
	if courierID.Valid {
		cID, courierErr := kernel.UUIDFromBytes(courierID.UUID[:])
		if courierErr != nil {
			return GetOrderQueryResponse{}, courierErr
		}
		courier = &cID
	}

	destination, err := kernel.NewLocation(x, y)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	subtotalMoney, err := kernel.MoneyFromPersisted(subtotal)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	totalMoney, err := kernel.MoneyFromPersisted(total)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		ID:           orderID,
		CustomerID:   customer,
		Destination:  destination,
		Status:       status,
		IsFirstOrder: isFirstOrder,
		Subtotal:     subtotalMoney,
		Total:        totalMoney,
		CourierID:    courier,
	}, nil
}
