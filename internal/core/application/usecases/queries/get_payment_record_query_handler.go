package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// GetPaymentRecordQueryHandler retrieves a payment read model from the database.
type GetPaymentRecordQueryHandler struct {
	db *gorm.DB
}

// NewGetPaymentRecordQueryHandler creates a handler for payment lookups.
func NewGetPaymentRecordQueryHandler(db *gorm.DB) GetPaymentRecordQueryHandler {
	return GetPaymentRecordQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ObjectNotFound when the order has
// no payment record yet.
func (h GetPaymentRecordQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentRecordQuery,
) (GetPaymentRecordQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPaymentRecordQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			method,
			status,
			due,
			authorized,
			captured,
			refunded,
			history
		FROM payments
		WHERE order_id = ?
	`, query.OrderID().Bytes()).Row()

	var (
		id      uuid.UUID
		orderID uuid.UUID
		method  string
		status  string
		amounts [4]string
		history []byte
	)

	err := row.Scan(&id, &orderID, &method, &status, &amounts[0], &amounts[1], &amounts[2], &amounts[3], &history)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetPaymentRecordQueryResponse{},
				errs.NewObjectNotFoundError("payment record", query.OrderID().String())
		}
		return GetPaymentRecordQueryResponse{}, err
	}

	recordID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetPaymentRecordQueryResponse{}, err
	}

	settledOrderID, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return GetPaymentRecordQueryResponse{}, err
	}

	var money [4]kernel.Money
	for i, raw := range amounts {
		money[i], err = kernel.MoneyFromPersisted(raw)
		if err != nil {
			return GetPaymentRecordQueryResponse{}, err
		}
	}

	var lines []string
	if len(history) > 0 {
		if err = json.Unmarshal(history, &lines); err != nil {
			return GetPaymentRecordQueryResponse{}, err
		}
	}

	return GetPaymentRecordQueryResponse{
		ID:         recordID,
		OrderID:    settledOrderID,
		Method:     method,
		Status:     status,
		Due:        money[0],
		Authorized: money[1],
		Captured:   money[2],
		Refunded:   money[3],
		History:    lines,
	}, nil
}
