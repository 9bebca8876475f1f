package orderrepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/payment"
	"pizzeria/internal/pkg/errs"
)

// PaymentDTO represents the database structure for persisting payment records.
// A record is a child row of its order; money columns hold quantized decimal
// strings and the audit history rides along as a JSON array.
type PaymentDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Method     string    `gorm:"type:varchar(16)"`
	Status     string    `gorm:"type:varchar(24);index"`
	Due        string    `gorm:"type:varchar(32)"`
	Authorized string    `gorm:"type:varchar(32)"`
	Captured   string    `gorm:"type:varchar(32)"`
	Refunded   string    `gorm:"type:varchar(32)"`
	History    []byte    `gorm:"type:jsonb"`
	UpdatedAt  time.Time
}

// TableName overrides GORM's default naming convention to use "payments".
func (PaymentDTO) TableName() string {
	return "payments"
}

func paymentFromDomain(record *payment.Record) (PaymentDTO, error) {
	history, err := json.Marshal(record.History())
	if err != nil {
		return PaymentDTO{}, err
	}

	return PaymentDTO{
		ID:         record.ID().Bytes(),
		OrderID:    record.OrderID().Bytes(),
		Method:     record.Method().String(),
		Status:     record.Status().String(),
		Due:        record.Due().String(),
		Authorized: record.Authorized().String(),
		Captured:   record.Captured().String(),
		Refunded:   record.Refunded().String(),
		History:    history,
		UpdatedAt:  time.Now(),
	}, nil
}

func paymentToDomain(dto PaymentDTO) (*payment.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	method, err := payment.MethodFromString(dto.Method)
	if err != nil {
		return nil, err
	}

	status, err := payment.PaymentStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	due, err := kernel.MoneyFromPersisted(dto.Due)
	if err != nil {
		return nil, err
	}

	authorized, err := kernel.MoneyFromPersisted(dto.Authorized)
	if err != nil {
		return nil, err
	}

	captured, err := kernel.MoneyFromPersisted(dto.Captured)
	if err != nil {
		return nil, err
	}

	refunded, err := kernel.MoneyFromPersisted(dto.Refunded)
	if err != nil {
		return nil, err
	}

	var history []string
	if len(dto.History) > 0 {
		if err = json.Unmarshal(dto.History, &history); err != nil {
			return nil, err
		}
	}

	return payment.RestoreRecord(id, orderID, method, due, authorized, captured, refunded, status, history)
}

// GormPaymentRepository implements ports.PaymentRepository using GORM.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormPaymentRepository creates a new GORM payment repository.
func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new payment record to the database.
func (r *GormPaymentRepository) Add(ctx context.Context, record *payment.Record) error {
	return r.save(ctx, record)
}

// Update saves an existing payment record to the database.
func (r *GormPaymentRepository) Update(ctx context.Context, record *payment.Record) error {
	return r.save(ctx, record)
}

func (r *GormPaymentRepository) save(ctx context.Context, record *payment.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto, err := paymentFromDomain(record)
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// GetByOrderID retrieves the payment record settling the given order.
func (r *GormPaymentRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*payment.Record, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment record", orderID.String())
		}
		return nil, err
	}

	return paymentToDomain(dto)
}
