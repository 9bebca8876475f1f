package payment

import (
	"errors"
	"fmt"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
)

var (
	// ErrRecordIsNotConstructed is returned when a Record instance was not
	// created through the NewRecord factory method.
	ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")

	// ErrPaymentNotAuthorized is returned when a card or online capture is
	// attempted without a prior authorization.
	ErrPaymentNotAuthorized = errors.New("payment is not authorized")

	// ErrPaymentAlreadyCaptured is returned on a second capture attempt.
	ErrPaymentAlreadyCaptured = errors.New("payment is already captured")

	// ErrPaymentAmountMismatch is returned when a capture exceeds the amount
	// due, or exceeds the authorized amount for methods that authorize.
	ErrPaymentAmountMismatch = errors.New("payment amount mismatch")

	// ErrRefundExceedsCapture is returned when a refund would return more
	// than what remains captured.
	ErrRefundExceedsCapture = errors.New("refund exceeds captured amount")
)

// Result is the outcome of a single settlement operation. It carries enough
// for an audit line and for the HTTP layer to echo back to the caller.
type Result struct {
	ID        kernel.UUID
	Status    string
	Amount    kernel.Money
	Method    Method
	Note      string
	CreatedAt time.Time
}

// Result status tokens. Operation outcomes that are not errors but also not
// plain successes (idempotent re-authorize, zero refund) get their own token
// so callers can tell them apart without string matching on notes.
const (
	ResultAuthorized        = "authorized"
	ResultAlreadyAuthorized = "already_authorized"
	ResultCaptured          = "captured"
	ResultRefunded          = "refunded"
	ResultNoOp              = "no_op"
)

// Record is the per-order payment state machine. It tracks how much was
// authorized, captured, and refunded, and keeps an append-only history of
// every operation for auditing.
//
// Record follows these invariants:
//   - Captured never exceeds the amount due
//   - For authorizing methods, captured never exceeds authorized
//   - Refunded never exceeds captured
//   - History is append-only; failed operations leave no trace in the totals
type Record struct {
	// id is the unique identifier of the payment record
	id kernel.UUID

	// orderID is the order this record settles
	orderID kernel.UUID

	// method is how the customer pays
	method Method

	// due is the order's final total at settlement time
	due kernel.Money

	// authorized is the amount currently held
	authorized kernel.Money

	// captured is the amount taken
	captured kernel.Money

	// refunded is the amount returned
	refunded kernel.Money

	// status is the current settlement state
	status Status

	// history holds one audit line per successful operation
	history []string

	// isConstructed ensures the record was created via a constructor
	isConstructed bool
}

// NewRecord creates a payment record for an order with the amount due fixed
// at creation. The due amount is the order's final total and must not be
// negative.
func NewRecord(id kernel.UUID, orderID kernel.UUID, method Method, due kernel.Money) (*Record, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), method.Validate()); err != nil {
		return nil, err
	}

	if due.IsNegative() {
		return nil, fmt.Errorf("%w: amount due %s is negative", ErrPaymentAmountMismatch, due)
	}

	return &Record{
		id:            id,
		orderID:       orderID,
		method:        method,
		due:           due.Quantize(),
		authorized:    kernel.ZeroMoney(),
		captured:      kernel.ZeroMoney(),
		refunded:      kernel.ZeroMoney(),
		status:        StatusNew,
		isConstructed: true,
	}, nil
}

// RestoreRecord rehydrates a Record from persistence.
func RestoreRecord(
	id kernel.UUID,
	orderID kernel.UUID,
	method Method,
	due kernel.Money,
	authorized kernel.Money,
	captured kernel.Money,
	refunded kernel.Money,
	status Status,
	history []string,
) (*Record, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), method.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Record{
		id:            id,
		orderID:       orderID,
		method:        method,
		due:           due,
		authorized:    authorized,
		captured:      captured,
		refunded:      refunded,
		status:        status,
		history:       append([]string(nil), history...),
		isConstructed: true,
	}, nil
}

// Validate ensures the Record instance was properly constructed.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}

	return nil
}

// ID returns the record's unique identifier.
func (r *Record) ID() kernel.UUID {
	return r.id
}

// OrderID returns the order this record settles.
func (r *Record) OrderID() kernel.UUID {
	return r.orderID
}

// Method returns the payment method.
func (r *Record) Method() Method {
	return r.method
}

// Due returns the amount due fixed at record creation.
func (r *Record) Due() kernel.Money {
	return r.due
}

// Authorized returns the currently held amount.
func (r *Record) Authorized() kernel.Money {
	return r.authorized
}

// Captured returns the amount taken.
func (r *Record) Captured() kernel.Money {
	return r.captured
}

// Refunded returns the amount returned.
func (r *Record) Refunded() kernel.Money {
	return r.refunded
}

// Status returns the current settlement state.
func (r *Record) Status() Status {
	return r.status
}

// History returns a copy of the audit lines in chronological order.
func (r *Record) History() []string {
	return append([]string(nil), r.history...)
}

// Authorize holds the amount due. Authorizing an already authorized (or
// captured) record is not an error: it returns an idempotent
// already-authorized result and changes nothing, so retrying a settlement
// is safe.
//
// For cash the authorization is an optional marker; capture works without it.
func (r *Record) Authorize(at time.Time) (Result, error) {
	if r.status != StatusNew {
		return r.result(ResultAlreadyAuthorized, r.authorized, "authorization already present", at), nil
	}

	r.authorized = r.due
	r.status = StatusAuthorized
	r.log(at, "authorized %s via %s", r.authorized, r.method)
	return r.result(ResultAuthorized, r.authorized, "", at), nil
}

// Capture takes the money. Card and online methods must be authorized first;
// cash may capture directly from New. The amount must not exceed the amount
// due, nor the authorized amount for authorizing methods. A second capture
// fails with ErrPaymentAlreadyCaptured.
func (r *Record) Capture(amount kernel.Money, at time.Time) (Result, error) {
	if r.status != StatusNew && r.status != StatusAuthorized {
		return Result{}, fmt.Errorf("%w: record is %s", ErrPaymentAlreadyCaptured, r.status)
	}

	if r.method.RequiresAuthorization() && r.status != StatusAuthorized {
		return Result{}, fmt.Errorf("%w: %s requires authorization before capture", ErrPaymentNotAuthorized, r.method)
	}

	amount = amount.Quantize()
	if amount.IsNegative() {
		return Result{}, fmt.Errorf("%w: capture amount %s is negative", ErrPaymentAmountMismatch, amount)
	}

	if amount.GreaterThan(r.due) {
		return Result{}, fmt.Errorf("%w: capture %s exceeds amount due %s", ErrPaymentAmountMismatch, amount, r.due)
	}

	if r.method.RequiresAuthorization() && amount.GreaterThan(r.authorized) {
		return Result{}, fmt.Errorf("%w: capture %s exceeds authorized %s", ErrPaymentAmountMismatch, amount, r.authorized)
	}

	r.captured = amount
	r.status = StatusCaptured
	r.log(at, "captured %s via %s", amount, r.method)
	return r.result(ResultCaptured, amount, "", at), nil
}

// Refund returns money to the customer. Refunds may be partial and repeated;
// the running refunded total can never exceed the captured amount. A zero
// refund is a recorded no-op, not an error.
func (r *Record) Refund(amount kernel.Money, at time.Time) (Result, error) {
	amount = amount.Quantize()
	if amount.IsNegative() {
		return Result{}, fmt.Errorf("%w: refund amount %s is negative", ErrRefundExceedsCapture, amount)
	}

	if amount.IsZero() {
		return r.result(ResultNoOp, amount, "zero refund ignored", at), nil
	}

	remaining := r.captured.Sub(r.refunded)
	if amount.GreaterThan(remaining) {
		return Result{}, fmt.Errorf(
			"%w: refund %s exceeds remaining captured %s", ErrRefundExceedsCapture, amount, remaining,
		)
	}

	r.refunded = r.refunded.Add(amount).Quantize()
	if r.refunded.IsEqual(r.captured) {
		r.status = StatusRefunded
	} else {
		r.status = StatusPartiallyRefunded
	}

	r.log(at, "refunded %s via %s", amount, r.method)
	return r.result(ResultRefunded, amount, "", at), nil
}

// result builds an operation Result stamped with the record's identity.
func (r *Record) result(status string, amount kernel.Money, note string, at time.Time) Result {
	return Result{
		ID:        r.id,
		Status:    status,
		Amount:    amount,
		Method:    r.method,
		Note:      note,
		CreatedAt: at,
	}
}

// log appends an audit line. History grows only on successful operations.
func (r *Record) log(at time.Time, format string, args ...any) {
	line := fmt.Sprintf("%s %s", at.UTC().Format(time.RFC3339), fmt.Sprintf(format, args...))
	r.history = append(r.history, line)
}
