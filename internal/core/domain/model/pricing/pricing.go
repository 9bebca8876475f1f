// Package pricing provides composable discount strategies applied to a
// read-only view of an order.
//
// Strategies are pure: Apply never mutates the view, performs no I/O, and
// returns identical results for an unchanged view. The order aggregate
// re-invokes its current strategy against a fresh view on every total
// computation, so pricing always reflects the latest item set.
package pricing

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
)

var (
	// ErrInvalidPricingOperation is the unwrap target for pricing misuse:
	// a strategy constructed with invalid parameters, or a strategy swap
	// attempted after the order left its composable states.
	ErrInvalidPricingOperation = errors.New("invalid pricing operation")

	// ErrCouponExpired is returned by coupon strategies evaluated past their
	// expiry date. The boundary is inclusive: a coupon is still valid on the
	// expiry date itself.
	ErrCouponExpired = errors.New("coupon expired")

	// ErrCouponNotFirstOrder is returned when a first-order coupon is applied
	// to an order whose metadata does not mark it as the customer's first.
	ErrCouponNotFirstOrder = errors.New("coupon is valid only for a first order")
)

// Metadata carries the order facts a strategy may condition on beyond the
// item list itself.
type Metadata struct {
	// IsFirstOrder marks the customer's first order.
	IsFirstOrder bool

	// EvaluatedAt is the pricing evaluation time used for expiry checks.
	EvaluatedAt time.Time
}

// ItemView is a read-only order line as seen by pricing strategies.
type ItemView interface {
	// SKU identifies the underlying catalog product.
	SKU() string

	// UnitPrice is the quantized per-unit price after size and toppings.
	UnitPrice() kernel.Money

	// Quantity is the number of units on the line, always positive.
	Quantity() int

	// IsPizza reports whether the line references a pizza product,
	// used by scoped discounts.
	IsPizza() bool
}

// OrderView is the read-only order representation handed to strategies.
type OrderView interface {
	// Subtotal is the quantized sum of raw line totals, before any discount.
	Subtotal() kernel.Money

	// Items returns the order lines in insertion order.
	Items() []ItemView

	// Metadata returns the order facts relevant to conditional strategies.
	Metadata() Metadata
}

// Result is the auditable outcome of applying a strategy.
type Result struct {
	// FinalTotal is the amount the customer pays, quantized.
	FinalTotal kernel.Money

	// DiscountAmount is the quantized total discount, never negative.
	DiscountAmount kernel.Money

	// StrategyName identifies the strategy that produced the result.
	StrategyName string

	// Breakdown holds human-readable audit lines describing the computation.
	Breakdown []string

	// Warnings holds non-fatal notes, e.g. a discount scope matching nothing.
	Warnings []string
}

// Strategy computes a discount for an order view.
// Implementations must be pure functions of the view.
type Strategy interface {
	// Name returns the strategy's stable identifier for audit records.
	Name() string

	// Apply computes the pricing result for the given view.
	Apply(view OrderView) (Result, error)
}
