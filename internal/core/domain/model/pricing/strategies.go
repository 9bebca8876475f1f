package pricing

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"pizzeria/internal/core/domain/model/kernel"
)

// Discount scopes for BuyNGetMFree.
const (
	// ScopePizzaOnly restricts the discount to pizza lines.
	ScopePizzaOnly = "pizza_only"
	// ScopeAll considers every order line.
	ScopeAll = "all"
)

var hundred = decimal.NewFromInt(100)

// NoDiscount is the default strategy: the final total equals the subtotal.
type NoDiscount struct{}

// NewNoDiscount creates the identity strategy.
func NewNoDiscount() NoDiscount {
	return NoDiscount{}
}

// Name implements Strategy.
func (NoDiscount) Name() string {
	return "no_discount"
}

// Apply returns the subtotal unchanged with a zero discount.
func (n NoDiscount) Apply(view OrderView) (Result, error) {
	subtotal := view.Subtotal()
	return Result{
		FinalTotal:     subtotal,
		DiscountAmount: kernel.ZeroMoney(),
		StrategyName:   n.Name(),
	}, nil
}

// PercentOff applies a flat percentage discount to the subtotal.
type PercentOff struct {
	percent decimal.Decimal
}

// NewPercentOff creates a PercentOff strategy.
// The percentage must lie in [0, 100]; anything else is an invalid pricing
// operation.
func NewPercentOff(percent decimal.Decimal) (PercentOff, error) {
	if percent.IsNegative() || percent.GreaterThan(hundred) {
		return PercentOff{}, fmt.Errorf("%w: percentage %s is outside [0, 100]",
			ErrInvalidPricingOperation, percent.String())
	}
	return PercentOff{percent: percent}, nil
}

// Name implements Strategy.
func (p PercentOff) Name() string {
	return "percent_off"
}

// Apply computes discount = quantize(subtotal × p/100) and subtracts it.
func (p PercentOff) Apply(view OrderView) (Result, error) {
	subtotal := view.Subtotal()
	discount := subtotal.Mul(p.percent.Div(hundred)).Quantize()
	final := subtotal.Sub(discount).Quantize()

	return Result{
		FinalTotal:     final,
		DiscountAmount: discount,
		StrategyName:   p.Name(),
		Breakdown: []string{
			fmt.Sprintf("%s%% off subtotal %s = -%s", p.percent.String(), subtotal, discount),
		},
	}, nil
}

// BuyNGetMFree partitions the units in scope into groups of size n, in
// insertion order; within each full group the m cheapest units become free.
// Trailing partial groups smaller than n receive no discount.
type BuyNGetMFree struct {
	n     int
	m     int
	scope string
}

// NewBuyNGetMFree creates a BuyNGetMFree strategy.
// Requires n > 0, 0 < m < n, and a known scope.
func NewBuyNGetMFree(n int, m int, scope string) (BuyNGetMFree, error) {
	if n <= 0 || m <= 0 || m >= n {
		return BuyNGetMFree{}, fmt.Errorf("%w: buy %d get %d free is not a valid promotion",
			ErrInvalidPricingOperation, n, m)
	}
	if scope != ScopePizzaOnly && scope != ScopeAll {
		return BuyNGetMFree{}, fmt.Errorf("%w: unknown scope %q", ErrInvalidPricingOperation, scope)
	}
	return BuyNGetMFree{n: n, m: m, scope: scope}, nil
}

// Name implements Strategy.
func (b BuyNGetMFree) Name() string {
	return fmt.Sprintf("buy_%d_get_%d_free", b.n, b.m)
}

// Apply expands lines into units, groups them, and frees the m cheapest units
// of each full group. Ties are broken by insertion order, so the earliest
// equal-priced unit is freed first.
func (b BuyNGetMFree) Apply(view OrderView) (Result, error) {
	subtotal := view.Subtotal()

	type unit struct {
		index int
		sku   string
		price kernel.Money
	}

	units := make([]unit, 0)
	for _, item := range view.Items() {
		if b.scope == ScopePizzaOnly && !item.IsPizza() {
			continue
		}
		for range item.Quantity() {
			units = append(units, unit{index: len(units), sku: item.SKU(), price: item.UnitPrice()})
		}
	}

	result := Result{
		FinalTotal:     subtotal,
		DiscountAmount: kernel.ZeroMoney(),
		StrategyName:   b.Name(),
	}

	if len(units) < b.n {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("not enough units in scope %q for a group of %d", b.scope, b.n))
		return result, nil
	}

	freed := kernel.ZeroMoney()
	for start := 0; start+b.n <= len(units); start += b.n {
		group := make([]unit, b.n)
		copy(group, units[start:start+b.n])

		// Stable sort keeps insertion order among equal prices.
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].price.LessThan(group[j].price)
		})

		for _, u := range group[:b.m] {
			freed = freed.Add(u.price)
			result.Breakdown = append(result.Breakdown,
				fmt.Sprintf("unit %d (%s) free: -%s", u.index+1, u.sku, u.price))
		}
	}

	discount := freed.Quantize()
	result.DiscountAmount = discount
	result.FinalTotal = subtotal.Sub(discount).Quantize()
	return result, nil
}

// FirstOrderCoupon applies a percentage discount only when the order is the
// customer's first and the coupon has not expired. Misuse is an error, never
// a silent skip, so callers can surface the exact reason to the customer.
type FirstOrderCoupon struct {
	code      string
	percent   PercentOff
	expiresAt *time.Time
}

// NewFirstOrderCoupon creates a FirstOrderCoupon.
// A nil expiresAt means the coupon never expires. The percentage is subject
// to the same [0, 100] bound as PercentOff.
func NewFirstOrderCoupon(code string, percent decimal.Decimal, expiresAt *time.Time) (FirstOrderCoupon, error) {
	if code == "" {
		return FirstOrderCoupon{}, fmt.Errorf("%w: coupon code is required", ErrInvalidPricingOperation)
	}

	off, err := NewPercentOff(percent)
	if err != nil {
		return FirstOrderCoupon{}, err
	}

	return FirstOrderCoupon{code: code, percent: off, expiresAt: expiresAt}, nil
}

// Name implements Strategy.
func (c FirstOrderCoupon) Name() string {
	return "first_order_coupon"
}

// Apply validates the coupon against the view's metadata and delegates the
// arithmetic to PercentOff. The expiry boundary is inclusive: the coupon is
// still valid on its expiry date.
func (c FirstOrderCoupon) Apply(view OrderView) (Result, error) {
	meta := view.Metadata()

	if c.expiresAt != nil {
		evaluated := dateOf(meta.EvaluatedAt)
		expires := dateOf(*c.expiresAt)
		if evaluated.After(expires) {
			return Result{}, fmt.Errorf("%w: %s expired on %s",
				ErrCouponExpired, c.code, expires.Format(time.DateOnly))
		}
	}

	if !meta.IsFirstOrder {
		return Result{}, fmt.Errorf("%w: %s", ErrCouponNotFirstOrder, c.code)
	}

	result, err := c.percent.Apply(view)
	if err != nil {
		return Result{}, err
	}

	result.StrategyName = c.Name()
	result.Breakdown = append([]string{fmt.Sprintf("coupon %s applied", c.code)}, result.Breakdown...)
	return result, nil
}

// dateOf truncates a time to its calendar date in UTC.
func dateOf(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
