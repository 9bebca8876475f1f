package kernel

import (
	"fmt"

	"github.com/shopspring/decimal"

	"pizzeria/internal/pkg/errs"
)

// moneyPlaces is the number of fractional digits every finalized amount carries.
const moneyPlaces = 2

// Money is a value object representing an exact decimal amount of currency.
// It wraps github.com/shopspring/decimal to keep all price arithmetic out of
// binary floating point. Every amount that is stored or compared for equality
// is quantized to two fractional digits using round-half-to-even (banker's
// rounding); quantization is centralized here rather than applied ad hoc at
// call sites.
//
// The zero value of Money is a valid zero amount, so Money can be used freely
// in aggregates without a constructor guard.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromString("10.00")
//	large := price.Mul(decimal.RequireFromString("1.25")).Quantize() // 12.50
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns a Money of exactly 0.00.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoneyFromString parses a decimal string such as "10.00" into Money.
// Returns an error if the string is not a valid decimal number.
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return Money{amount: d}, nil
}

// NewMoneyFromDecimal wraps an existing decimal value as Money.
// The value is not quantized; call Quantize at finalization boundaries.
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{amount: d}
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Quantize rounds the amount to two fractional digits using round-half-to-even.
// This is the only rounding mode used anywhere in price computation.
func (m Money) Quantize() Money {
	return Money{amount: m.amount.RoundBank(moneyPlaces)}
}

// Add returns the sum of two amounts. The result is not quantized.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of two amounts. The result is not quantized.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// Mul returns the amount multiplied by an exact decimal factor.
// The result is not quantized.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor)}
}

// MulInt returns the amount multiplied by an integer count.
func (m Money) MulInt(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n)))}
}

// IsNegative reports whether the amount is strictly below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsZero reports whether the quantized amount equals 0.00.
func (m Money) IsZero() bool {
	return m.Quantize().amount.IsZero()
}

// IsEqual compares two amounts after quantization, so 2.90 equals 2.900.
func (m Money) IsEqual(other Money) bool {
	return m.Quantize().amount.Equal(other.Quantize().amount)
}

// GreaterThan reports whether m exceeds other, compared after quantization.
func (m Money) GreaterThan(other Money) bool {
	return m.Quantize().amount.GreaterThan(other.Quantize().amount)
}

// LessThan reports whether m is below other, compared after quantization.
func (m Money) LessThan(other Money) bool {
	return m.Quantize().amount.LessThan(other.Quantize().amount)
}

// String returns the quantized amount with exactly two fractional digits,
// e.g. "14.50". Suitable for persistence and audit trails.
func (m Money) String() string {
	return m.Quantize().amount.StringFixed(moneyPlaces)
}

// MoneyFromPersisted restores Money from its persisted string form.
// Returns an error if the stored value does not parse as a decimal.
func MoneyFromPersisted(s string) (Money, error) {
	m, err := NewMoneyFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("restore money: %w", err)
	}
	return m.Quantize(), nil
}
