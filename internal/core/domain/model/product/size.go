package product

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"pizzeria/internal/pkg/errs"
)

// Size represents a pizza size. The size scales both the pizza price and the
// amounts of every ingredient in its recipe by the same multiplier, with
// rounding applied independently per value.
type Size int

const (
	// SizeUnknown represents an invalid or undefined size.
	// This value (0) helps catch uninitialized Size values.
	SizeUnknown Size = iota

	// SizeSmall scales the medium baseline by 0.75.
	SizeSmall

	// SizeMedium is the canonical baseline: recipes and default prices are
	// defined at medium.
	SizeMedium

	// SizeLarge scales the medium baseline by 1.25.
	SizeLarge
)

func getSizeStrings() map[Size]string {
	return map[Size]string{
		SizeUnknown: "unknown",
		SizeSmall:   "small",
		SizeMedium:  "medium",
		SizeLarge:   "large",
	}
}

func getSizeMultipliers() map[Size]decimal.Decimal {
	return map[Size]decimal.Decimal{
		SizeSmall:  decimal.RequireFromString("0.75"),
		SizeMedium: decimal.RequireFromString("1.0"),
		SizeLarge:  decimal.RequireFromString("1.25"),
	}
}

// Validate checks if the Size value is valid.
// Valid sizes are: SizeSmall, SizeMedium, SizeLarge.
func (s Size) Validate() error {
	if _, ok := getSizeMultipliers()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("%d is not a valid size", s))
	}
	return nil
}

// Multiplier returns the exact decimal factor applied to medium-baseline
// prices and recipe amounts: 0.75, 1.0, or 1.25.
// Returns an error for invalid sizes.
func (s Size) Multiplier() (decimal.Decimal, error) {
	m, ok := getSizeMultipliers()[s]
	if !ok {
		return decimal.Decimal{}, s.Validate()
	}
	return m, nil
}

// String returns the lowercase name of the size, or "unknown" for invalid values.
// Implements fmt.Stringer.
func (s Size) String() string {
	if str, ok := getSizeStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// SizeFromString parses a size name case-insensitively.
// Returns an error for names that do not match a valid size.
func SizeFromString(s string) (Size, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "small":
		return SizeSmall, nil
	case "medium":
		return SizeMedium, nil
	case "large":
		return SizeLarge, nil
	default:
		return SizeUnknown, errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("%q is not a valid size", s))
	}
}
