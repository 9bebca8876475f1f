package pricing

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Persistence kind tokens. Stable identifiers, never derived from Name().
const (
	kindNoDiscount       = "no_discount"
	kindPercentOff       = "percent_off"
	kindBuyNGetMFree     = "buy_n_get_m_free"
	kindFirstOrderCoupon = "first_order_coupon"
)

// descriptor is the serialized shape of a strategy. Only the fields relevant
// to the kind are populated.
type descriptor struct {
	Kind      string     `json:"kind"`
	Percent   string     `json:"percent,omitempty"`
	N         int        `json:"n,omitempty"`
	M         int        `json:"m,omitempty"`
	Scope     string     `json:"scope,omitempty"`
	Code      string     `json:"code,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// MarshalStrategy serializes a strategy into a JSON descriptor for storage.
// A nil strategy serializes as NoDiscount.
func MarshalStrategy(s Strategy) ([]byte, error) {
	var d descriptor

	switch v := s.(type) {
	case nil, NoDiscount:
		d.Kind = kindNoDiscount
	case PercentOff:
		d.Kind = kindPercentOff
		d.Percent = v.percent.String()
	case BuyNGetMFree:
		d.Kind = kindBuyNGetMFree
		d.N = v.n
		d.M = v.m
		d.Scope = v.scope
	case FirstOrderCoupon:
		d.Kind = kindFirstOrderCoupon
		d.Code = v.code
		d.Percent = v.percent.percent.String()
		d.ExpiresAt = v.expiresAt
	default:
		return nil, fmt.Errorf("%w: strategy %q cannot be serialized", ErrInvalidPricingOperation, s.Name())
	}

	return json.Marshal(d)
}

// UnmarshalStrategy rebuilds a strategy from its JSON descriptor. Empty input
// yields NoDiscount so legacy rows without a descriptor keep working.
func UnmarshalStrategy(raw []byte) (Strategy, error) {
	if len(raw) == 0 {
		return NewNoDiscount(), nil
	}

	var d descriptor
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPricingOperation, err)
	}

	switch d.Kind {
	case "", kindNoDiscount:
		return NewNoDiscount(), nil
	case kindPercentOff:
		percent, err := decimal.NewFromString(d.Percent)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPricingOperation, err)
		}
		return NewPercentOff(percent)
	case kindBuyNGetMFree:
		return NewBuyNGetMFree(d.N, d.M, d.Scope)
	case kindFirstOrderCoupon:
		percent, err := decimal.NewFromString(d.Percent)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPricingOperation, err)
		}
		return NewFirstOrderCoupon(d.Code, percent, d.ExpiresAt)
	default:
		return nil, fmt.Errorf("%w: unknown strategy kind %q", ErrInvalidPricingOperation, d.Kind)
	}
}
