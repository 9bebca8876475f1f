package payment

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// Method identifies how the customer pays for an order.
//
// The method decides whether a capture needs a prior authorization:
// cash is settled hand to hand so authorization is an optional marker,
// while card and online payments must be authorized before capture.
type Method int

const (
	// MethodUnknown represents an invalid or undefined method.
	MethodUnknown Method = iota

	// MethodCash is payment on delivery. Capture without authorize is allowed.
	MethodCash

	// MethodCard is a card payment. Capture requires a prior authorization.
	MethodCard

	// MethodOnline is an online payment. Capture requires a prior authorization.
	MethodOnline
)

// getMethodStrings returns a map of Method values to their string representations.
func getMethodStrings() map[Method]string {
	return map[Method]string{
		MethodUnknown: "UNKNOWN",
		MethodCash:    "CASH",
		MethodCard:    "CARD",
		MethodOnline:  "ONLINE",
	}
}

// getValidMethodStrings returns a map of only valid Method values.
func getValidMethodStrings() map[Method]string {
	//nolint:exhaustive // MethodUnknown is intentionally excluded as it's invalid
	return map[Method]string{
		MethodCash:   "CASH",
		MethodCard:   "CARD",
		MethodOnline: "ONLINE",
	}
}

// Validate checks if the Method value is valid.
func (m Method) Validate() error {
	if _, ok := getValidMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("method is invalid", fmt.Errorf("%d is not a valid method", m))
	}
	return nil
}

// String returns the persistence token of the method, for example "CASH".
// Implements fmt.Stringer.
func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}

// MethodFromString parses a persistence token back into a Method.
func MethodFromString(raw string) (Method, error) {
	for method, str := range getValidMethodStrings() {
		if str == raw {
			return method, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"method is invalid",
		fmt.Errorf("%q is not a valid method", raw),
	)
}

// RequiresAuthorization reports whether a capture must be preceded by an
// authorization for this method.
func (m Method) RequiresAuthorization() bool {
	return m == MethodCard || m == MethodOnline
}
