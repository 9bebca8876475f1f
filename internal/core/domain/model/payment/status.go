package payment

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// Status represents the settlement state of a payment record.
//
// State transitions:
//
//	New ──> Authorized ──> Captured ──> PartiallyRefunded ──> Refunded
//	 │                        │                │
//	 └──(cash)────────────────┘                └──(repeatable)──┐
//	                                                            │
//	                                           PartiallyRefunded┘
//
// Cash payments may capture directly from New. Refunded means the full
// captured amount has been returned.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusNew is the initial state before any money movement.
	StatusNew

	// StatusAuthorized means the amount due is held but not yet taken.
	StatusAuthorized

	// StatusCaptured means the money has been taken.
	StatusCaptured

	// StatusPartiallyRefunded means part of the captured amount was returned.
	StatusPartiallyRefunded

	// StatusRefunded means the full captured amount was returned.
	StatusRefunded
)

// getPaymentStatusStrings returns a map of Status values to their string
// representations.
func getPaymentStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:           "UNKNOWN",
		StatusNew:               "NEW",
		StatusAuthorized:        "AUTHORIZED",
		StatusCaptured:          "CAPTURED",
		StatusPartiallyRefunded: "PARTIALLY_REFUNDED",
		StatusRefunded:          "REFUNDED",
	}
}

// getValidPaymentStatusStrings returns a map of only valid Status values.
func getValidPaymentStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusNew:               "NEW",
		StatusAuthorized:        "AUTHORIZED",
		StatusCaptured:          "CAPTURED",
		StatusPartiallyRefunded: "PARTIALLY_REFUNDED",
		StatusRefunded:          "REFUNDED",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", s),
		)
	}
	return nil
}

// String returns the persistence token of the status. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// PaymentStatusFromString parses a persistence token back into a Status.
func PaymentStatusFromString(raw string) (Status, error) {
	for status, str := range getValidPaymentStatusStrings() {
		if str == raw {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment status is invalid",
		fmt.Errorf("%q is not a valid payment status", raw),
	)
}
