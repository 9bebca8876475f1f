package order

import (
	"errors"
	"fmt"

	"pizzeria/internal/pkg/errs"
)

var (
	// ErrAlreadyFinalized is returned for any transition attempted from a
	// terminal status (Delivered or Canceled). It always takes precedence
	// over ErrInvalidTransition so callers can tell "this order is done"
	// apart from "wrong step".
	ErrAlreadyFinalized = errors.New("order is already finalized")

	// ErrInvalidTransition is returned when the requested transition is not
	// allowed from the current, non-terminal status.
	ErrInvalidTransition = errors.New("order status transition is invalid")
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the kitchen workflow.
//
// State transitions:
//
//	New ──> Accepted ──> Baking ──> Boxed ──> Dispatched ──> Delivered
//	 │          │
//	 └──────────┴──> Canceled
//
// Delivered and Canceled are terminal: no transition leaves them.
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status: the order is being composed.
	New

	// Accepted means the kitchen has taken the order. Items can still be
	// changed until baking starts.
	Accepted

	// Baking means ingredients are committed and the order is in the oven.
	Baking

	// Boxed means baking finished and the order is packed, waiting for a
	// courier.
	Boxed

	// Dispatched means a courier is carrying the order to the customer.
	Dispatched

	// Delivered is the successful terminal status.
	Delivered

	// Canceled is the terminal status for orders abandoned before baking.
	Canceled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		New:        "NEW",
		Accepted:   "ACCEPTED",
		Baking:     "BAKING",
		Boxed:      "BOXED",
		Dispatched: "DISPATCHED",
		Delivered:  "DELIVERED",
		Canceled:   "CANCELED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:        "NEW",
		Accepted:   "ACCEPTED",
		Baking:     "BAKING",
		Boxed:      "BOXED",
		Dispatched: "DISPATCHED",
		Delivered:  "DELIVERED",
		Canceled:   "CANCELED",
	}
}

// Validate checks if the Status value is valid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persistence token of the status, for example "BAKING".
// Invalid values render as "UNKNOWN". Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// StatusFromString parses a persistence token back into a Status.
func StatusFromString(raw string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == raw {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", raw),
	)
}

// IsTerminal reports whether no further transition can leave this status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Canceled
}

// transitionTo is the shared transition guard. Terminal statuses are checked
// first so that ErrAlreadyFinalized wins over ErrInvalidTransition.
func (s Status) transitionTo(target Status, validFrom ...Status) (Status, error) {
	if s.IsTerminal() {
		return Unknown, fmt.Errorf("%w: order is %s", ErrAlreadyFinalized, s)
	}

	for _, from := range validFrom {
		if s == from {
			return target, nil
		}
	}

	return Unknown, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, target)
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - New -> Accepted
//
// Returns:
//   - (Accepted, nil) on valid transition
//   - (Unknown, error) if transition is not allowed from current status
func (s Status) Accept() (Status, error) {
	return s.transitionTo(Accepted, New)
}

// StartBaking transitions the status to Baking.
//
// Valid transitions:
//   - Accepted -> Baking
func (s Status) StartBaking() (Status, error) {
	return s.transitionTo(Baking, Accepted)
}

// Box transitions the status to Boxed. Boxing is mandatory: an order cannot
// go from the oven straight to a courier.
//
// Valid transitions:
//   - Baking -> Boxed
func (s Status) Box() (Status, error) {
	return s.transitionTo(Boxed, Baking)
}

// Dispatch transitions the status to Dispatched.
//
// Valid transitions:
//   - Boxed -> Dispatched
func (s Status) Dispatch() (Status, error) {
	return s.transitionTo(Dispatched, Boxed)
}

// Deliver transitions the status to Delivered, the successful final state.
//
// Valid transitions:
//   - Dispatched -> Delivered
func (s Status) Deliver() (Status, error) {
	return s.transitionTo(Delivered, Dispatched)
}

// Cancel transitions the status to Canceled. Once ingredients are committed
// (Baking and later) the order can no longer be canceled.
//
// Valid transitions:
//   - New -> Canceled
//   - Accepted -> Canceled
func (s Status) Cancel() (Status, error) {
	return s.transitionTo(Canceled, New, Accepted)
}
