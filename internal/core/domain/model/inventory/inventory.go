package inventory

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"pizzeria/internal/core/domain/model/kernel"
)

var (
	// ErrInsufficientIngredients is the unwrap target for failed reservations.
	// The concrete InsufficientIngredientsError carries the needed and
	// available amounts per ingredient.
	ErrInsufficientIngredients = errors.New("insufficient ingredients")

	// ErrReservationNotFound is returned when committing or releasing a token
	// the inventory has never issued.
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrReservationAlreadySettled is returned on the second commit or release
	// of the same token. Tokens are single-use: settling twice is an error,
	// not a no-op.
	ErrReservationAlreadySettled = errors.New("reservation already committed or released")

	// ErrEmptyRequirements is returned when a reservation is attempted with no
	// ingredient demand at all.
	ErrEmptyRequirements = errors.New("requirements must be non-empty")
)

// InsufficientIngredientsError reports every ingredient whose available stock
// cannot cover the requested amount.
type InsufficientIngredientsError struct {
	Shortages []Shortage
}

// Shortage describes one ingredient that blocked a reservation.
type Shortage struct {
	Ingredient Ingredient
	Needed     decimal.Decimal
	Available  decimal.Decimal
}

func (e *InsufficientIngredientsError) Error() string {
	parts := make([]string, 0, len(e.Shortages))
	for _, s := range e.Shortages {
		parts = append(parts, fmt.Sprintf("%s: need %s, have %s",
			s.Ingredient, s.Needed.String(), s.Available.String()))
	}
	return "insufficient ingredients: " + strings.Join(parts, "; ")
}

func (e *InsufficientIngredientsError) Unwrap() error {
	return ErrInsufficientIngredients
}

// ReservationToken is a single-use claim on earmarked stock. It carries an
// opaque identifier and a snapshot of exactly what was reserved. The token's
// lifecycle state (issued, committed, released) is tracked by the inventory
// that issued it, not by the token itself, so callers cannot forge a fresh
// claim by copying the struct.
type ReservationToken struct {
	id       kernel.UUID
	snapshot Requirements
}

// ID returns the token's opaque identifier.
func (t ReservationToken) ID() kernel.UUID {
	return t.id
}

// Snapshot returns a copy of the reserved amounts.
func (t ReservationToken) Snapshot() Requirements {
	return t.snapshot.Clone()
}

// Inventory tracks finite ingredient stock shared by every order trying to
// bake. The reservation protocol is check-and-earmark, then settle:
//
//	token, err := inv.Reserve(reqs)   // atomic check + earmark
//	...
//	inv.Commit(token)                 // permanent deduction, or
//	inv.Release(token)                // return to the pool
//
// A token must be settled exactly once.
type Inventory interface {
	// Availability reports whether current stock covers every requirement.
	// It never mutates stock.
	Availability(requirements Requirements) bool

	// Reserve atomically checks availability and earmarks the stock.
	// On shortage it fails with an InsufficientIngredientsError and leaves
	// stock untouched: there is no partial reservation.
	Reserve(requirements Requirements) (ReservationToken, error)

	// Commit permanently deducts the reserved amounts from stock.
	// Fails if the token was already committed or released.
	Commit(token ReservationToken) error

	// Release returns the earmarked amounts to available stock.
	// Same double-settle guard as Commit.
	Release(token ReservationToken) error

	// CurrentStock returns a read-only snapshot of available stock,
	// excluding amounts currently earmarked by outstanding reservations.
	CurrentStock() Requirements
}

type reservationState int

const (
	reservationIssued reservationState = iota
	reservationCommitted
	reservationReleased
)

// StockInventory is the in-process Inventory implementation. A single mutex
// serializes reserve/commit/release so that the availability check and the
// earmark are atomic with respect to concurrent reservations: no two orders
// can both claim the same unit of stock.
type StockInventory struct {
	mu           sync.Mutex
	available    Requirements
	reservations map[kernel.UUID]reservationState
}

// NewStockInventory creates a StockInventory seeded with the given stock.
// The initial stock map is copied; negative amounts are rejected.
func NewStockInventory(initial Requirements) (*StockInventory, error) {
	stock := make(Requirements, len(initial))
	for ingredient, amount := range initial {
		if amount.IsNegative() {
			return nil, fmt.Errorf("initial stock of %s is negative", ingredient)
		}
		stock[ingredient] = amount
	}

	return &StockInventory{
		available:    stock,
		reservations: make(map[kernel.UUID]reservationState),
	}, nil
}

// Availability reports whether current stock covers every requirement.
func (s *StockInventory) Availability(requirements Requirements) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.shortages(requirements)) == 0
}

// Reserve atomically checks availability and earmarks the requested amounts.
func (s *StockInventory) Reserve(requirements Requirements) (ReservationToken, error) {
	if len(requirements) == 0 {
		return ReservationToken{}, ErrEmptyRequirements
	}
	for ingredient, amount := range requirements {
		if !amount.IsPositive() {
			return ReservationToken{}, fmt.Errorf("requirement for %s must be > 0", ingredient)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if shortages := s.shortages(requirements); len(shortages) > 0 {
		return ReservationToken{}, &InsufficientIngredientsError{Shortages: shortages}
	}

	for ingredient, amount := range requirements {
		s.available[ingredient] = s.available[ingredient].Sub(amount)
	}

	token := ReservationToken{
		id:       kernel.NewUUID(),
		snapshot: requirements.Clone(),
	}
	s.reservations[token.id] = reservationIssued

	return token, nil
}

// Commit permanently deducts the reserved amounts. The stock was already
// earmarked at Reserve time, so commit only settles the token.
func (s *StockInventory) Commit(token ReservationToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkSettleable(token); err != nil {
		return err
	}

	s.reservations[token.id] = reservationCommitted
	return nil
}

// Release returns the earmarked amounts to available stock. The freed stock
// is visible to other reservations immediately.
func (s *StockInventory) Release(token ReservationToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkSettleable(token); err != nil {
		return err
	}

	for ingredient, amount := range token.snapshot {
		s.available[ingredient] = s.available[ingredient].Add(amount)
	}

	s.reservations[token.id] = reservationReleased
	return nil
}

// CurrentStock returns a snapshot of currently available (not earmarked) stock.
func (s *StockInventory) CurrentStock() Requirements {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.available.Clone()
}

// shortages returns an entry per ingredient whose stock cannot cover the
// requirement. Caller must hold the mutex.
func (s *StockInventory) shortages(requirements Requirements) []Shortage {
	var out []Shortage
	for _, ingredient := range requirements.Ingredients() {
		needed := requirements[ingredient]
		available := s.available[ingredient]
		if available.LessThan(needed) {
			out = append(out, Shortage{Ingredient: ingredient, Needed: needed, Available: available})
		}
	}
	return out
}

// checkSettleable verifies the token exists and is still unsettled.
// Caller must hold the mutex.
func (s *StockInventory) checkSettleable(token ReservationToken) error {
	state, ok := s.reservations[token.id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrReservationNotFound, token.id)
	}
	if state != reservationIssued {
		return fmt.Errorf("%w: %s", ErrReservationAlreadySettled, token.id)
	}
	return nil
}
