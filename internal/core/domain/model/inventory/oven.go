package inventory

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrOvenCapacityExceeded is returned when a batch does not fit the oven's
	// remaining capacity. The bake transition releases its reservation and
	// leaves the order untouched when it sees this error.
	ErrOvenCapacityExceeded = errors.New("oven capacity exceeded")

	// ErrOvenUnavailable is returned when the oven cannot take any batch at
	// all, e.g. it has been switched off for maintenance.
	ErrOvenUnavailable = errors.New("oven unavailable")

	// ErrBatchIsInvalid is returned for a non-positive batch size.
	ErrBatchIsInvalid = errors.New("batch size must be greater than 0")
)

// Oven is the admission gate in front of baking: an order may only enter the
// BAKING state if the oven accepts its total unit count as one batch.
type Oven interface {
	// CanBake reports whether a batch of count units would currently fit.
	// It never mutates oven state.
	CanBake(count int) bool

	// BakeBatch occupies capacity for count units. Fails with
	// ErrOvenCapacityExceeded or ErrOvenUnavailable without occupying
	// anything when the batch does not fit.
	BakeBatch(count int) error

	// FinishBatch frees capacity for count units once they are boxed.
	FinishBatch(count int) error
}

// BatchOven is an in-process Oven with a fixed unit capacity. Like the stock
// inventory it is shared across orders, so a mutex keeps the check and the
// occupation atomic.
type BatchOven struct {
	mu       sync.Mutex
	capacity int
	inUse    int
	offline  bool
}

// NewBatchOven creates a BatchOven holding at most capacity units at a time.
func NewBatchOven(capacity int) (*BatchOven, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("oven capacity %d is not greater than 0", capacity)
	}
	return &BatchOven{capacity: capacity}, nil
}

// CanBake reports whether a batch of count units currently fits.
func (o *BatchOven) CanBake(count int) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	return !o.offline && count > 0 && o.inUse+count <= o.capacity
}

// BakeBatch occupies capacity for count units.
func (o *BatchOven) BakeBatch(count int) error {
	if count <= 0 {
		return ErrBatchIsInvalid
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.offline {
		return ErrOvenUnavailable
	}
	if o.inUse+count > o.capacity {
		return fmt.Errorf("%w: %d units requested, %d of %d in use",
			ErrOvenCapacityExceeded, count, o.inUse, o.capacity)
	}

	o.inUse += count
	return nil
}

// FinishBatch frees capacity for count units.
func (o *BatchOven) FinishBatch(count int) error {
	if count <= 0 {
		return ErrBatchIsInvalid
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if count > o.inUse {
		return fmt.Errorf("cannot finish %d units, only %d in use", count, o.inUse)
	}

	o.inUse -= count
	return nil
}

// SetOffline toggles maintenance mode. An offline oven rejects every batch.
func (o *BatchOven) SetOffline(offline bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.offline = offline
}

// InUse returns the number of units currently occupying the oven.
func (o *BatchOven) InUse() int {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.inUse
}
