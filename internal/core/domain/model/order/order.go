package order

import (
	"errors"
	"fmt"
	"time"

	"pizzeria/internal/core/domain/model/inventory"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/menu"
	"pizzeria/internal/core/domain/model/pricing"
	"pizzeria/internal/core/domain/model/product"
	"pizzeria/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method. This ensures all orders are properly
	// validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrInvalidOrderOperation is returned when an operation other than a status
	// transition (item mutation, strategy change) is attempted in a status that
	// does not allow it. Terminal statuses report ErrAlreadyFinalized instead.
	ErrInvalidOrderOperation = errors.New("operation is not allowed in current order status")

	// ErrEmptyOrder is returned when an order without items is accepted.
	ErrEmptyOrder = errors.New("order has no items")
)

// Order represents a customer's pizza order. It is the aggregate root that
// manages the order lifecycle from composition through baking and dispatch
// to delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer identifier
//   - Must have a valid delivery destination
//   - Items can only change while the status is New or Accepted
//   - Status transitions follow the rules encoded in Status
//   - A failed transition leaves status, items, and stock untouched
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID identifies the customer who placed the order
	customerID kernel.UUID

	// destination is the delivery target
	destination kernel.Location

	// items are the order lines in insertion order
	items []Item

	// status is the current lifecycle state
	status Status

	// strategy prices the order; never nil, defaults to NoDiscount
	strategy pricing.Strategy

	// courierID is the courier carrying the order (nil before dispatch)
	courierID *kernel.UUID

	// isFirstOrder marks the customer's first order, used by coupon pricing
	isFirstOrder bool

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in status New with no items and the
// NoDiscount pricing strategy.
//
// Parameters:
//   - id: unique identifier for the order
//   - customerID: the ordering customer
//   - destination: delivery location with validated coordinates
//   - isFirstOrder: whether this is the customer's first order
//
// Returns:
//   - *Order: the created order if all validations pass
//   - error: validation error if any parameter is invalid
func NewOrder(id kernel.UUID, customerID kernel.UUID, destination kernel.Location, isFirstOrder bool) (*Order, error) {
	order := &Order{
		status:        New,
		strategy:      pricing.NewNoDiscount(),
		isFirstOrder:  isFirstOrder,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setDestination(destination),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder rehydrates an Order from persistence. It bypasses lifecycle
// rules on purpose: the stored state already passed them when it was written.
// A nil strategy falls back to NoDiscount.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	destination kernel.Location,
	items []Item,
	status Status,
	strategy pricing.Strategy,
	courierID *kernel.UUID,
	isFirstOrder bool,
) (*Order, error) {
	if err := errors.Join(id.Validate(), customerID.Validate(), destination.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	if strategy == nil {
		strategy = pricing.NewNoDiscount()
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		destination:   destination,
		items:         append([]Item(nil), items...),
		status:        status,
		strategy:      strategy,
		courierID:     courierID,
		isFirstOrder:  isFirstOrder,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order was not created via a constructor
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Destination returns the delivery location.
func (o *Order) Destination() kernel.Location {
	return o.destination
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Courier returns the assigned courier's ID.
// Returns nil before the order is dispatched.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// IsFirstOrder reports whether this is the customer's first order.
func (o *Order) IsFirstOrder() bool {
	return o.isFirstOrder
}

// Items returns a copy of the order lines in insertion order.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// TotalUnits returns the number of pizzas across all lines. This is the
// count the oven is asked to hold for the order's batch.
func (o *Order) TotalUnits() int {
	units := 0
	for _, item := range o.items {
		units += item.Quantity()
	}
	return units
}

// AddItem resolves the SKUs against the menu and appends an order line.
//
// Rules:
//   - quantity must be positive (ErrInvalidQuantity)
//   - unknown pizza or topping SKU returns menu.ErrMenuItemNotFound
//   - items can only change in New or Accepted; Baking and later return
//     ErrInvalidOrderOperation, terminal statuses ErrAlreadyFinalized
func (o *Order) AddItem(m *menu.Menu, sku string, size product.Size, toppingSKUs []string, quantity int) error {
	if err := o.ensureMutable(); err != nil {
		return err
	}

	pizza, err := m.FindPizzaSKU(sku)
	if err != nil {
		return err
	}

	toppings := make([]product.Topping, 0, len(toppingSKUs))
	for _, toppingSKU := range toppingSKUs {
		topping, err := m.FindToppingSKU(toppingSKU)
		if err != nil {
			return err
		}
		toppings = append(toppings, topping)
	}

	item, err := NewItem(pizza, size, toppings, quantity)
	if err != nil {
		return err
	}

	o.items = append(o.items, item)
	return nil
}

// RemoveItem deletes the line at the given zero-based position, preserving
// the order of the remaining lines.
func (o *Order) RemoveItem(index int) error {
	if err := o.ensureMutable(); err != nil {
		return err
	}

	if index < 0 || index >= len(o.items) {
		return errs.NewValueIsOutOfRangeError("index", index, 0, len(o.items)-1)
	}

	o.items = append(o.items[:index], o.items[index+1:]...)
	return nil
}

// Clear removes all order lines.
func (o *Order) Clear() error {
	if err := o.ensureMutable(); err != nil {
		return err
	}

	o.items = nil
	return nil
}

// Subtotal returns the quantized sum of all line totals. It is computed
// fresh on every call; nothing is cached.
func (o *Order) Subtotal() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.LineTotal())
	}
	return total.Quantize()
}

// SetPricingStrategy replaces the order's pricing strategy. Allowed only
// while the order is still being composed (New or Accepted).
func (o *Order) SetPricingStrategy(strategy pricing.Strategy) error {
	if o.status.IsTerminal() {
		return fmt.Errorf("%w: order is %s", ErrAlreadyFinalized, o.status)
	}

	if o.status != New && o.status != Accepted {
		return fmt.Errorf("%w: strategy is frozen once the order is %s",
			pricing.ErrInvalidPricingOperation, o.status)
	}

	if strategy == nil {
		return fmt.Errorf("%w: strategy is nil", pricing.ErrInvalidPricingOperation)
	}

	o.strategy = strategy
	return nil
}

// PricingStrategy returns the current pricing strategy.
func (o *Order) PricingStrategy() pricing.Strategy {
	return o.strategy
}

// View returns a pricing snapshot of the order at the given evaluation time.
func (o *Order) View(evaluatedAt time.Time) pricing.OrderView {
	return orderView{
		items: o.Items(),
		meta: pricing.Metadata{
			IsFirstOrder: o.isFirstOrder,
			EvaluatedAt:  evaluatedAt,
		},
	}
}

// Pricing applies the current strategy to a fresh view of the order and
// returns the full result for auditing. The strategy is re-applied on every
// call, so the result always reflects the current items.
func (o *Order) Pricing(evaluatedAt time.Time) (pricing.Result, error) {
	return o.strategy.Apply(o.View(evaluatedAt))
}

// FinalTotal returns the discounted total the customer pays.
func (o *Order) FinalTotal(evaluatedAt time.Time) (kernel.Money, error) {
	result, err := o.Pricing(evaluatedAt)
	if err != nil {
		return kernel.Money{}, err
	}
	return result.FinalTotal, nil
}

// Accept moves the order from New to Accepted. An order without items
// cannot be accepted.
func (o *Order) Accept() error {
	if len(o.items) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyOrder, o.id)
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// StartBaking commits the order to the kitchen: it reserves the aggregate
// ingredient needs, claims oven space for every unit, and only then commits
// the reservation and moves to Baking.
//
// The sequence is all-or-nothing. If the oven rejects the batch after the
// ingredients were reserved, the reservation is released and the order stays
// Accepted with stock unchanged.
func (o *Order) StartBaking(inv inventory.Inventory, oven inventory.Oven) error {
	newStatus, err := o.status.StartBaking()
	if err != nil {
		return err
	}

	token, err := inv.Reserve(o.AggregateRequirements())
	if err != nil {
		return err
	}

	if err := oven.BakeBatch(o.TotalUnits()); err != nil {
		releaseErr := inv.Release(token)
		return errors.Join(err, releaseErr)
	}

	if err := inv.Commit(token); err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Box moves the order from Baking to Boxed. The caller frees the oven batch
// once the transition succeeds.
func (o *Order) Box() error {
	newStatus, err := o.status.Box()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Dispatch hands the boxed order to a courier.
func (o *Order) Dispatch(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Dispatch()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	return nil
}

// Deliver marks the order as delivered, the successful final state.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel abandons an order that has not started baking. Ingredients are
// never touched by a cancel: nothing was reserved before Baking.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AggregateRequirements merges the ingredient needs of all lines into a
// single requirements map, summing amounts per ingredient.
func (o *Order) AggregateRequirements() inventory.Requirements {
	total := inventory.Requirements{}
	for _, item := range o.items {
		total.MergeAll(item.Requirements())
	}
	return total
}

// ensureMutable guards operations that change the order's composition.
// Terminal statuses win with ErrAlreadyFinalized; any other status past
// Accepted reports ErrInvalidOrderOperation.
func (o *Order) ensureMutable() error {
	if o.status.IsTerminal() {
		return fmt.Errorf("%w: order is %s", ErrAlreadyFinalized, o.status)
	}

	if o.status != New && o.status != Accepted {
		return fmt.Errorf("%w: order is %s", ErrInvalidOrderOperation, o.status)
	}

	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the ordering customer's identifier.
// This is a private method used only during construction.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setDestination validates and sets the delivery location.
// This is a private method used only during construction.
func (o *Order) setDestination(destination kernel.Location) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	o.destination = destination
	return nil
}

// orderView is the immutable pricing snapshot handed to strategies.
type orderView struct {
	items []Item
	meta  pricing.Metadata
}

func (v orderView) Subtotal() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range v.items {
		total = total.Add(item.LineTotal())
	}
	return total.Quantize()
}

func (v orderView) Items() []pricing.ItemView {
	views := make([]pricing.ItemView, len(v.items))
	for i, item := range v.items {
		views[i] = item
	}
	return views
}

func (v orderView) Metadata() pricing.Metadata {
	return v.meta
}
