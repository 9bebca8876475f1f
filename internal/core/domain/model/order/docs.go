// Package order contains the Order aggregate and its lifecycle state machine.
//
// An Order is composed of immutable Items (pizza, size, toppings, quantity)
// and moves through the statuses New, Accepted, Baking, Boxed, Dispatched,
// Delivered, with New and Accepted also allowed to Cancel. Delivered and
// Canceled are terminal.
//
// Pricing is delegated to the pricing package: the order exposes a snapshot
// view and re-applies its strategy on every total computation, so totals are
// never stale. The StartBaking transition is the only place where stock and
// oven capacity are touched, and it either fully succeeds or leaves the
// order, the stock, and the oven exactly as they were.
package order
