// Package inventory provides the finite kitchen resources every order
// competes for: ingredient stock and oven capacity.
//
// The package includes:
//   - Ingredient / Requirement / Requirements: ingredient demand value objects
//   - Inventory + StockInventory: reservation-token protocol over shared stock
//   - Oven + BatchOven: admission control on batch size before baking
//
// Stock is a shared mutable resource across concurrently baking orders, so
// StockInventory serializes reserve/commit/release through a mutex: the
// availability check and the earmark are one atomic step, and no two
// reservations can both succeed against stock that only one can satisfy.
// Reservation tokens are single-use; committing or releasing twice is an
// error rather than a silent no-op.
package inventory
