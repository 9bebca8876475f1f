// Package product provides the immutable catalog definitions consumed by
// orders: Pizza and Topping items and the Size value object that scales
// prices and recipes.
//
// Products are defined at a MEDIUM baseline. A pizza's price and ingredient
// requirements for other sizes are derived on demand using exact decimal
// multipliers (0.75 / 1.0 / 1.25), with money quantization applied centrally
// by the kernel package.
//
// The package owns no mutable state: catalog items are built once (usually at
// menu construction) and shared read-only across many orders.
package product
