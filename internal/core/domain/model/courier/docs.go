// Package courier contains the Courier aggregate and its Vehicle value object.
//
// A courier carries at most one order at a time: Take marks it busy, Complete
// frees it. Movement is tick-based; each Move advances the courier toward a
// target by the vehicle's speed, snapping to the target when it is within
// reach. Assignment decisions (which courier takes which order) live in the
// services package, not here.
package courier
