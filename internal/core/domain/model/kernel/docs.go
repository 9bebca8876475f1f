// Package kernel provides core domain primitives for the pizzeria system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - Money: An exact-decimal value object with centralized banker's-rounding quantization
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Location: A value object representing a point on the city map
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
