// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the pizzeria. It implements workflows that
// don't naturally belong to a single aggregate root.
//
// The package includes:
//   - Dispatcher: a domain service for choosing couriers and handing them boxed orders
//   - AssignmentStrategy: the pluggable courier selection policy, with
//     NearestCourier as the default
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
