// Package services provides domain services that implement business logic
// spanning multiple domain concepts. It hosts workflows that don't naturally
// belong to a single aggregate root.
//
// The package includes:
//   - FareCalculator: A domain service pricing a trip from the active tariff
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
