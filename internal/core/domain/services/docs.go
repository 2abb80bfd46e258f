// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the order management
// system. It implements workflows that don't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - LineResolver: A domain service that resolves draft line requests
//     against fetched catalog items, enforcing the all-or-nothing
//     resolution rule
//
// Domain services coordinate between aggregates, implementing business
// logic that spans bounded contexts following Domain-Driven Design
// principles.
package services
