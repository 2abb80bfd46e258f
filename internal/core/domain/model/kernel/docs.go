// Package kernel provides shared value objects used across the order
// management domain.
//
// The package includes:
//   - UUID: Identifier value object for entities and aggregates
//   - Money: Non-negative decimal monetary amount
//
// Kernel types are immutable, constructor-validated, and carry no
// dependencies on other domain packages. They form the vocabulary the
// item and order aggregates are built from.
package kernel
