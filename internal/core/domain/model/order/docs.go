// Package order provides domain entities and business logic for order
// management in the food ordering system. It implements the Order aggregate
// root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root owning lines, totals, and payment state
//   - Line: A resolved catalog item snapshot with a requested quantity
//   - Status: A state machine with an explicit transition table
//   - PaymentMethod, PaymentStatus: Payment enumerations
//
// Key business rules:
//   - Orders must reference a customer and contain at least one line
//   - The total always equals the sum of line subtotals (unit price times
//     quantity) after any mutation
//   - Status follows Pending -> Processing with cancellation allowed from
//     both; Completed and Cancelled are terminal
//   - Payment status becomes PaymentPending exactly once, when the order
//     starts processing, and requires a payment method
//
// All mutation goes through the aggregate's methods; there are no public
// setters, so no other layer can break the total or status invariants.
package order
