// Package order provides domain entities and business logic for order management
// in the back office. It implements the Order aggregate root with lifecycle
// management, line item snapshots, and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, items, total, and lifecycle
//   - LineItem: An immutable snapshot of one product position (name, quantity, unit price)
//   - Status: A state machine that enforces valid order status transitions
//   - PaymentMethod: A closed enumeration of supported payment methods
//
// Key business rules:
//   - Orders must have a valid identifier, customer reference, and at least one item
//   - The order total always equals the sum of line subtotals captured at creation
//   - Status follows a fixed table: Created -> {Paid, Shipped, Cancelled},
//     Paid -> {Shipped, Cancelled}, Shipped -> {Paid}, Cancelled is terminal
//   - Line items snapshot the product name and price, so later product edits
//     never change historical orders
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
