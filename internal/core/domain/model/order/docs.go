// Package order provides domain entities and business logic for order
// management in the bookstore system. It implements the Order aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root owning line items and referencing a recipient
//   - Item: A (book, quantity) line item owned exclusively by one order
//   - Status: A state machine that enforces valid order status transitions
//   - Delivery: The delivery method enum used by the pricing engine
//
// Key business rules:
//   - Orders must reference a valid recipient and carry at least one item
//   - Status follows a fixed workflow: New -> Paid -> Shipped, New -> Cancelled
//   - Cancelling an order revokes it: the reserved stock must be restored
//   - Shipped and Cancelled are terminal states
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
