// Package services provides domain services that implement business logic
// spanning multiple aggregates in the bookstore system.
//
// The package includes:
//   - PriceService: Computes an order's price from its line items, delivery
//     method, and a fixed sequence of discount rules
//   - DiscountStrategy: The polymorphic rule abstraction the price service
//     evaluates in deterministic order
//
// Prices are never persisted; the price service is invoked on every read so
// the result always reflects the current book prices.
package services
