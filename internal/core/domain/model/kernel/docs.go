// Package kernel provides core domain primitives shared by every aggregate
// in the bookstore system. It implements fundamental building blocks following
// Domain-Driven Design principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Money: A decimal-backed monetary amount with currency-safe arithmetic
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use. Monetary amounts are
// never represented as binary floating point anywhere in the system.
package kernel
