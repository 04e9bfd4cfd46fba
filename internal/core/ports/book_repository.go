// Package ports defines repository interfaces for the bookstore domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/kernel"
)

// BookRepository defines the persistence contract for the inventory.
// The order use cases only read books and write back mutated availability;
// catalog management is out of scope for this service.
type BookRepository interface {
	// Add persists a new book aggregate to storage.
	Add(ctx context.Context, aggregate *book.Book) error

	// Get retrieves a book by its unique identifier.
	// Returns an ObjectNotFoundError when no book exists under the ID.
	Get(ctx context.Context, id kernel.UUID) (*book.Book, error)

	// UpdateAll persists the mutated availability of every given book.
	// Used after reserving or restocking copies during order placement and
	// revocation so all stock changes of one use case land together.
	UpdateAll(ctx context.Context, aggregates []*book.Book) error
}
