package ports

import (
	"context"
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are stored with their line items; the referenced recipient and
// books are rehydrated alongside the aggregate.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no order exists under the ID.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllNewCreatedBefore retrieves every order still in New status whose
	// creation timestamp is at or before the deadline. Used by the
	// abandoned-orders job to cancel orders that were never paid.
	GetAllNewCreatedBefore(ctx context.Context, deadline time.Time) ([]*order.Order, error)

	// Delete removes an order and its line items unconditionally.
	// Returns an ObjectNotFoundError when no order exists under the ID.
	Delete(ctx context.Context, id kernel.UUID) error
}
