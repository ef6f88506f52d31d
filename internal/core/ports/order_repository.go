package ports

import (
	"context"

	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/core/domain/model/order"
)

// OrderRepository defines the storage contract for order aggregates. It is
// the single source of truth for orders: every read during the lifecycle
// (including scheduled transitions) goes back to the repository instead of
// holding on to a captured copy.
//
// Implementations must be safe for concurrent use and must hand out
// snapshots, never aliases of their internal state. Orders are retained for
// the lifetime of the process; there is no delete.
type OrderRepository interface {
	// NextID produces a fresh unique order identifier. Identifiers are
	// assigned from a counter seeded at 1 and are never reused.
	NextID() (kernel.OrderID, error)

	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Returns an ObjectNotFoundError when the order is unknown.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order snapshot by its identifier.
	// Returns an ObjectNotFoundError when the order is unknown.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetAll retrieves snapshots of all orders in insertion order.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
