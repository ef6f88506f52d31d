package queries

import (
	"context"

	"quickbite/internal/core/domain/model/order"
	"quickbite/internal/core/ports"
)

// GetOrderQueryHandler serves single-order lookups from the order
// repository. Lookups are read-only and side-effect free: two consecutive
// lookups without an intervening mutation return identical snapshots.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(orders ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle returns the order's current snapshot, or an ObjectNotFoundError
// when the identifier is unknown.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.orders.Get(ctx, query.OrderID())
}
