package queries

import (
	"context"

	"quickbite/internal/core/domain/model/order"
	"quickbite/internal/core/ports"
)

// ListOrdersQueryHandler serves the order listing from the repository.
type ListOrdersQueryHandler struct {
	orders ports.OrderRepository
}

// NewListOrdersQueryHandler creates a handler for order listings.
func NewListOrdersQueryHandler(orders ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

// Handle returns snapshots of all orders in insertion order.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.orders.GetAll(ctx)
}
