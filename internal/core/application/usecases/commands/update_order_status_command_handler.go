package commands

import (
	"context"
	"time"

	"quickbite/internal/core/domain/model/order"
	"quickbite/internal/core/ports"
)

// UpdateOrderStatusCommandHandler applies manual status overrides. The
// override is persisted and published like any other state change, so live
// observers see it immediately.
type UpdateOrderStatusCommandHandler struct {
	orders      ports.OrderRepository
	broadcaster ports.OrderBroadcaster
}

// NewUpdateOrderStatusCommandHandler creates a handler for status overrides.
func NewUpdateOrderStatusCommandHandler(
	orders ports.OrderRepository,
	broadcaster ports.OrderBroadcaster,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		orders:      orders,
		broadcaster: broadcaster,
	}
}

// Handle overwrites the order's status and returns the updated order.
// Returns an ObjectNotFoundError when the identifier is unknown.
func (h UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	current, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = current.ChangeStatus(cmd.Status(), time.Now()); err != nil {
		return nil, err
	}

	if err = h.orders.Update(ctx, current); err != nil {
		return nil, err
	}

	h.broadcaster.Publish(current.ID(), current.Clone())
	return current, nil
}
