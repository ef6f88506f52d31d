package commands

import (
	"context"
	"fmt"
	"time"

	"quickbite/internal/core/domain/model/menu"
	"quickbite/internal/core/domain/model/order"
	"quickbite/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation:
// resolving selections against the menu catalog, snapshotting item names and
// prices, persisting the order, announcing the initial snapshot, and
// registering the automatic status progression.
//
// Creation is atomic from the caller's perspective. Every validation runs
// before anything is written, so a rejected request leaves no order behind
// and announces nothing.
type CreateOrderCommandHandler struct {
	orders      ports.OrderRepository
	catalog     ports.MenuCatalog
	broadcaster ports.OrderBroadcaster
	schedule    ports.TransitionSchedule
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	orders ports.OrderRepository,
	catalog ports.MenuCatalog,
	broadcaster ports.OrderBroadcaster,
	schedule ports.TransitionSchedule,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orders:      orders,
		catalog:     catalog,
		broadcaster: broadcaster,
		schedule:    schedule,
	}
}

// Handle processes the order creation command and returns the created order.
//
// Each selection must resolve to a catalog item (menu.ErrItemNotFound
// otherwise) that is currently available (menu.ErrItemUnavailable
// otherwise). On success the order starts in Received status, its initial
// snapshot is published, and the three automatic transitions are queued
// relative to the creation time.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	selections := cmd.Items()
	items := make([]order.LineItem, 0, len(selections))
	for _, sel := range selections {
		item, err := h.catalog.Find(ctx, sel.MenuItemID)
		if err != nil {
			return nil, err
		}
		if !item.Available {
			return nil, fmt.Errorf("menu item %q: %w", item.ID, menu.ErrItemUnavailable)
		}

		lineItem, err := order.NewLineItem(item.ID, item.Name, item.Price, sel.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, lineItem)
	}

	id, err := h.orders.NextID()
	if err != nil {
		return nil, err
	}

	created, err := order.NewOrder(id, items, cmd.DeliveryDetails(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = h.orders.Add(ctx, created); err != nil {
		return nil, err
	}

	h.broadcaster.Publish(id, created.Clone())

	for _, step := range order.ProgressionSteps() {
		h.schedule.Add(ports.ScheduledTransition{
			OrderID: id,
			FireAt:  created.CreatedAt().Add(step.Offset),
			Target:  step.Target,
		})
	}

	return created, nil
}
