package ports

import (
	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderHandler receives a full order snapshot on every publish for the
// order it subscribed to. A returned error is logged by the broadcaster and
// never affects delivery to other handlers.
type OrderHandler func(snapshot *order.Order) error

// Subscription is the disposable handle returned by Subscribe. It must be
// passed back to Unsubscribe exactly once per successful subscribe; extra
// Unsubscribe calls are harmless no-ops.
type Subscription struct {
	ID      uuid.UUID
	OrderID kernel.OrderID
}

// OrderBroadcaster fans out order snapshots to live observers. Channels are
// keyed by order identifier; there is no buffering or replay, so a
// subscriber only sees publishes issued after it subscribed.
//
// Publish invokes the handlers registered at call time synchronously and in
// registration order. Handler failures (errors or panics) are isolated per
// handler.
type OrderBroadcaster interface {
	Subscribe(orderID kernel.OrderID, handler OrderHandler) Subscription
	Unsubscribe(sub Subscription)
	Publish(orderID kernel.OrderID, snapshot *order.Order)
}
