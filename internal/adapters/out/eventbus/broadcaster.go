// Package eventbus implements the in-process update broadcaster: a
// publish/subscribe registry keyed by order identifier that fans out order
// snapshots to live observers such as SSE connections.
package eventbus

import (
	"fmt"
	"log/slog"
	"sync"

	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/core/domain/model/order"
	"quickbite/internal/core/ports"

	"github.com/google/uuid"
)

var _ ports.OrderBroadcaster = (*Broadcaster)(nil)

type subscriber struct {
	id      uuid.UUID
	handler ports.OrderHandler
}

// Broadcaster fans out published order snapshots to the handlers subscribed
// to that order's channel. There is no buffering or replay: a handler only
// observes publishes issued after it subscribed.
//
// The registry has its own lock, scoped to registry mutation and snapshot;
// handlers run outside the lock so one order's slow subscriber never blocks
// subscribe/unsubscribe traffic for other orders.
type Broadcaster struct {
	mu       sync.Mutex
	channels map[string][]subscriber
	logger   *slog.Logger
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster(logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		channels: make(map[string][]subscriber),
		logger:   logger.With("component", "order_broadcaster"),
	}
}

// Subscribe registers handler for every future publish of the given order
// and returns the handle used to unsubscribe. Handlers for one order are
// invoked in registration order.
func (b *Broadcaster) Subscribe(orderID kernel.OrderID, handler ports.OrderHandler) ports.Subscription {
	sub := ports.Subscription{ID: uuid.New(), OrderID: orderID}

	b.mu.Lock()
	defer b.mu.Unlock()

	key := orderID.String()
	b.channels[key] = append(b.channels[key], subscriber{id: sub.ID, handler: handler})
	return sub
}

// Unsubscribe removes the handler identified by sub. Calling it again, or
// with a handle whose channel is already empty, is a no-op.
func (b *Broadcaster) Unsubscribe(sub ports.Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := sub.OrderID.String()
	subs := b.channels[key]
	for i, s := range subs {
		if s.id == sub.ID {
			b.channels[key] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(b.channels[key]) == 0 {
		delete(b.channels, key)
	}
}

// Publish synchronously invokes every handler currently subscribed to the
// order, in registration order. A handler that returns an error or panics is
// logged and skipped; it never prevents delivery to subsequent handlers.
func (b *Broadcaster) Publish(orderID kernel.OrderID, snapshot *order.Order) {
	b.mu.Lock()
	subs := append([]subscriber(nil), b.channels[orderID.String()]...)
	b.mu.Unlock()

	for _, s := range subs {
		if err := b.invoke(s, snapshot); err != nil {
			b.logger.Error("subscriber handler failed",
				"order_id", orderID.String(),
				"subscription_id", s.id.String(),
				"error", err)
		}
	}
}

// invoke runs one handler, converting a panic into an error so a broken
// subscriber cannot take down the publisher.
func (b *Broadcaster) invoke(s subscriber, snapshot *order.Order) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()
	return s.handler(snapshot)
}

// SubscriberCount reports the number of live subscriptions for an order.
// Used by tests to verify unsubscribe-on-disconnect.
func (b *Broadcaster) SubscriberCount(orderID kernel.OrderID) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.channels[orderID.String()])
}
