package eventbus_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"quickbite/internal/adapters/out/eventbus"
	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBroadcaster() *eventbus.Broadcaster {
	return eventbus.NewBroadcaster(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func orderID(t *testing.T, sequence uint64) kernel.OrderID {
	t.Helper()
	id, err := kernel.NewOrderID(sequence)
	require.NoError(t, err)
	return id
}

func snapshot(t *testing.T, id kernel.OrderID) *order.Order {
	t.Helper()

	li, err := order.NewLineItem("1", "Margherita Pizza", 10.00, 1)
	require.NoError(t, err)
	details, err := order.NewDeliveryDetails("Ada Lovelace", "12 Analytical Row", "5550100200")
	require.NoError(t, err)
	o, err := order.NewOrder(id, []order.LineItem{li}, details, time.Now())
	require.NoError(t, err)
	return o
}

func TestBroadcasterFanOut(t *testing.T) {
	b := newBroadcaster()
	id := orderID(t, 1)
	other := orderID(t, 2)

	var got []string
	b.Subscribe(id, func(*order.Order) error {
		got = append(got, "first")
		return nil
	})
	b.Subscribe(id, func(*order.Order) error {
		got = append(got, "second")
		return nil
	})
	b.Subscribe(other, func(*order.Order) error {
		got = append(got, "other")
		return nil
	})

	b.Publish(id, snapshot(t, id))

	assert.Equal(t, []string{"first", "second"}, got,
		"handlers must run in registration order, only for the published order")
}

func TestBroadcasterUnsubscribe(t *testing.T) {
	b := newBroadcaster()
	id := orderID(t, 1)

	calls := 0
	sub := b.Subscribe(id, func(*order.Order) error {
		calls++
		return nil
	})
	require.Equal(t, 1, b.SubscriberCount(id))

	b.Publish(id, snapshot(t, id))
	b.Unsubscribe(sub)
	b.Publish(id, snapshot(t, id))

	assert.Equal(t, 1, calls, "no delivery after unsubscribe")
	assert.Equal(t, 0, b.SubscriberCount(id))

	// Double unsubscribe is a no-op.
	b.Unsubscribe(sub)
	assert.Equal(t, 0, b.SubscriberCount(id))
}

func TestBroadcasterIsolatesFailingHandlers(t *testing.T) {
	b := newBroadcaster()
	id := orderID(t, 1)

	var got []string
	b.Subscribe(id, func(*order.Order) error {
		got = append(got, "failing")
		return errors.New("buffer full")
	})
	b.Subscribe(id, func(*order.Order) error {
		panic("broken subscriber")
	})
	b.Subscribe(id, func(*order.Order) error {
		got = append(got, "healthy")
		return nil
	})

	require.NotPanics(t, func() {
		b.Publish(id, snapshot(t, id))
	})
	assert.Equal(t, []string{"failing", "healthy"}, got,
		"errors and panics must not stop delivery to later handlers")
}

func TestBroadcasterNoReplay(t *testing.T) {
	b := newBroadcaster()
	id := orderID(t, 1)

	b.Publish(id, snapshot(t, id))

	calls := 0
	b.Subscribe(id, func(*order.Order) error {
		calls++
		return nil
	})

	assert.Equal(t, 0, calls, "a new subscriber must not see earlier publishes")
}

func TestBroadcasterPublishWithoutSubscribers(t *testing.T) {
	b := newBroadcaster()
	id := orderID(t, 1)

	require.NotPanics(t, func() {
		b.Publish(id, snapshot(t, id))
	})
}
