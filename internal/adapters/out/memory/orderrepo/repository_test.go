package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"quickbite/internal/adapters/out/memory/orderrepo"
	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/core/domain/model/order"
	"quickbite/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T, id kernel.OrderID) *order.Order {
	t.Helper()

	li, err := order.NewLineItem("1", "Margherita Pizza", 10.00, 2)
	require.NoError(t, err)
	details, err := order.NewDeliveryDetails("Ada Lovelace", "12 Analytical Row", "5550100200")
	require.NoError(t, err)

	o, err := order.NewOrder(id, []order.LineItem{li}, details, time.Now())
	require.NoError(t, err)
	return o
}

func TestRepositoryNextID(t *testing.T) {
	repo := orderrepo.NewRepository()

	first, err := repo.NextID()
	require.NoError(t, err)
	second, err := repo.NextID()
	require.NoError(t, err)

	assert.Equal(t, "ORD-000001", first.String())
	assert.Equal(t, "ORD-000002", second.String())
	assert.False(t, first.IsEqual(second))
}

func TestRepositoryAddAndGet(t *testing.T) {
	ctx := context.Background()
	repo := orderrepo.NewRepository()

	id, err := repo.NextID()
	require.NoError(t, err)
	stored := newTestOrder(t, id)
	require.NoError(t, repo.Add(ctx, stored))

	t.Run("repeated gets return identical snapshots", func(t *testing.T) {
		first, err := repo.Get(ctx, id)
		require.NoError(t, err)
		second, err := repo.Get(ctx, id)
		require.NoError(t, err)

		assert.Equal(t, first.Status(), second.Status())
		assert.Equal(t, first.UpdatedAt(), second.UpdatedAt())
		assert.InDelta(t, first.TotalAmount(), second.TotalAmount(), 1e-9)
	})

	t.Run("unknown id is an object not found error", func(t *testing.T) {
		missing, err := kernel.OrderIDFromString("ORD-999999")
		require.NoError(t, err)
		_, err = repo.Get(ctx, missing)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("snapshots are isolated from the stored order", func(t *testing.T) {
		snapshot, err := repo.Get(ctx, id)
		require.NoError(t, err)
		require.NoError(t, snapshot.ChangeStatus(order.Delivered, time.Now()))

		fresh, err := repo.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, order.Received, fresh.Status(), "mutating a snapshot must not change the store")
	})
}

func TestRepositoryUpdate(t *testing.T) {
	ctx := context.Background()
	repo := orderrepo.NewRepository()

	id, err := repo.NextID()
	require.NoError(t, err)
	stored := newTestOrder(t, id)
	require.NoError(t, repo.Add(ctx, stored))

	t.Run("persists changes", func(t *testing.T) {
		require.NoError(t, stored.ChangeStatus(order.Preparing, time.Now()))
		require.NoError(t, repo.Update(ctx, stored))

		fresh, err := repo.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, order.Preparing, fresh.Status())
	})

	t.Run("unknown order cannot be updated", func(t *testing.T) {
		otherID, err := kernel.NewOrderID(999)
		require.NoError(t, err)
		unknown := newTestOrder(t, otherID)
		require.ErrorIs(t, repo.Update(ctx, unknown), errs.ErrObjectNotFound)
	})
}

func TestRepositoryGetAll(t *testing.T) {
	ctx := context.Background()
	repo := orderrepo.NewRepository()

	var ids []string
	for i := 0; i < 3; i++ {
		id, err := repo.NextID()
		require.NoError(t, err)
		require.NoError(t, repo.Add(ctx, newTestOrder(t, id)))
		ids = append(ids, id.String())
	}

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, o := range all {
		assert.Equal(t, ids[i], o.ID().String(), "orders must come back in insertion order")
	}
}
