package order_test

import (
	"testing"

	"quickbite/internal/core/domain/model/order"
	"quickbite/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItem(t *testing.T) {
	t.Run("valid line item", func(t *testing.T) {
		li, err := order.NewLineItem("1", "Margherita Pizza", 10.00, 2)
		require.NoError(t, err)
		require.NoError(t, li.Validate())
		assert.Equal(t, "1", li.MenuItemID())
		assert.Equal(t, "Margherita Pizza", li.Name())
		assert.InDelta(t, 10.00, li.Price(), 1e-9)
		assert.Equal(t, 2, li.Quantity())
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		_, err := order.NewLineItem("8", "Tap Water", 0, 1)
		require.NoError(t, err)
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		_, err := order.NewLineItem("", "Margherita Pizza", 10.00, 1)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewLineItem("1", "", 10.00, 1)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewLineItem("1", "Margherita Pizza", -0.01, 1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.NewLineItem("1", "Margherita Pizza", 10.00, 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var li order.LineItem
		require.Error(t, li.Validate())
	})
}

func TestLineItemSubtotal(t *testing.T) {
	li, err := order.NewLineItem("2", "Pepperoni Pizza", 12.50, 3)
	require.NoError(t, err)
	assert.InDelta(t, 37.50, li.Subtotal(), 1e-9)
}
