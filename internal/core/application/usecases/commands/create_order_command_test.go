package commands_test

import (
	"testing"

	"quickbite/internal/core/application/usecases/commands"
	"quickbite/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	selections := []commands.ItemSelection{{MenuItemID: "1", Quantity: 2}}

	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(selections, "Ada Lovelace", "12 Analytical Row", "5550100200")
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, selections, cmd.Items())
		assert.Equal(t, "Ada Lovelace", cmd.DeliveryDetails().Name())
	})

	t.Run("rejects empty selections", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(nil, "Ada Lovelace", "12 Analytical Row", "5550100200")
		require.ErrorIs(t, err, commands.ErrNoItemsSelected)
	})

	t.Run("rejects selection without menu item id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			[]commands.ItemSelection{{MenuItemID: "", Quantity: 1}},
			"Ada Lovelace", "12 Analytical Row", "5550100200")
		require.ErrorIs(t, err, commands.ErrMenuItemIDIsRequired)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -1} {
			_, err := commands.NewCreateOrderCommand(
				[]commands.ItemSelection{{MenuItemID: "1", Quantity: quantity}},
				"Ada Lovelace", "12 Analytical Row", "5550100200")
			require.ErrorIs(t, err, commands.ErrInvalidQuantity)
		}
	})

	t.Run("rejects bad delivery details", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(selections, "", "12 Analytical Row", "5550100200")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = commands.NewCreateOrderCommand(selections, "Ada Lovelace", "12 Analytical Row", "555")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value command is not constructed", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})

	t.Run("items are copied", func(t *testing.T) {
		input := []commands.ItemSelection{{MenuItemID: "1", Quantity: 2}}
		cmd, err := commands.NewCreateOrderCommand(input, "Ada Lovelace", "12 Analytical Row", "5550100200")
		require.NoError(t, err)

		input[0].Quantity = 99
		assert.Equal(t, 2, cmd.Items()[0].Quantity)
	})
}
