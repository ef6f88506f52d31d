package order_test

import (
	"testing"

	"quickbite/internal/core/domain/model/order"
	"quickbite/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeliveryDetails(t *testing.T) {
	t.Run("valid details", func(t *testing.T) {
		d, err := order.NewDeliveryDetails("Ada Lovelace", "12 Analytical Row", "5550100200")
		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, "Ada Lovelace", d.Name())
		assert.Equal(t, "12 Analytical Row", d.Address())
		assert.Equal(t, "5550100200", d.Phone())
	})

	t.Run("trims whitespace before validating", func(t *testing.T) {
		d, err := order.NewDeliveryDetails("  Ada  ", " 12 Analytical Row ", " 5550100200 ")
		require.NoError(t, err)
		assert.Equal(t, "Ada", d.Name())
		assert.Equal(t, "12 Analytical Row", d.Address())
	})

	t.Run("missing fields are required errors", func(t *testing.T) {
		cases := []struct{ name, address, phone string }{
			{"", "12 Analytical Row", "5550100200"},
			{"Ada", "", "5550100200"},
			{"Ada", "12 Analytical Row", ""},
			{"   ", "12 Analytical Row", "5550100200"},
		}
		for _, tc := range cases {
			_, err := order.NewDeliveryDetails(tc.name, tc.address, tc.phone)
			require.ErrorIs(t, err, errs.ErrValueIsRequired)
		}
	})

	t.Run("malformed fields are invalid errors", func(t *testing.T) {
		cases := []struct{ name, address, phone string }{
			{"A", "12 Analytical Row", "5550100200"},      // name too short
			{"Ada", "12th", "5550100200"},                 // address too short
			{"Ada", "12 Analytical Row", "555-010-0200"},  // separators
			{"Ada", "12 Analytical Row", "55501002"},      // too short
			{"Ada", "12 Analytical Row", "55501002001"},   // too long
			{"Ada", "12 Analytical Row", "55501002ab"},    // non-digits
		}
		for _, tc := range cases {
			_, err := order.NewDeliveryDetails(tc.name, tc.address, tc.phone)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var d order.DeliveryDetails
		require.Error(t, d.Validate())
	})
}
