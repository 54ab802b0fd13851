package kernel_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("keeps all fields", func(t *testing.T) {
		fields := kernel.AddressFields{
			Line1:      "12 Dock Road",
			City:       " Rotterdam ",
			PostalCode: "3011",
			Country:    "NL",
		}

		a, err := kernel.NewAddress(fields)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, "Rotterdam", a.City())
		assert.Equal(t, "NL", a.Country())
		assert.Equal(t, "12 Dock Road", a.Fields().Line1)
	})

	t.Run("city is required", func(t *testing.T) {
		_, err := kernel.NewAddress(kernel.AddressFields{Line1: "somewhere", City: "   "})

		require.ErrorIs(t, err, kernel.ErrCityIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var a kernel.Address

		require.ErrorIs(t, a.Validate(), kernel.ErrAddressIsNotConstructed)
	})
}
