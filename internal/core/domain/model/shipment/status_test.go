package shipment_test

import (
	"testing"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []shipment.Status {
	return []shipment.Status{
		shipment.Draft,
		shipment.Confirmed,
		shipment.Dispatched,
		shipment.InTransit,
		shipment.OutForDelivery,
		shipment.Delivered,
		shipment.PartiallyDelivered,
		shipment.Failed,
		shipment.Cancelled,
		shipment.Returned,
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range allStatuses() {
		t.Run(s.String(), func(t *testing.T) {
			parsed, err := shipment.ParseStatus(s.String())

			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		})
	}

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := shipment.ParseStatus("Lost")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should not parse Unknown", func(t *testing.T) {
		_, err := shipment.ParseStatus("Unknown")

		require.Error(t, err)
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range allStatuses() {
		require.NoError(t, s.Validate(), s.String())
	}
	require.Error(t, shipment.Unknown.Validate())
	require.Error(t, shipment.Status(99).Validate())
}

func TestStatus_Dispatch(t *testing.T) {
	for _, s := range allStatuses() {
		t.Run(s.String(), func(t *testing.T) {
			next, err := s.Dispatch()

			if s == shipment.Confirmed {
				require.NoError(t, err)
				assert.Equal(t, shipment.Dispatched, next)
				return
			}
			require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
			assert.Contains(t, err.Error(), "cannot dispatch shipment in "+s.String()+" status")
		})
	}
}

func TestStatus_Confirm(t *testing.T) {
	next, err := shipment.Draft.Confirm()
	require.NoError(t, err)
	assert.Equal(t, shipment.Confirmed, next)

	_, err = shipment.Confirmed.Confirm()
	require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
}

func TestStatus_Cancel(t *testing.T) {
	for _, s := range allStatuses() {
		t.Run(s.String(), func(t *testing.T) {
			next, err := s.Cancel()

			if s == shipment.Delivered {
				require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, shipment.Cancelled, next)
		})
	}
}

func TestStatus_ValidateRemove(t *testing.T) {
	allowed := map[shipment.Status]bool{shipment.Draft: true, shipment.Cancelled: true}

	for _, s := range allStatuses() {
		err := s.ValidateRemove()
		if allowed[s] {
			assert.NoError(t, err, s.String())
		} else {
			assert.ErrorIs(t, err, errs.ErrInvalidStateTransition, s.String())
		}
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, shipment.Delivered.IsTerminal())
	assert.True(t, shipment.Cancelled.IsTerminal())
	assert.False(t, shipment.InTransit.IsTerminal())
}
