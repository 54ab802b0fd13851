package tracking_test

import (
	"strings"
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNumber(t *testing.T) {
	id := kernel.NewUUID()
	now := time.UnixMilli(1741944600000)

	n := tracking.GenerateNumber(id, now)

	assert.True(t, strings.HasPrefix(n, "EVT-1741944600000-"))
	assert.Len(t, n, len("EVT-1741944600000-")+8)
}

func TestNewEvent(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	shipmentID := kernel.NewUUID()

	t.Run("should default timestamp and severity", func(t *testing.T) {
		e, err := tracking.NewEvent(kernel.NewUUID(), "EVT-1", tracking.Details{
			Type:         tracking.TypePickedUp,
			ShipmentID:   &shipmentID,
			LocationName: "Pune depot",
		}, now)

		require.NoError(t, err)
		assert.Equal(t, now, e.Details().Timestamp)
		assert.Equal(t, tracking.SeverityInfo, e.Details().Severity)
		assert.False(t, e.Resolution().IsResolved)
		require.Len(t, e.DomainEvents(), 1)
		assert.Equal(t, shipmentID.String(), e.DomainEvents()[0].Payload["shipmentId"])
	})

	t.Run("should reject unknown type", func(t *testing.T) {
		_, err := tracking.NewEvent(kernel.NewUUID(), "EVT-1", tracking.Details{Type: "Teleported"}, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should accept event without parents", func(t *testing.T) {
		_, err := tracking.NewEvent(kernel.NewUUID(), "EVT-1", tracking.Details{Type: tracking.TypeException, Severity: tracking.SeverityCritical}, now)

		require.NoError(t, err)
	})
}

func TestEvent_UpdateAndResolve(t *testing.T) {
	created := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	e, err := tracking.NewEvent(kernel.NewUUID(), "EVT-1", tracking.Details{Type: tracking.TypeDelayed, Severity: tracking.SeverityWarning}, created)
	require.NoError(t, err)

	resolvedAt := created.Add(time.Hour)
	e.Resolve("traffic cleared", resolvedAt)

	require.NoError(t, e.Update(tracking.Details{Type: tracking.TypeDelayed, Description: "NH48 closure"}, resolvedAt.Add(time.Hour)))

	assert.Equal(t, created, e.Details().Timestamp)
	assert.Equal(t, tracking.SeverityWarning, e.Details().Severity)
	assert.Equal(t, "NH48 closure", e.Details().Description)
	assert.True(t, e.Resolution().IsResolved)
	assert.Equal(t, "traffic cleared", e.Resolution().Notes)
	assert.Equal(t, resolvedAt, *e.Resolution().ResolvedAt)
}
