package services_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func event(t *testing.T, at time.Time, location string) *tracking.Event {
	t.Helper()
	e, err := tracking.NewEvent(kernel.NewUUID(), tracking.GenerateNumber(kernel.NewUUID(), at), tracking.Details{
		Type:         tracking.TypeInTransit,
		Timestamp:    at,
		LocationName: location,
	}, at)
	require.NoError(t, err)
	return e
}

func numberedEvent(t *testing.T, number string, at time.Time, location string) *tracking.Event {
	t.Helper()
	e, err := tracking.NewEvent(kernel.NewUUID(), number, tracking.Details{
		Type:         tracking.TypeInTransit,
		Timestamp:    at,
		LocationName: location,
	}, at)
	require.NoError(t, err)
	return e
}

func TestTrackingProjector_Project(t *testing.T) {
	base := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)

	t.Run("should order newest first and take latest location", func(t *testing.T) {
		oldest := event(t, base, "Pune")
		newest := event(t, base.Add(2*time.Hour), "Lonavala")
		middle := event(t, base.Add(time.Hour), "Talegaon")

		p := services.NewTrackingProjector().Project([]*tracking.Event{oldest, newest, middle})

		assert.Equal(t, "Lonavala", p.CurrentLocation)
		require.Len(t, p.Events, 3)
		assert.Equal(t, newest.ID(), p.Events[0].ID())
		assert.Equal(t, middle.ID(), p.Events[1].ID())
		assert.Equal(t, oldest.ID(), p.Events[2].ID())
	})

	t.Run("should break timestamp ties by event number", func(t *testing.T) {
		first := numberedEvent(t, "EVT-0001", base, "Pune")
		second := numberedEvent(t, "EVT-0002", base, "Chakan")

		p := services.NewTrackingProjector().Project([]*tracking.Event{first, second})

		assert.Equal(t, "Chakan", p.CurrentLocation)
		require.Len(t, p.Events, 2)
		assert.Equal(t, second.ID(), p.Events[0].ID())
		assert.Equal(t, first.ID(), p.Events[1].ID())
	})

	t.Run("should report unknown without events", func(t *testing.T) {
		p := services.NewTrackingProjector().Project(nil)

		assert.Equal(t, "Unknown", p.CurrentLocation)
		assert.Empty(t, p.Events)
	})
}
