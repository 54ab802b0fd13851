package services_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/trip"
	"logistics/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedTrip(t *testing.T, minutes *int) *trip.Trip {
	t.Helper()
	tr, err := trip.RestoreTrip(kernel.NewUUID(), "TRP-"+kernel.NewUUID().String(), trip.Completed,
		trip.Plan{VehicleID: kernel.NewUUID(), DriverID: kernel.NewUUID()},
		trip.Progress{ActualDurationMinutes: minutes, IsDeliveryConfirmed: true}, 2)
	require.NoError(t, err)
	return tr
}

func TestRouteStatistician_Compute(t *testing.T) {
	ninety, sixty := 90, 61

	stats := services.NewRouteStatistician().Compute([]*trip.Trip{
		completedTrip(t, &ninety),
		completedTrip(t, &sixty),
		completedTrip(t, nil),
	})

	assert.Equal(t, 3, stats.TotalTripsCompleted)
	assert.True(t, stats.AverageActualDuration.Equal(decimal.RequireFromString("75.5")), stats.AverageActualDuration.String())
}

func TestRouteStatistician_ComputeEmpty(t *testing.T) {
	stats := services.NewRouteStatistician().Compute(nil)

	assert.Zero(t, stats.TotalTripsCompleted)
	assert.True(t, stats.AverageActualDuration.IsZero())
}
