package route_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoute(t *testing.T) {
	r, err := route.NewRoute(kernel.NewUUID(), "RT-PUN-MUM", route.Definition{
		Name:          "Pune to Mumbai",
		Origin:        "Pune",
		Destination:   "Mumbai",
		TotalDistance: decimal.NewFromInt(150),
	}, time.Now())

	require.NoError(t, err)
	assert.Zero(t, r.Statistics().TotalTripsCompleted)
	assert.Len(t, r.DomainEvents(), 1)

	_, err = route.NewRoute(kernel.NewUUID(), "RT-1", route.Definition{Name: "x", EstimatedDurationMinutes: -5}, time.Now())
	require.Error(t, err)
}

func TestRoute_ApplyStatistics(t *testing.T) {
	r, err := route.RestoreRoute(kernel.NewUUID(), "RT-1", route.Definition{Name: "x"},
		route.Statistics{TotalTripsCompleted: 2, AverageActualDuration: decimal.NewFromInt(90)}, 3)
	require.NoError(t, err)

	changed, err := r.ApplyStatistics(route.Statistics{TotalTripsCompleted: 2, AverageActualDuration: decimal.RequireFromString("90.00")}, time.Now())
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Empty(t, r.DomainEvents())

	changed, err = r.ApplyStatistics(route.Statistics{TotalTripsCompleted: 3, AverageActualDuration: decimal.NewFromInt(80)}, time.Now())
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 3, r.Statistics().TotalTripsCompleted)
}
