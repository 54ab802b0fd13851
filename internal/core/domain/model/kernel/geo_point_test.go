package kernel_test

import (
	"math"
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("valid coordinates", func(t *testing.T) {
		p, err := kernel.NewGeoPoint(52.52, 13.405)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.InDelta(t, 52.52, p.Latitude(), 0)
		assert.InDelta(t, 13.405, p.Longitude(), 0)
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(-90, 180)
		require.NoError(t, err)

		_, err = kernel.NewGeoPoint(90, -180)
		require.NoError(t, err)
	})

	testCases := []struct {
		name      string
		lat, lon  float64
		errSubstr string
	}{
		{"latitude too high", 90.01, 0, "is latitude"},
		{"latitude too low", -91, 0, "is latitude"},
		{"longitude too high", 0, 180.5, "is longitude"},
		{"longitude too low", 0, -181, "is longitude"},
		{"NaN latitude", math.NaN(), 0, "is latitude"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := kernel.NewGeoPoint(tc.lat, tc.lon)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			assert.Contains(t, err.Error(), tc.errSubstr)
		})
	}
}

func TestNewReportedGeoPoint(t *testing.T) {
	t.Run("keeps coordinates outside WGS84 ranges", func(t *testing.T) {
		p, err := kernel.NewReportedGeoPoint(95, 200)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.InDelta(t, 95, p.Latitude(), 0)
		assert.InDelta(t, 200, p.Longitude(), 0)
		assert.Equal(t, "95, 200", p.String())
	})

	testCases := []struct {
		name     string
		lat, lon float64
	}{
		{"NaN latitude", math.NaN(), 0},
		{"infinite longitude", 0, math.Inf(-1)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := kernel.NewReportedGeoPoint(tc.lat, tc.lon)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}

func TestGeoPoint_String(t *testing.T) {
	p, _ := kernel.NewGeoPoint(12.9716, 77.5946)

	assert.Equal(t, "12.9716, 77.5946", p.String())
}

func TestGeoPoint_ZeroValue(t *testing.T) {
	var p kernel.GeoPoint

	require.ErrorIs(t, p.Validate(), kernel.ErrGeoPointIsNotConstructed)
}

func TestGeoPoint_IsEqual(t *testing.T) {
	a, _ := kernel.NewGeoPoint(1, 2)
	b, _ := kernel.NewGeoPoint(1, 2)
	c, _ := kernel.NewGeoPoint(2, 1)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
