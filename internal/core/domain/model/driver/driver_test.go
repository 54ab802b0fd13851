package driver_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDriver(t *testing.T) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(kernel.NewUUID(), "DRV-001", driver.Profile{Name: "Anil Kumar", LicenseNumber: "MH12-2020-001"}, time.Now())
	require.NoError(t, err)
	return d
}

func TestNewDriver(t *testing.T) {
	t.Run("should be active and available", func(t *testing.T) {
		d := newDriver(t)

		require.NoError(t, d.Validate())
		assert.Equal(t, driver.Active, d.Status())
		assert.True(t, d.Availability().IsAvailable)
		assert.Nil(t, d.Availability().CurrentTripID)
		assert.Zero(t, d.Stats().TotalTrips)
	})

	t.Run("should require name and license", func(t *testing.T) {
		d, err := driver.NewDriver(kernel.NewUUID(), "DRV-1", driver.Profile{}, time.Now())

		require.Error(t, err)
		assert.Nil(t, d)
		assert.ErrorIs(t, err, driver.ErrNameIsRequired)
		assert.ErrorIs(t, err, driver.ErrLicenseIsRequired)
	})
}

func TestRestoreDriver(t *testing.T) {
	tripID := kernel.NewUUID()

	t.Run("should reject available driver holding a trip", func(t *testing.T) {
		_, err := driver.RestoreDriver(kernel.NewUUID(), "DRV-1", driver.Profile{Name: "A", LicenseNumber: "L"},
			driver.Active, driver.Availability{IsAvailable: true, CurrentTripID: &tripID}, driver.Stats{}, 1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject available driver on trip", func(t *testing.T) {
		_, err := driver.RestoreDriver(kernel.NewUUID(), "DRV-1", driver.Profile{Name: "A", LicenseNumber: "L"},
			driver.OnTrip, driver.Availability{IsAvailable: true}, driver.Stats{}, 1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDriver_MarkOnTrip(t *testing.T) {
	t.Run("should lock the driver", func(t *testing.T) {
		d := newDriver(t)
		tripID := kernel.NewUUID()

		require.NoError(t, d.MarkOnTrip(tripID, time.Now()))

		assert.Equal(t, driver.OnTrip, d.Status())
		assert.False(t, d.Availability().IsAvailable)
		require.NotNil(t, d.Availability().CurrentTripID)
		assert.True(t, d.Availability().CurrentTripID.IsEqual(tripID))
		assert.Equal(t, 1, d.Stats().TotalTrips)
	})

	t.Run("calling twice counts the trip twice", func(t *testing.T) {
		d := newDriver(t)
		tripID := kernel.NewUUID()

		require.NoError(t, d.MarkOnTrip(tripID, time.Now()))
		require.NoError(t, d.MarkOnTrip(tripID, time.Now()))

		assert.Equal(t, 2, d.Stats().TotalTrips)
	})

	t.Run("should reject zero trip id", func(t *testing.T) {
		d := newDriver(t)

		require.Error(t, d.MarkOnTrip(kernel.UUID{}, time.Now()))
		assert.Equal(t, driver.Active, d.Status())
	})
}

func TestDriver_MarkAvailable(t *testing.T) {
	d := newDriver(t)
	require.NoError(t, d.MarkOnTrip(kernel.NewUUID(), time.Now()))
	d.ClearDomainEvents()

	d.MarkAvailable(time.Now())
	once := d.Availability()
	onceStatus := d.Status()

	d.MarkAvailable(time.Now())

	assert.Equal(t, driver.Active, d.Status())
	assert.Equal(t, onceStatus, d.Status())
	assert.Equal(t, once, d.Availability())
	assert.True(t, d.Availability().IsAvailable)
	assert.Nil(t, d.Availability().CurrentTripID)
	assert.Len(t, d.DomainEvents(), 1)
}
