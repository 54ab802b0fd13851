package shipment_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func mustAddress(t *testing.T, city string) kernel.Address {
	t.Helper()
	a, err := kernel.NewAddress(kernel.AddressFields{Line1: "1 Main St", City: city, Country: "IN"})
	require.NoError(t, err)
	return a
}

func validDetails(t *testing.T) shipment.Details {
	return shipment.Details{
		Type:        shipment.TypeOutbound,
		Priority:    shipment.PriorityNormal,
		Mode:        shipment.ModeRoad,
		Origin:      mustAddress(t, "Pune"),
		Destination: mustAddress(t, "Mumbai"),
		Packages: shipment.Packages{
			Count:       3,
			TotalWeight: decimal.NewFromInt(120),
		},
	}
}

func newShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	item, err := shipment.NewItem(kernel.NewUUID(), validItemFields())
	require.NoError(t, err)

	s, err := shipment.NewShipment(kernel.NewUUID(), "SHP-0001", validDetails(t), []*shipment.Item{item}, now)
	require.NoError(t, err)
	return s
}

func restoreWithStatus(t *testing.T, status shipment.Status) *shipment.Shipment {
	t.Helper()
	s, err := shipment.RestoreShipment(kernel.NewUUID(), "SHP-0002", status, validDetails(t), shipment.Progress{}, nil, 3)
	require.NoError(t, err)
	return s
}

func TestNewShipment(t *testing.T) {
	t.Run("should start in Draft", func(t *testing.T) {
		s := newShipment(t)

		require.NoError(t, s.Validate())
		assert.Equal(t, shipment.Draft, s.Status())
		assert.Equal(t, "SHP-0001", s.Number())
		assert.Len(t, s.Items(), 1)
		assert.Equal(t, int64(0), s.Version())
	})

	t.Run("should record created event", func(t *testing.T) {
		s := newShipment(t)

		events := s.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, shipment.EventCreated, events[0].Name)
		assert.Equal(t, s.ID().String(), events[0].AggregateID)
	})

	t.Run("should require number", func(t *testing.T) {
		s, err := shipment.NewShipment(kernel.NewUUID(), " ", validDetails(t), nil, now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, s)
	})

	t.Run("should reject invalid type and missing destination together", func(t *testing.T) {
		d := validDetails(t)
		d.Type = "Teleport"
		d.Destination = kernel.Address{}

		_, err := shipment.NewShipment(kernel.NewUUID(), "SHP-1", d, nil, now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Teleport")
		assert.ErrorIs(t, err, kernel.ErrAddressIsNotConstructed)
	})

	t.Run("should reject duplicate line numbers", func(t *testing.T) {
		a, _ := shipment.NewItem(kernel.NewUUID(), validItemFields())
		b, _ := shipment.NewItem(kernel.NewUUID(), validItemFields())

		_, err := shipment.NewShipment(kernel.NewUUID(), "SHP-1", validDetails(t), []*shipment.Item{a, b}, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative weight", func(t *testing.T) {
		d := validDetails(t)
		d.Packages.TotalWeight = decimal.NewFromInt(-1)

		_, err := shipment.NewShipment(kernel.NewUUID(), "SHP-1", d, nil, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreShipment(t *testing.T) {
	s := restoreWithStatus(t, shipment.InTransit)

	assert.Equal(t, shipment.InTransit, s.Status())
	assert.Equal(t, int64(3), s.Version())
	assert.Empty(t, s.DomainEvents())

	_, err := shipment.RestoreShipment(kernel.NewUUID(), "X", shipment.Unknown, validDetails(t), shipment.Progress{}, nil, 1)
	require.Error(t, err)
}

func TestShipment_Dispatch(t *testing.T) {
	t.Run("should dispatch confirmed shipment", func(t *testing.T) {
		s := newShipment(t)
		require.NoError(t, s.Confirm(now))

		err := s.Dispatch(now)

		require.NoError(t, err)
		assert.Equal(t, shipment.Dispatched, s.Status())
		require.NotNil(t, s.Progress().DispatchedAt)
		assert.Equal(t, now, *s.Progress().DispatchedAt)
	})

	t.Run("should keep status when dispatching draft", func(t *testing.T) {
		s := newShipment(t)

		err := s.Dispatch(now)

		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Equal(t, shipment.Draft, s.Status())
		assert.Nil(t, s.Progress().DispatchedAt)
	})

	for _, st := range []shipment.Status{shipment.Dispatched, shipment.InTransit, shipment.Delivered, shipment.Cancelled} {
		t.Run("should refuse "+st.String(), func(t *testing.T) {
			s := restoreWithStatus(t, st)

			require.Error(t, s.Dispatch(now))
			assert.Equal(t, st, s.Status())
		})
	}
}

func TestShipment_ForcedTransitions(t *testing.T) {
	s := restoreWithStatus(t, shipment.Draft)

	s.MarkInTransit(now)
	assert.Equal(t, shipment.InTransit, s.Status())

	s.MarkOutForDelivery(now)
	assert.Equal(t, shipment.OutForDelivery, s.Status())

	s.MarkDelivered(shipment.DeliveryConfirmation{DeliveredToName: "R. Sharma", Remarks: "left at gate"}, now)
	assert.Equal(t, shipment.Delivered, s.Status())
	assert.Equal(t, "R. Sharma", s.Progress().DeliveredToName)
	assert.Equal(t, "left at gate", s.Progress().DeliveryRemarks)
	require.NotNil(t, s.Progress().ActualDeliveryAt)

	names := make([]string, 0, 3)
	for _, e := range s.DomainEvents() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{shipment.EventInTransit, shipment.EventOutForDelivery, shipment.EventDelivered}, names)
}

func TestShipment_Cancel(t *testing.T) {
	t.Run("should cancel in transit shipment", func(t *testing.T) {
		s := restoreWithStatus(t, shipment.InTransit)

		require.NoError(t, s.Cancel("customer request", now))

		assert.Equal(t, shipment.Cancelled, s.Status())
		assert.Equal(t, "customer request", s.Progress().CancellationReason)
	})

	t.Run("should refuse delivered shipment", func(t *testing.T) {
		s := restoreWithStatus(t, shipment.Delivered)

		err := s.Cancel("too late", now)

		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Equal(t, shipment.Delivered, s.Status())
		assert.Empty(t, s.Progress().CancellationReason)
	})
}

func TestShipment_ValidateRemove(t *testing.T) {
	for _, st := range []shipment.Status{shipment.Dispatched, shipment.InTransit, shipment.Delivered} {
		require.Error(t, restoreWithStatus(t, st).ValidateRemove(), st.String())
	}
	for _, st := range []shipment.Status{shipment.Draft, shipment.Cancelled} {
		require.NoError(t, restoreWithStatus(t, st).ValidateRemove(), st.String())
	}
}

func TestShipment_Update(t *testing.T) {
	s := restoreWithStatus(t, shipment.Confirmed)
	d := validDetails(t)
	d.Priority = shipment.PriorityUrgent
	d.Notes = "fragile"

	require.NoError(t, s.Update(d, nil, now))

	assert.Equal(t, shipment.Confirmed, s.Status())
	assert.Equal(t, shipment.PriorityUrgent, s.Details().Priority)
	assert.Empty(t, s.Items())
}
