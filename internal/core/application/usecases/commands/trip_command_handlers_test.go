package commands_test

import (
	"math"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/core/domain/model/trip"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/clockz"
)

func tripPlan() trip.Plan {
	return trip.Plan{VehicleID: kernel.NewUUID(), DriverID: kernel.NewUUID()}
}

func newTrip(t *testing.T, now time.Time) *trip.Trip {
	t.Helper()
	tr, err := trip.NewTrip(kernel.NewUUID(), "TRP-0001", tripPlan(), now)
	require.NoError(t, err)
	tr.ClearDomainEvents()
	return tr
}

// expectTripChange wires Get and Update on the trip and returns the tracking repository
// the correlated event is written to.
func expectTripChange(t *testing.T, uow *MockUoW, tr *trip.Trip) (*MockTripRepository, *MockTrackingEventRepository) {
	t.Helper()
	ctx := t.Context()
	trips := new(MockTripRepository)
	events := new(MockTrackingEventRepository)
	expectCommit(ctx, uow)
	uow.On("TripRepository").Return(trips).Once()
	uow.On("TrackingEventRepository").Return(events).Maybe()
	trips.On("Get", ctx, tr.ID()).Return(tr, nil).Once()
	trips.On("Update", ctx, tr).Return(nil).Once()
	return trips, events
}

func TestCreateTripCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateTripCommand(kernel.NewUUID(), " TRP-0001 ", tripPlan())
	require.NoError(t, err)
	assert.Equal(t, "TRP-0001", cmd.Number())

	trips := new(MockTripRepository)
	uow := new(MockUoW)
	expectCommit(ctx, uow)
	uow.On("TripRepository").Return(trips).Once()
	trips.On("ExistsByNumber", ctx, "TRP-0001").Return(false, nil).Once()
	trips.On("Add", ctx, mock.MatchedBy(func(tr *trip.Trip) bool {
		return tr.Status() == trip.Planned
	})).Return(nil).Once()

	h := commands.NewCreateTripCommandHandler(tripUoWFactory{uow}, clockz.NewFakeClock())
	require.NoError(t, h.Handle(ctx, cmd))
	trips.AssertExpectations(t)
}

func TestCreateTripCommandHandler_Handle_MissingDriver(t *testing.T) {
	cmd, err := commands.NewCreateTripCommand(kernel.NewUUID(), "TRP-0001", trip.Plan{VehicleID: kernel.NewUUID()})
	require.NoError(t, err)

	h := commands.NewCreateTripCommandHandler(tripUoWFactory{new(MockUoW)}, clockz.NewFakeClock())
	require.ErrorIs(t, h.Handle(t.Context(), cmd), trip.ErrDriverIsRequired)
}

func TestNewCreateTripCommand_NumberIsRequired(t *testing.T) {
	_, err := commands.NewCreateTripCommand(kernel.NewUUID(), "", tripPlan())
	require.ErrorIs(t, err, commands.ErrTripNumberIsRequired)
}

func TestStartTripCommandHandler_Handle_WritesTripStartedEvent(t *testing.T) {
	ctx := t.Context()
	clock := clockz.NewFakeClock()
	tr := newTrip(t, clock.Now())
	require.NoError(t, tr.Schedule(clock.Now()))

	uow := new(MockUoW)
	_, events := expectTripChange(t, uow, tr)
	events.On("Add", ctx, mock.MatchedBy(func(e *tracking.Event) bool {
		d := e.Details()
		return d.Type == tracking.TypeTripStarted && d.ShipmentID == nil &&
			d.TripID != nil && *d.TripID == tr.ID() && d.LocationName == kernel.UnknownLocation
	})).Return(nil).Once()

	cmd, err := commands.NewStartTripCommand(tr.ID())
	require.NoError(t, err)

	h := commands.NewStartTripCommandHandler(tripUoWFactory{uow}, clock)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, trip.InProgress, tr.Status())
	require.NotNil(t, tr.Progress().ActualStartAt)
	events.AssertExpectations(t)
}

func TestStartTripCommandHandler_Handle_PlannedIsRefused(t *testing.T) {
	ctx := t.Context()
	clock := clockz.NewFakeClock()
	tr := newTrip(t, clock.Now())

	trips := new(MockTripRepository)
	uow := new(MockUoW)
	expectRollback(ctx, uow)
	uow.On("TripRepository").Return(trips).Once()
	trips.On("Get", ctx, tr.ID()).Return(tr, nil).Once()

	cmd, err := commands.NewStartTripCommand(tr.ID())
	require.NoError(t, err)

	h := commands.NewStartTripCommandHandler(tripUoWFactory{uow}, clock)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrInvalidStateTransition)
	uow.AssertNotCalled(t, "TrackingEventRepository")
}

func TestCompleteTripCommandHandler_Handle_ComputesDuration(t *testing.T) {
	ctx := t.Context()
	clock := clockz.NewFakeClock()
	tr := newTrip(t, clock.Now())
	require.NoError(t, tr.Schedule(clock.Now()))
	require.NoError(t, tr.Start(clock.Now()))
	clock.Advance(125 * time.Second)

	uow := new(MockUoW)
	_, events := expectTripChange(t, uow, tr)
	events.On("Add", ctx, mock.MatchedBy(func(e *tracking.Event) bool {
		return e.Details().Type == tracking.TypeTripCompleted
	})).Return(nil).Once()

	cmd, err := commands.NewCompleteTripCommand(tr.ID())
	require.NoError(t, err)

	h := commands.NewCompleteTripCommandHandler(tripUoWFactory{uow}, clock)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, trip.Completed, tr.Status())
	require.NotNil(t, tr.Progress().ActualDurationMinutes)
	assert.Equal(t, 2, *tr.Progress().ActualDurationMinutes)
	assert.True(t, tr.Progress().IsDeliveryConfirmed)
}

func TestCancelTripCommandHandler_Handle_FromAnyStatus(t *testing.T) {
	ctx := t.Context()
	clock := clockz.NewFakeClock()
	tr := newTrip(t, clock.Now())

	uow := new(MockUoW)
	_, events := expectTripChange(t, uow, tr)
	events.On("Add", ctx, mock.MatchedBy(func(e *tracking.Event) bool {
		d := e.Details()
		return d.Type == tracking.TypeCancelled && d.Severity == tracking.SeverityWarning
	})).Return(nil).Once()

	cmd, err := commands.NewCancelTripCommand(tr.ID(), "vehicle breakdown")
	require.NoError(t, err)

	h := commands.NewCancelTripCommandHandler(tripUoWFactory{uow}, clock)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, trip.Cancelled, tr.Status())
	assert.Equal(t, "vehicle breakdown", tr.Progress().CancellationReason)
}

func TestUpdateTripLocationCommandHandler_Handle_EventCarriesCoordinates(t *testing.T) {
	ctx := t.Context()
	clock := clockz.NewFakeClock()
	tr := newTrip(t, clock.Now())

	uow := new(MockUoW)
	_, events := expectTripChange(t, uow, tr)

	var recorded *tracking.Event
	events.On("Add", ctx, mock.AnythingOfType("*tracking.Event")).
		Run(func(args mock.Arguments) { recorded = args.Get(1).(*tracking.Event) }).
		Return(nil).Once()

	cmd, err := commands.NewUpdateTripLocationCommand(tr.ID(), 19.07, 72.87)
	require.NoError(t, err)

	h := commands.NewUpdateTripLocationCommandHandler(tripUoWFactory{uow}, clock)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, "19.07, 72.87", tr.CurrentLocationText())
	require.NotNil(t, recorded)
	d := recorded.Details()
	assert.Equal(t, tracking.TypeLocationUpdate, d.Type)
	assert.Equal(t, "19.07, 72.87", d.LocationName)
	require.NotNil(t, d.Location)
	assert.InDelta(t, 72.87, d.Location.Longitude(), 1e-9)
}

func TestNewUpdateTripLocationCommand_AcceptsAnyFiniteCoordinates(t *testing.T) {
	cmd, err := commands.NewUpdateTripLocationCommand(kernel.NewUUID(), 95, 200)

	require.NoError(t, err)
	assert.InDelta(t, 95, cmd.Location().Latitude(), 0)
	assert.InDelta(t, 200, cmd.Location().Longitude(), 0)
}

func TestNewUpdateTripLocationCommand_RejectsNaN(t *testing.T) {
	_, err := commands.NewUpdateTripLocationCommand(kernel.NewUUID(), math.NaN(), 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestScheduleTripCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()

	trips := new(MockTripRepository)
	uow := new(MockUoW)
	expectRollback(ctx, uow)
	uow.On("TripRepository").Return(trips).Once()
	trips.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("tripId", id)).Once()

	cmd, err := commands.NewScheduleTripCommand(id)
	require.NoError(t, err)

	h := commands.NewScheduleTripCommandHandler(tripUoWFactory{uow}, clockz.NewFakeClock())
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
}
