package commands_test

import (
	"errors"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/trip"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/clockz"
)

func newRoute(t *testing.T, code string, now time.Time) *route.Route {
	t.Helper()
	r, err := route.NewRoute(kernel.NewUUID(), code, route.Definition{Name: code, Origin: "Pune", Destination: "Mumbai"}, now)
	require.NoError(t, err)
	return r
}

func completedTrip(t *testing.T, start time.Time, minutes int) *trip.Trip {
	t.Helper()
	tr := newTrip(t, start)
	require.NoError(t, tr.Schedule(start))
	require.NoError(t, tr.Start(start))
	require.NoError(t, tr.Complete(start.Add(time.Duration(minutes)*time.Minute)))
	return tr
}

func TestCreateRouteCommandHandler_Handle_DuplicateCode(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateRouteCommand(kernel.NewUUID(), "PUN-BOM", route.Definition{Name: "Pune to Mumbai"})
	require.NoError(t, err)

	routes := new(MockRouteRepository)
	uow := new(MockUoW)
	expectRollback(ctx, uow)
	uow.On("RouteRepository").Return(routes).Once()
	routes.On("ExistsByCode", ctx, "PUN-BOM").Return(true, nil).Once()

	h := commands.NewCreateRouteCommandHandler(routeUoWFactory{uow}, clockz.NewFakeClock())
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectAlreadyExists)
}

func TestNewCreateRouteCommand_CodeIsRequired(t *testing.T) {
	_, err := commands.NewCreateRouteCommand(kernel.NewUUID(), " ", route.Definition{Name: "x"})
	require.ErrorIs(t, err, commands.ErrRouteCodeIsRequired)
}

func TestRefreshRouteStatisticsCommandHandler_Handle_WritesChangedRoutesOnly(t *testing.T) {
	ctx := t.Context()
	clock := clockz.NewFakeClock()
	now := clock.Now()

	busy := newRoute(t, "PUN-BOM", now)
	idle := newRoute(t, "PUN-NSK", now)

	routes := new(MockRouteRepository)
	trips := new(MockTripRepository)
	uow := new(MockUoW)
	expectCommit(ctx, uow)
	uow.On("RouteRepository").Return(routes)
	uow.On("TripRepository").Return(trips)
	routes.On("GetAll", ctx).Return([]*route.Route{busy, idle}, nil).Once()
	trips.On("GetCompletedByRoute", ctx, busy.ID()).
		Return([]*trip.Trip{completedTrip(t, now, 100), completedTrip(t, now, 151)}, nil).Once()
	trips.On("GetCompletedByRoute", ctx, idle.ID()).Return([]*trip.Trip{}, nil).Once()
	routes.On("Update", ctx, busy).Return(nil).Once()

	h := commands.NewRefreshRouteStatisticsCommandHandler(routeUoWFactory{uow}, clock, services.NewRouteStatistician())
	refreshed, err := h.Handle(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, refreshed)
	assert.Equal(t, 2, busy.Statistics().TotalTripsCompleted)
	assert.True(t, decimal.RequireFromString("125.5").Equal(busy.Statistics().AverageActualDuration))
	routes.AssertNotCalled(t, "Update", mock.Anything, idle)
	routes.AssertExpectations(t)
}

func TestRefreshRouteStatisticsCommandHandler_Handle_TripLookupFails(t *testing.T) {
	ctx := t.Context()
	clock := clockz.NewFakeClock()
	r := newRoute(t, "PUN-BOM", clock.Now())

	routes := new(MockRouteRepository)
	trips := new(MockTripRepository)
	uow := new(MockUoW)
	expectRollback(ctx, uow)
	uow.On("RouteRepository").Return(routes)
	uow.On("TripRepository").Return(trips)
	routes.On("GetAll", ctx).Return([]*route.Route{r}, nil).Once()
	trips.On("GetCompletedByRoute", ctx, r.ID()).Return(nil, errors.New("db down")).Once()

	h := commands.NewRefreshRouteStatisticsCommandHandler(routeUoWFactory{uow}, clock, services.NewRouteStatistician())
	refreshed, err := h.Handle(ctx)
	require.EqualError(t, err, "db down")
	assert.Zero(t, refreshed)
}
