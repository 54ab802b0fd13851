package trackingrepo_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/pgtest"
	"logistics/internal/adapters/out/postgres/pgutil"
	"logistics/internal/adapters/out/postgres/trackingrepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tracking"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

var base = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

type TrackingEventRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *trackingrepo.GormTrackingEventRepository
}

func (suite *TrackingEventRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background(), &trackingrepo.TrackingEventDTO{})
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *TrackingEventRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate("tracking_events"))
	suite.repository = trackingrepo.NewGormTrackingEventRepository(suite.pg.DB, pgutil.NopTracker{})
}

func (suite *TrackingEventRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Stop(context.Background()))
}

func (suite *TrackingEventRepositoryIntegrationTestSuite) TestGetByShipment_OldestFirst() {
	ctx := context.Background()
	shipmentID := kernel.NewUUID()

	// inserted out of order on purpose
	for _, offset := range []time.Duration{2 * time.Hour, 0, time.Hour} {
		suite.addEvent(&shipmentID, nil, base.Add(offset), tracking.TypeInTransit)
	}
	suite.addEvent(ptr(kernel.NewUUID()), nil, base, tracking.TypeDispatched)

	events, err := suite.repository.GetByShipment(ctx, shipmentID)
	suite.Require().NoError(err)
	suite.Require().Len(events, 3)
	suite.True(events[0].Details().Timestamp.Equal(base))
	suite.True(events[1].Details().Timestamp.Equal(base.Add(time.Hour)))
	suite.True(events[2].Details().Timestamp.Equal(base.Add(2 * time.Hour)))
}

func (suite *TrackingEventRepositoryIntegrationTestSuite) TestGetByTrip_ReturnsOnlyTripEvents() {
	ctx := context.Background()
	tripID := kernel.NewUUID()

	suite.addEvent(nil, &tripID, base, tracking.TypeTripStarted)
	suite.addEvent(nil, nil, base, tracking.TypeException)

	events, err := suite.repository.GetByTrip(ctx, tripID)
	suite.Require().NoError(err)
	suite.Require().Len(events, 1)
	suite.Equal(tracking.TypeTripStarted, events[0].Details().Type)
}

func (suite *TrackingEventRepositoryIntegrationTestSuite) TestResolveAndDelete() {
	ctx := context.Background()
	e := suite.addEvent(nil, nil, base, tracking.TypeException)

	e.Resolve("re-routed via hub", base.Add(time.Hour))
	suite.Require().NoError(suite.repository.Update(ctx, e))

	loaded, err := suite.repository.Get(ctx, e.ID())
	suite.Require().NoError(err)
	suite.True(loaded.Resolution().IsResolved)
	suite.Equal("re-routed via hub", loaded.Resolution().Notes)
	suite.Require().NotNil(loaded.Details().Location)
	suite.InDelta(18.52, loaded.Details().Location.Latitude(), 1e-9)

	suite.Require().NoError(suite.repository.Delete(ctx, loaded))
	_, err = suite.repository.Get(ctx, e.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *TrackingEventRepositoryIntegrationTestSuite) TestAdd_DuplicateNumber_ReturnsAlreadyExists() {
	ctx := context.Background()
	e := suite.addEvent(nil, nil, base, tracking.TypeCreated)

	dup, err := tracking.NewEvent(kernel.NewUUID(), e.Number(), tracking.Details{Type: tracking.TypeCreated}, base)
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, dup)
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *TrackingEventRepositoryIntegrationTestSuite) addEvent(
	shipmentID, tripID *kernel.UUID,
	at time.Time,
	eventType tracking.EventType,
) *tracking.Event {
	point, err := kernel.NewGeoPoint(18.52, 73.85)
	suite.Require().NoError(err)

	id := kernel.NewUUID()
	e, err := tracking.NewEvent(id, tracking.GenerateNumber(id, at), tracking.Details{
		Type:         eventType,
		ShipmentID:   shipmentID,
		TripID:       tripID,
		Timestamp:    at,
		LocationName: "Pune",
		Location:     &point,
	}, at)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), e))
	return e
}

func ptr[T any](v T) *T {
	return &v
}

func TestTrackingEventRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TrackingEventRepositoryIntegrationTestSuite))
}
