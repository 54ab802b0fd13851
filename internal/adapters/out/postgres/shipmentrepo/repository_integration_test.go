package shipmentrepo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/pgtest"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var now = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	tracker    *pgtest.MockTracker
	repository *shipmentrepo.GormShipmentRepository
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background(), &shipmentrepo.ShipmentDTO{}, &shipmentrepo.ShipmentItemDTO{})
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate("shipment_items", "shipments"))

	suite.tracker = new(pgtest.MockTracker)
	suite.repository = shipmentrepo.NewGormShipmentRepository(suite.pg.DB, suite.tracker)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Stop(context.Background()))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_PersistsShipmentWithItems() {
	ctx := context.Background()
	s := suite.newShipment("SHP-1001")

	suite.tracker.On("Track", s).Once()
	suite.Require().NoError(suite.repository.Add(ctx, s))

	loaded, err := suite.repository.Get(ctx, s.ID())
	suite.Require().NoError(err)

	suite.Equal(s.Number(), loaded.Number())
	suite.Equal(shipment.Draft, loaded.Status())
	suite.Equal("Pune", loaded.Details().Origin.City())
	suite.Equal("Mumbai", loaded.Details().Destination.City())
	suite.True(s.Details().Packages.TotalWeight.Equal(loaded.Details().Packages.TotalWeight))
	suite.Require().Len(loaded.Items(), 2)
	suite.Equal(1, loaded.Items()[0].Fields().LineNumber)
	suite.Equal(2, loaded.Items()[1].Fields().LineNumber)
	suite.Empty(loaded.DomainEvents())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_DuplicateNumber_ReturnsAlreadyExists() {
	ctx := context.Background()
	suite.tracker.On("Track", mock.Anything).Once()

	suite.Require().NoError(suite.repository.Add(ctx, suite.newShipment("SHP-1002")))

	err := suite.repository.Add(ctx, suite.newShipment("SHP-1002"))
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)

	exists, err := suite.repository.ExistsByNumber(ctx, "SHP-1002")
	suite.Require().NoError(err)
	suite.True(exists)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_BumpsVersionAndReplacesItems() {
	ctx := context.Background()
	suite.tracker.On("Track", mock.Anything)

	s := suite.newShipment("SHP-1003")
	suite.Require().NoError(suite.repository.Add(ctx, s))

	item, err := shipment.NewItem(kernel.NewUUID(), shipment.ItemFields{
		LineNumber:  7,
		ProductCode: "SKU-777",
		Quantities:  shipment.Quantities{Ordered: 1},
	})
	suite.Require().NoError(err)
	suite.Require().NoError(s.Update(s.Details(), []*shipment.Item{item}, now))
	suite.Require().NoError(s.Confirm(now))

	suite.Require().NoError(suite.repository.Update(ctx, s))
	suite.Equal(int64(1), s.Version())

	loaded, err := suite.repository.Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.Confirmed, loaded.Status())
	suite.Equal(int64(1), loaded.Version())
	suite.Require().Len(loaded.Items(), 1)
	suite.Equal("SKU-777", loaded.Items()[0].Fields().ProductCode)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_StaleCopy_ReturnsVersionConflict() {
	ctx := context.Background()
	suite.tracker.On("Track", mock.Anything)

	s := suite.newShipment("SHP-1004")
	suite.Require().NoError(suite.repository.Add(ctx, s))

	first, err := suite.repository.Get(ctx, s.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, s.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.Confirm(now))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.Cancel("customer request", now))
	err = suite.repository.Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)

	loaded, err := suite.repository.Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.Confirmed, loaded.Status())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestDelete_RemovesShipmentAndItems() {
	ctx := context.Background()
	suite.tracker.On("Track", mock.Anything)

	s := suite.newShipment("SHP-1005")
	suite.Require().NoError(suite.repository.Add(ctx, s))
	suite.Require().NoError(suite.repository.Delete(ctx, s))

	_, err := suite.repository.Get(ctx, s.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var items int64
	suite.Require().NoError(suite.pg.DB.Model(&shipmentrepo.ShipmentItemDTO{}).Count(&items).Error)
	suite.Zero(items)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) newShipment(number string) *shipment.Shipment {
	origin, err := kernel.NewAddress(kernel.AddressFields{Line1: "Plot 4, MIDC", City: "Pune", Country: "IN"})
	suite.Require().NoError(err)
	destination, err := kernel.NewAddress(kernel.AddressFields{City: "Mumbai", Country: "IN"})
	suite.Require().NoError(err)

	var items []*shipment.Item
	for line := 2; line >= 1; line-- {
		item, itemErr := shipment.NewItem(kernel.NewUUID(), shipment.ItemFields{
			LineNumber:  line,
			ProductCode: fmt.Sprintf("SKU-%03d", line),
			Quantities:  shipment.Quantities{Ordered: 5, Shipped: 5},
			UnitWeight:  decimal.RequireFromString("1.25"),
		})
		suite.Require().NoError(itemErr)
		items = append(items, item)
	}

	s, err := shipment.NewShipment(kernel.NewUUID(), number, shipment.Details{
		Type:        shipment.TypeOutbound,
		Priority:    shipment.PriorityHigh,
		Mode:        shipment.ModeRoad,
		Origin:      origin,
		Destination: destination,
		Packages:    shipment.Packages{Count: 2, TotalWeight: decimal.RequireFromString("12.50")},
	}, items, now)
	suite.Require().NoError(err)
	return s
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}
