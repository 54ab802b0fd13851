package driverrepo_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/driverrepo"
	"logistics/internal/adapters/out/postgres/pgtest"
	"logistics/internal/adapters/out/postgres/pgutil"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

var now = time.Date(2025, 3, 14, 6, 0, 0, 0, time.UTC)

type DriverRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *driverrepo.GormDriverRepository
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background(), &driverrepo.DriverDTO{})
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate("drivers"))
	suite.repository = driverrepo.NewGormDriverRepository(suite.pg.DB, pgutil.NopTracker{})
}

func (suite *DriverRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Stop(context.Background()))
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAdd_DuplicateLicense_ReturnsAlreadyExists() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newDriver("DRV-1", "MH12-2020-1")))

	err := suite.repository.Add(ctx, suite.newDriver("DRV-2", "MH12-2020-1"))
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)

	byLicense, err := suite.repository.ExistsByLicenseNumber(ctx, "MH12-2020-1")
	suite.Require().NoError(err)
	suite.True(byLicense)

	byCode, err := suite.repository.ExistsByCode(ctx, "DRV-2")
	suite.Require().NoError(err)
	suite.False(byCode)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestMarkOnTripThenAvailable() {
	ctx := context.Background()
	d := suite.newDriver("DRV-3", "MH14-2019-7")
	suite.Require().NoError(suite.repository.Add(ctx, d))

	tripID := kernel.NewUUID()
	suite.Require().NoError(d.MarkOnTrip(tripID, now))
	suite.Require().NoError(suite.repository.Update(ctx, d))

	loaded, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal(driver.OnTrip, loaded.Status())
	suite.False(loaded.Availability().IsAvailable)
	suite.Require().NotNil(loaded.Availability().CurrentTripID)
	suite.True(loaded.Availability().CurrentTripID.IsEqual(tripID))
	suite.Equal(1, loaded.Stats().TotalTrips)

	loaded.MarkAvailable(now)
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	again, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal(driver.Active, again.Status())
	suite.True(again.Availability().IsAvailable)
	suite.Nil(again.Availability().CurrentTripID)
	suite.Equal(int64(2), again.Version())
}

func (suite *DriverRepositoryIntegrationTestSuite) newDriver(code, license string) *driver.Driver {
	d, err := driver.NewDriver(kernel.NewUUID(), code, driver.Profile{
		Name:          "Ravi Kumar",
		LicenseNumber: license,
		Phone:         "+91 98200 00000",
	}, now)
	suite.Require().NoError(err)
	return d
}

func TestDriverRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DriverRepositoryIntegrationTestSuite))
}
