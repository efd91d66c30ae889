package driverrepo_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres/driverrepo"
	"laundry/internal/adapters/out/postgres/pgtest"
	"laundry/internal/core/domain/model/driver"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

var created = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

type DriverRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *driverrepo.GormDriverRepository
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background(), &driverrepo.DriverDTO{})
	suite.Require().NoError(err)
	suite.database = database
	suite.repository = driverrepo.NewGormDriverRepository(database.DB)
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate("drivers"))
}

func (suite *DriverRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *DriverRepositoryIntegrationTestSuite) newDriver(principalID *kernel.UUID) *driver.Driver {
	d, err := driver.NewDriver(kernel.NewUUID(), principalID, "Dan", "0700", created)
	suite.Require().NoError(err)
	return d
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAdd_ThenGetByPrincipal() {
	ctx := context.Background()
	owner := kernel.NewUUID()
	d := suite.newDriver(&owner)

	suite.Require().NoError(suite.repository.Add(ctx, d))

	got, err := suite.repository.GetByPrincipal(ctx, owner)
	suite.Require().NoError(err)
	suite.Equal(d.ID(), got.ID())
	suite.True(got.IsLinkedTo(owner))
	suite.True(got.IsAvailable())
	_, hasLocation := got.Location()
	suite.False(hasLocation)

	exists, err := suite.repository.ExistsForPrincipal(ctx, owner)
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repository.ExistsForPrincipal(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAdd_SecondProfileForPrincipal_ReturnsConflict() {
	ctx := context.Background()
	owner := kernel.NewUUID()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newDriver(&owner)))

	err := suite.repository.Add(ctx, suite.newDriver(&owner))

	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAdd_UnlinkedProfilesDoNotCollide() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.newDriver(nil)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newDriver(nil)))
}

func (suite *DriverRepositoryIntegrationTestSuite) TestUpdate_PersistsLocationAndAvailability() {
	ctx := context.Background()
	d := suite.newDriver(nil)
	suite.Require().NoError(suite.repository.Add(ctx, d))

	loc, err := kernel.NewLocation(51.5072, -0.1276)
	suite.Require().NoError(err)
	unavailable := false
	moved := created.Add(time.Hour)
	suite.Require().NoError(d.UpdateLocation(driver.LocationUpdate{Location: &loc, IsAvailable: &unavailable}, moved))

	suite.Require().NoError(suite.repository.Update(ctx, d))

	got, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.False(got.IsAvailable())
	stored, ok := got.Location()
	suite.Require().True(ok)
	suite.InDelta(51.5072, stored.Latitude(), 1e-9)
	suite.InDelta(-0.1276, stored.Longitude(), 1e-9)
	suite.True(moved.Equal(got.LastLocationUpdate()))
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGet_Unknown_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.GetByPrincipal(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestDriverRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DriverRepositoryIntegrationTestSuite))
}
