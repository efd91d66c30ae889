package requestrepo_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres/pgtest"
	"laundry/internal/adapters/out/postgres/requestrepo"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/request"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

var created = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

// RequestRepositoryIntegrationTestSuite runs the repository against a PostgreSQL container.
type RequestRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *requestrepo.GormRequestRepository
}

func (suite *RequestRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background(), &requestrepo.RequestDTO{})
	suite.Require().NoError(err)
	suite.database = database
	suite.repository = requestrepo.NewGormRequestRepository(database.DB)
}

func (suite *RequestRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate("requests"))
}

func (suite *RequestRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *RequestRepositoryIntegrationTestSuite) newRequest() *request.Request {
	pickup := created.Add(24 * time.Hour)
	req, err := request.NewRequest(kernel.NewUUID(), kernel.NewUUID(), request.Details{
		CustomerName:     "Ada",
		Phone:            "+44 20 7946 0000",
		Address:          "1 Main St",
		ItemsDescription: "3 shirts",
		ServiceType:      "wash_and_fold",
		PickupTime:       &pickup,
	}, created)
	suite.Require().NoError(err)
	return req
}

func (suite *RequestRepositoryIntegrationTestSuite) TestAdd_ThenGet_RestoresAggregate() {
	ctx := context.Background()
	req := suite.newRequest()

	suite.Require().NoError(suite.repository.Add(ctx, req))

	got, err := suite.repository.Get(ctx, req.ID())
	suite.Require().NoError(err)
	suite.Equal(req.ID(), got.ID())
	suite.Equal(req.CustomerID(), got.CustomerID())
	suite.Equal(request.Pending, got.Status())
	suite.Nil(got.Driver())
	suite.Equal(req.Details().Address, got.Details().Address)
	suite.Require().NotNil(got.Details().PickupTime)
	suite.True(req.Details().PickupTime.Equal(*got.Details().PickupTime))
	suite.True(created.Equal(got.CreatedAt()))
}

func (suite *RequestRepositoryIntegrationTestSuite) TestGet_Unknown_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RequestRepositoryIntegrationTestSuite) TestUpdate_PersistsAssignmentAndStatus() {
	ctx := context.Background()
	req := suite.newRequest()
	suite.Require().NoError(suite.repository.Add(ctx, req))

	driverID := kernel.NewUUID()
	suite.Require().NoError(req.Assign(driverID, request.ReassignAny, created.Add(time.Hour)))
	_, err := req.UpdateStatus(request.PickedUp, created.Add(2*time.Hour))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Update(ctx, req))

	got, err := suite.repository.Get(ctx, req.ID())
	suite.Require().NoError(err)
	suite.Equal(request.PickedUp, got.Status())
	suite.True(got.IsAssignedTo(driverID))
	suite.True(created.Add(2 * time.Hour).Equal(got.UpdatedAt()))
}

func (suite *RequestRepositoryIntegrationTestSuite) TestUpdate_Unknown_ReturnsNotFound() {
	err := suite.repository.Update(context.Background(), suite.newRequest())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RequestRepositoryIntegrationTestSuite) TestGetForUpdate_LocksRowUntilTransactionEnds() {
	ctx := context.Background()
	req := suite.newRequest()
	suite.Require().NoError(suite.repository.Add(ctx, req))

	holder := suite.database.DB.Begin()
	suite.Require().NoError(holder.Error)
	defer holder.Rollback()

	_, err := requestrepo.NewGormRequestRepository(holder).GetForUpdate(ctx, req.ID())
	suite.Require().NoError(err)

	waitCtx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	waiter := suite.database.DB.WithContext(waitCtx).Begin()
	suite.Require().NoError(waiter.Error)
	defer waiter.Rollback()

	_, err = requestrepo.NewGormRequestRepository(waiter).GetForUpdate(waitCtx, req.ID())
	suite.Require().Error(err)

	// A plain read is not blocked by the lock.
	_, err = suite.repository.Get(ctx, req.ID())
	suite.Require().NoError(err)
}

func TestRequestRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RequestRepositoryIntegrationTestSuite))
}
