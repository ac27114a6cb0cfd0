package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/adapters/out/postgres/orderrepo"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/kernel"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/core/domain/model/order"
	"github.com/jujuhimself/BEPAWA-V2-sub001/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers to verify persistence and the
// compare-and-swap status guard.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_lines").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) newPendingOrder(sellerID kernel.UUID) *order.Order {
	price, err := kernel.NewMoney(250000)
	suite.Require().NoError(err)
	line, err := order.NewLine(kernel.NewUUID(), 3, price)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), "ORD-"+kernel.NewUUID().String()[:8],
		kernel.NewUUID(), sellerID, []order.Line{line}, "Mikocheni, Dar es Salaam", nil)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGetRoundTrip() {
	ctx := context.Background()
	sellerID := kernel.NewUUID()
	o := suite.newPendingOrder(sellerID)

	suite.Require().NoError(suite.repository.Add(ctx, o))

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(o))
	suite.Equal(o.OrderNumber(), loaded.OrderNumber())
	suite.Equal(order.PendingPharmacyConfirmation, loaded.Status())
	suite.Equal(o.TotalAmount(), loaded.TotalAmount())
	suite.Len(loaded.Lines(), 1)
	suite.Equal(order.PaymentMethodCashOnDelivery, loaded.PaymentMethod())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateWithMatchingStatus() {
	ctx := context.Background()
	sellerID := kernel.NewUUID()
	o := suite.newPendingOrder(sellerID)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	expected := o.Status()
	suite.Require().NoError(o.Accept(sellerID))
	suite.Require().NoError(suite.repository.Update(ctx, o, expected))

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.PreparingOrder, loaded.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateLosesWhenStatusMoved() {
	ctx := context.Background()
	sellerID := kernel.NewUUID()
	o := suite.newPendingOrder(sellerID)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	// First writer wins.
	expected := o.Status()
	suite.Require().NoError(o.Accept(sellerID))
	suite.Require().NoError(suite.repository.Update(ctx, o, expected))

	// Second writer still holds the pending snapshot and tries to cancel.
	staleCopy, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(staleCopy.Cancel())

	err = suite.repository.Update(ctx, staleCopy, order.PendingPharmacyConfirmation)
	suite.Require().ErrorIs(err, errs.ErrStatusConflict)

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.PreparingOrder, loaded.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestRejectionRoundTrip() {
	ctx := context.Background()
	sellerID := kernel.NewUUID()
	o := suite.newPendingOrder(sellerID)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	expected := o.Status()
	suite.Require().NoError(o.Reject(sellerID, "prescription required"))
	suite.Require().NoError(suite.repository.Update(ctx, o, expected))

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, loaded.Status())
	suite.Require().NotNil(loaded.Rejection())
	suite.Equal("prescription required", loaded.Rejection().Reason)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestRiderAssignmentRoundTrip() {
	ctx := context.Background()
	sellerID, riderID := kernel.NewUUID(), kernel.NewUUID()
	o := suite.newPendingOrder(sellerID)
	suite.Require().NoError(o.Accept(sellerID))
	suite.Require().NoError(o.MarkReady(sellerID))
	suite.Require().NoError(suite.repository.Add(ctx, o))

	expected := o.Status()
	suite.Require().NoError(o.AssignRider(riderID))
	suite.Require().NoError(suite.repository.Update(ctx, o, expected))

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.RiderAssigned, loaded.Status())
	suite.Require().NotNil(loaded.Rider())
	suite.True(loaded.Rider().IsEqual(riderID))
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
