package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"kitchenpos/internal/adapters/out/postgres/orderrepo"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_line_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_PersistsOrderAndLineItemsInOrder() {
	ctx := context.Background()
	tableID := kernel.NewUUID()
	testOrder := suite.createTestOrder(tableID, 3)

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	stored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(tableID, stored.OrderTableID())
	suite.Equal(order.Cooking, stored.Status())
	suite.WithinDuration(testOrder.OrderedTime(), stored.OrderedTime(), time.Millisecond)
	suite.Empty(stored.DomainEvents(), "restored orders carry no events")

	suite.Require().Len(stored.LineItems(), 3)
	for i, item := range testOrder.LineItems() {
		suite.Equal(item.ID(), stored.LineItems()[i].ID())
		suite.Equal(item.MenuID(), stored.LineItems()[i].MenuID())
		suite.Equal(item.Quantity().Value(), stored.LineItems()[i].Quantity().Value())
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NotConstructedOrder_ReturnsError() {
	err := suite.repository.Add(context.Background(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_WritesStatusOnly() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(kernel.NewUUID(), 2)

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.ChangeStatus(order.Meal))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	stored, err := suite.repository.GetForUpdate(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Meal, stored.Status())
	suite.Len(stored.LineItems(), 2)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingOrder_ReturnsNotFound() {
	testOrder := suite.createTestOrder(kernel.NewUUID(), 1)

	err := suite.repository.Update(context.Background(), testOrder)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_MissingOrder_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByTable_ReturnsOnlyThatTable() {
	ctx := context.Background()
	tableID := kernel.NewUUID()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	first := suite.createTestOrder(tableID, 1)
	other := suite.createTestOrder(kernel.NewUUID(), 1)
	second := suite.createTestOrder(tableID, 2)
	for _, o := range []*order.Order{first, other, second} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	orders, err := suite.repository.GetAllByTable(ctx, tableID)

	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.Equal(first.ID(), orders[0].ID())
	suite.Equal(second.ID(), orders[1].ID())
	suite.Len(orders[1].LineItems(), 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByTable_NoOrders_ReturnsEmpty() {
	orders, err := suite.repository.GetAllByTable(context.Background(), kernel.NewUUID())

	suite.Require().NoError(err)
	suite.Empty(orders)
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(tableID kernel.UUID, lines int) *order.Order {
	items := make([]order.OrderLineItem, 0, lines)
	for i := range lines {
		qty, err := kernel.NewQuantity(int64(i + 1))
		suite.Require().NoError(err)
		item, err := order.NewOrderLineItem(kernel.NewUUID(), kernel.NewUUID(), qty)
		suite.Require().NoError(err)
		items = append(items, item)
	}

	o, err := order.NewOrder(kernel.NewUUID(), tableID, items, time.Now().UTC())
	suite.Require().NoError(err)
	return o
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
