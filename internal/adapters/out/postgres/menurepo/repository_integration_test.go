package menurepo_test

import (
	"context"
	"testing"
	"time"

	"kitchenpos/internal/adapters/out/postgres/menurepo"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type countingTracker struct {
	tracked int
}

func (t *countingTracker) TrackAggregate(kernel.UUID, any) {
	t.tracked++
}

type MenuRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *menurepo.GormMenuRepository
	tracker    *countingTracker
}

func (suite *MenuRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&menurepo.MenuDTO{}, &menurepo.MenuProductDTO{}))
}

func (suite *MenuRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE menus, menu_products").Error)

	suite.tracker = &countingTracker{}
	suite.repository = menurepo.NewGormMenuRepository(suite.db, suite.tracker)
}

func (suite *MenuRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *MenuRepositoryIntegrationTestSuite) TestAdd_PersistsMenuProductsInOrder() {
	ctx := context.Background()
	productIDs := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()}
	m := suite.createTestMenu("19000.50", productIDs...)

	suite.Require().NoError(suite.repository.Add(ctx, m))
	suite.Equal(1, suite.tracker.tracked)

	stored, err := suite.repository.Get(ctx, m.ID())
	suite.Require().NoError(err)
	suite.Equal(m.Name(), stored.Name())
	suite.True(m.Price().IsEqual(stored.Price()))
	suite.Equal(m.MenuGroupID(), stored.MenuGroupID())

	suite.Require().Len(stored.Products(), 3)
	for i, id := range productIDs {
		suite.Equal(id, stored.Products()[i].ProductID())
	}
}

func (suite *MenuRepositoryIntegrationTestSuite) TestGet_MissingMenu_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *MenuRepositoryIntegrationTestSuite) TestCountExisting() {
	ctx := context.Background()
	first := suite.createTestMenu("1000")
	second := suite.createTestMenu("2000")
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	testCases := []struct {
		name     string
		ids      []kernel.UUID
		expected int64
	}{
		{name: "all present", ids: []kernel.UUID{first.ID(), second.ID()}, expected: 2},
		{name: "duplicates counted once", ids: []kernel.UUID{first.ID(), first.ID(), second.ID()}, expected: 2},
		{name: "one missing", ids: []kernel.UUID{first.ID(), kernel.NewUUID()}, expected: 1},
		{name: "empty input", ids: nil, expected: 0},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			count, err := suite.repository.CountExisting(ctx, tc.ids)

			suite.Require().NoError(err)
			suite.Equal(tc.expected, count)
		})
	}
}

func (suite *MenuRepositoryIntegrationTestSuite) createTestMenu(price string, productIDs ...kernel.UUID) *menu.Menu {
	products := make([]menu.MenuProduct, 0, len(productIDs))
	for _, id := range productIDs {
		qty, err := kernel.NewQuantity(2)
		suite.Require().NoError(err)
		mp, err := menu.NewMenuProduct(kernel.NewUUID(), id, qty)
		suite.Require().NoError(err)
		products = append(products, mp)
	}

	p, err := kernel.NewPrice(decimal.RequireFromString(price))
	suite.Require().NoError(err)

	m, err := menu.NewMenu(kernel.NewUUID(), "set menu", p, kernel.NewUUID(), products)
	suite.Require().NoError(err)
	return m
}

func TestMenuRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(MenuRepositoryIntegrationTestSuite))
}
