//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "wiggy/internal/adapters/out/postgres"
	"wiggy/internal/adapters/out/postgres/orderrepo"
	"wiggy/internal/adapters/out/postgres/restaurantrepo"
	"wiggy/internal/adapters/out/postgres/userrepo"
	"wiggy/internal/core/domain/model/order"
	"wiggy/internal/core/ports"
	"wiggy/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite runs the repositories and the unit of work against a
// real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	publisher *recordingPublisher
	factory   ports.UnitOfWorkFactory
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{},
		&restaurantrepo.RestaurantDTO{}, &restaurantrepo.MenuItemDTO{},
		&userrepo.UserDTO{}, &userrepo.FavoriteDTO{},
	)
	suite.Require().NoError(err)
}

// SetupTest truncates every table so tests do not see each other's rows.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE order_items, orders, menu_items, restaurants, user_favorites, users").Error
	suite.Require().NoError(err)

	suite.publisher = &recordingPublisher{}
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(suite.db, suite.publisher, nil)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCheckoutWorkflow() {
	ctx := context.Background()
	r := createTestRestaurant(suite.T())
	u := createTestUser(suite.T(), "hungry@example.com")

	setup := suite.factory.Create()
	suite.Require().NoError(setup.RestaurantRepository().Add(ctx, r))
	suite.Require().NoError(setup.UserRepository().Add(ctx, u))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	o := createTestOrder(suite.T(), u.ID(), r.ID())
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	cancel := suite.factory.Create()
	suite.Require().NoError(cancel.Begin(ctx))
	got, err := cancel.OrderRepository().GetForUser(ctx, o.ID(), u.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(got.Cancel(staticMessages{}, got.CreatedAt()))
	suite.Require().NoError(cancel.OrderRepository().Update(ctx, got))
	suite.Require().NoError(cancel.Commit(ctx))

	final, err := suite.factory.Create().OrderRepository().GetForUser(ctx, o.ID(), u.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, final.Status())
	suite.Equal(o.Totals(), final.Totals())
	suite.Equal([]string{order.PlacedEventName, order.StatusChangedEventName}, suite.publisher.names())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_AcrossRepositories() {
	ctx := context.Background()
	r := createTestRestaurant(suite.T())
	u := createTestUser(suite.T(), "rollback@example.com")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RestaurantRepository().Add(ctx, r))
	suite.Require().NoError(uow.UserRepository().Add(ctx, u))
	suite.Require().NoError(uow.Rollback(ctx))

	reader := suite.factory.Create()
	_, err := reader.RestaurantRepository().Get(ctx, r.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = reader.UserRepository().Get(ctx, u.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUserEmailIsUnique() {
	ctx := context.Background()
	repo := suite.factory.Create().UserRepository()

	suite.Require().NoError(repo.Add(ctx, createTestUser(suite.T(), "taken@example.com")))
	err := repo.Add(ctx, createTestUser(suite.T(), "taken@example.com"))

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRestaurantCuisineArray() {
	ctx := context.Background()
	r := createTestRestaurant(suite.T())
	repo := suite.factory.Create().RestaurantRepository()
	suite.Require().NoError(repo.Add(ctx, r))

	found, err := repo.List(ctx, ports.RestaurantFilter{Cuisine: "South Indian", Search: "DOSA"})
	suite.Require().NoError(err)
	suite.Require().Len(found, 1)
	suite.Equal(r.ID(), found[0].ID())
	suite.Equal([]string{"South Indian"}, found[0].Profile().Cuisine)

	none, err := repo.List(ctx, ports.RestaurantFilter{Cuisine: "Italian"})
	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSeedCatalog_RunsOnce() {
	ctx := context.Background()
	repo := restaurantrepo.NewGormRestaurantRepository(suite.db, nil)

	seeded, err := restaurantrepo.Seed(ctx, repo, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Equal(3, seeded)

	seeded, err = restaurantrepo.Seed(ctx, repo, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Zero(seeded)

	byRating, err := repo.List(ctx, ports.RestaurantFilter{SortBy: ports.SortByRating})
	suite.Require().NoError(err)
	suite.Require().Len(byRating, 3)
	suite.Equal("Burger Singh", byRating[0].Name())
}
