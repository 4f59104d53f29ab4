package orderrepo_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"wiggy/internal/adapters/out/postgres/orderrepo"
	"wiggy/internal/core/domain/model/kernel"
	"wiggy/internal/core/domain/model/order"
	"wiggy/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type staticMessages struct{}

func (staticMessages) MessageFor(s order.Status) string { return "now " + s.String() }

// OrderRepositoryTestSuite runs the repository against an in-memory SQLite database.
type OrderRepositoryTestSuite struct {
	suite.Suite
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func TestOrderRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryTestSuite))
}

func (suite *OrderRepositoryTestSuite) SetupTest() {
	name := strings.NewReplacer("/", "_", " ", "_").Replace(suite.T().Name())
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	suite.Require().NoError(err)

	sqlDB, err := db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)
	suite.T().Cleanup(func() { _ = sqlDB.Close() })

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
	suite.db = db

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(db, suite.tracker)
}

func (suite *OrderRepositoryTestSuite) TestAdd_PersistsOrderWithItemsInCheckoutOrder() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	o := suite.createOrder(userID, time.Now().UTC(), "Dosa", "Chai", "Lassi")

	suite.tracker.On("TrackAggregate", o.ID(), o).Once()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.GetForUser(ctx, o.ID(), userID)
	suite.Require().NoError(err)

	suite.Equal(o.ID(), got.ID())
	suite.Equal(o.Totals(), got.Totals())
	suite.Equal(order.Placed, got.Status())
	suite.Equal(o.StatusMessage(), got.StatusMessage())
	suite.Equal(o.Details(), got.Details())
	suite.Require().Len(got.Items(), 3)
	for i, name := range []string{"Dosa", "Chai", "Lassi"} {
		suite.Equal(name, got.Items()[i].Name())
	}
	suite.Empty(got.DomainEvents())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryTestSuite) TestAdd_NotConstructed() {
	err := suite.repository.Add(context.Background(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *OrderRepositoryTestSuite) TestGetForUser_OtherOwnerIsNotFound() {
	ctx := context.Background()
	o := suite.createOrder(kernel.NewUUID(), time.Now().UTC(), "Dosa")
	suite.tracker.On("TrackAggregate", o.ID(), o).Once()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	_, err := suite.repository.GetForUser(ctx, o.ID(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.GetForUser(ctx, kernel.NewUUID(), o.UserID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestUpdate_WritesStatusOnly() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	o := suite.createOrder(userID, time.Now().UTC().Add(-time.Hour), "Dosa")
	suite.tracker.On("TrackAggregate", o.ID(), o).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	changedAt := time.Now().UTC()
	suite.Require().NoError(o.ChangeStatus(order.OutForDelivery, staticMessages{}, changedAt))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.GetForUser(ctx, o.ID(), userID)
	suite.Require().NoError(err)
	suite.Equal(order.OutForDelivery, got.Status())
	suite.Equal("now out-for-delivery", got.StatusMessage())
	suite.WithinDuration(changedAt, got.UpdatedAt(), time.Millisecond)
	suite.WithinDuration(o.CreatedAt(), got.CreatedAt(), time.Millisecond)
	suite.Equal(o.Totals(), got.Totals())

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderItemDTO{}).Count(&count).Error)
	suite.EqualValues(1, count)
}

func (suite *OrderRepositoryTestSuite) TestUpdate_MissingOrder() {
	o := suite.createOrder(kernel.NewUUID(), time.Now().UTC(), "Dosa")

	err := suite.repository.Update(context.Background(), o)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *OrderRepositoryTestSuite) TestListForUser_NewestFirstAndOwnerScoped() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	now := time.Now().UTC()
	oldest := suite.createOrder(userID, now.Add(-2*time.Hour), "Dosa")
	newest := suite.createOrder(userID, now, "Chai")
	middle := suite.createOrder(userID, now.Add(-time.Hour), "Lassi")
	foreign := suite.createOrder(kernel.NewUUID(), now, "Vada")
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	for _, o := range []*order.Order{oldest, newest, middle, foreign} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	got, err := suite.repository.ListForUser(ctx, userID)

	suite.Require().NoError(err)
	suite.Require().Len(got, 3)
	suite.Equal(newest.ID(), got[0].ID())
	suite.Equal(middle.ID(), got[1].ID())
	suite.Equal(oldest.ID(), got[2].ID())
}

func (suite *OrderRepositoryTestSuite) TestListForUser_NoOrders() {
	got, err := suite.repository.ListForUser(context.Background(), kernel.NewUUID())

	suite.Require().NoError(err)
	suite.NotNil(got)
	suite.Empty(got)
}

func (suite *OrderRepositoryTestSuite) TestListStale_SkipsFreshAndTerminalOrders() {
	ctx := context.Background()
	now := time.Now().UTC()
	stalePlaced := suite.createOrder(kernel.NewUUID(), now.Add(-10*time.Minute), "Dosa")
	stalePreparing := suite.createOrder(kernel.NewUUID(), now.Add(-20*time.Minute), "Chai")
	suite.Require().NoError(stalePreparing.ChangeStatus(order.Preparing, nil, now.Add(-20*time.Minute)))
	staleDelivered := suite.createOrder(kernel.NewUUID(), now.Add(-30*time.Minute), "Lassi")
	suite.Require().NoError(staleDelivered.ChangeStatus(order.Delivered, nil, now.Add(-30*time.Minute)))
	fresh := suite.createOrder(kernel.NewUUID(), now, "Vada")

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	for _, o := range []*order.Order{stalePlaced, stalePreparing, staleDelivered, fresh} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	got, err := suite.repository.ListStale(ctx, now.Add(-5*time.Minute), 10)
	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.Equal(stalePreparing.ID(), got[0].ID())
	suite.Equal(stalePlaced.ID(), got[1].ID())

	limited, err := suite.repository.ListStale(ctx, now.Add(-5*time.Minute), 1)
	suite.Require().NoError(err)
	suite.Require().Len(limited, 1)
	suite.Equal(stalePreparing.ID(), limited[0].ID())
}

func (suite *OrderRepositoryTestSuite) TestNilTracker() {
	repo := orderrepo.NewGormOrderRepository(suite.db, nil)
	o := suite.createOrder(kernel.NewUUID(), time.Now().UTC(), "Dosa")

	suite.Require().NoError(repo.Add(context.Background(), o))
}

func (suite *OrderRepositoryTestSuite) createOrder(userID kernel.UUID, at time.Time, names ...string) *order.Order {
	items := make([]order.LineItem, 0, len(names))
	for i, name := range names {
		price, err := kernel.NewMoney(int64(100 * (i + 1)))
		suite.Require().NoError(err)
		item, err := order.NewLineItem(kernel.NewUUID(), name, price, "https://img.example/"+name, i+1)
		suite.Require().NoError(err)
		items = append(items, item)
	}
	fee, err := kernel.NewMoney(25)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), userID, kernel.NewUUID(), items, fee, order.Details{
		DeliveryAddress:       kernel.NewAddress("221B Baker St", "London", "", "NW1", "555-0100"),
		Notes:                 "ring twice",
		EstimatedDeliveryTime: "20-30 mins",
	}, staticMessages{}, at)
	suite.Require().NoError(err)
	return o
}
