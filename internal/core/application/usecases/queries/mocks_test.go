package queries_test

import (
	"context"
	"testing"
	"time"

	"wiggy/internal/core/domain/model/kernel"
	"wiggy/internal/core/domain/model/order"
	"wiggy/internal/core/domain/model/restaurant"
	"wiggy/internal/core/domain/model/user"
	"wiggy/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) GetForUser(ctx context.Context, id, userID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderReader) ListForUser(ctx context.Context, userID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockRestaurantReader struct{ mock.Mock }

func (m *MockRestaurantReader) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.Restaurant), args.Error(1)
}

func (m *MockRestaurantReader) List(ctx context.Context, filter ports.RestaurantFilter) ([]*restaurant.Restaurant, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*restaurant.Restaurant), args.Error(1)
}

type MockUserReader struct{ mock.Mock }

func (m *MockUserReader) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func money(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func newOrder(t *testing.T, userID kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), "Pizza Hurt", money(t, 300), "", 1)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), userID, kernel.NewUUID(), []order.LineItem{item},
		money(t, 40), order.Details{}, nil, time.Now())
	require.NoError(t, err)
	return o
}

func menuItem(t *testing.T, name string, category restaurant.Category) restaurant.MenuItem {
	t.Helper()
	item, err := restaurant.NewMenuItem(kernel.NewUUID(), restaurant.MenuItemDetails{
		Name:        name,
		Description: name + " description",
		Price:       money(t, 150),
		Category:    category,
		IsAvailable: true,
		Tagline:     "probably edible",
	})
	require.NoError(t, err)
	return item
}

func newRestaurant(t *testing.T, menu ...restaurant.MenuItem) *restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.NewRestaurant(kernel.NewUUID(), restaurant.Profile{
		Name:        "Taco Hell",
		Description: "Think outside the bun",
		Cuisine:     []string{"Mexican"},
		DeliveryFee: money(t, 30),
		Tagline:     "live más",
	}, menu, time.Now())
	require.NoError(t, err)
	return r
}
