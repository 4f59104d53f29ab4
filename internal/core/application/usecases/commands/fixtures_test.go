package commands_test

import (
	"testing"
	"time"

	"wiggy/internal/core/domain/model/kernel"
	"wiggy/internal/core/domain/model/order"
	"wiggy/internal/core/domain/model/restaurant"
	"wiggy/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

func money(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

// newRestaurant builds a restaurant with a single menu item priced at price.
func newRestaurant(t *testing.T, price, fee int64) *restaurant.Restaurant {
	t.Helper()
	item, err := restaurant.NewMenuItem(kernel.NewUUID(), restaurant.MenuItemDetails{
		Name:        "Big McDonut",
		Description: "A burger-sized donut",
		Price:       money(t, price),
		Category:    restaurant.MainCourse,
		IsAvailable: true,
		Tagline:     "a commitment to your sweet tooth",
	})
	require.NoError(t, err)

	r, err := restaurant.NewRestaurant(kernel.NewUUID(), restaurant.Profile{
		Name:        "McDonut's",
		Description: "Fast food meets donut paradise",
		Cuisine:     []string{"Fast Food"},
		DeliveryFee: money(t, fee),
		Tagline:     "I'm lovin' it",
	}, []restaurant.MenuItem{item}, time.Now())
	require.NoError(t, err)
	return r
}

func newOrder(t *testing.T, userID kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), "Big McDonut", money(t, 100), "", 2)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), userID, kernel.NewUUID(), []order.LineItem{item},
		money(t, 25), order.Details{}, fixedMessages{}, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	if status != order.Placed {
		require.NoError(t, o.ChangeStatus(status, fixedMessages{}, time.Now().Add(-time.Hour)))
	}
	o.ClearDomainEvents()
	return o
}

func newUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), "Hungry Human", "hungry@example.com", "encoded-hash", "",
		kernel.Address{}, "I don't need therapy, I need tacos", time.Now())
	require.NoError(t, err)
	return u
}
