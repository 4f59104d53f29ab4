package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"wiggy/internal/core/domain/model/kernel"
	"wiggy/internal/core/domain/model/order"
	"wiggy/internal/core/domain/model/restaurant"
	"wiggy/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

type staticMessages struct{}

func (staticMessages) MessageFor(s order.Status) string { return "now " + s.String() }

// recordingPublisher collects published events and can be told to fail.
type recordingPublisher struct {
	mu     sync.Mutex
	events []order.DomainEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event order.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventName())
	}
	return out
}

func createTestOrder(t *testing.T, userID, restaurantID kernel.UUID) *order.Order {
	t.Helper()
	price, err := kernel.NewMoney(250)
	require.NoError(t, err)
	item, err := order.NewLineItem(kernel.NewUUID(), "Masala Dosa", price, "https://img.example/dosa", 2)
	require.NoError(t, err)
	fee, err := kernel.NewMoney(40)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), userID, restaurantID, []order.LineItem{item}, fee,
		order.Details{DeliveryAddress: kernel.NewAddress("1 Main St", "Pune", "MH", "411001", "")},
		staticMessages{}, time.Now().UTC())
	require.NoError(t, err)
	return o
}

func createTestRestaurant(t *testing.T) *restaurant.Restaurant {
	t.Helper()
	price, err := kernel.NewMoney(180)
	require.NoError(t, err)
	item, err := restaurant.NewMenuItem(kernel.NewUUID(), restaurant.MenuItemDetails{
		Name:        "Filter Coffee",
		Description: "Strong and sweet",
		Price:       price,
		Category:    restaurant.Beverages,
		IsVeg:       true,
		IsAvailable: true,
		Tagline:     "Wakes you up before the dosa does",
	})
	require.NoError(t, err)
	fee, err := kernel.NewMoney(30)
	require.NoError(t, err)

	r, err := restaurant.NewRestaurant(kernel.NewUUID(), restaurant.Profile{
		Name:         "Dosa Dynasty",
		Description:  "Crisp dosas all day",
		Cuisine:      []string{"South Indian"},
		Rating:       4.4,
		DeliveryTime: "25-35 mins",
		DeliveryFee:  fee,
		IsOpen:       true,
		Tagline:      "Dosa so good, you'll forget your ex",
	}, []restaurant.MenuItem{item}, time.Now().UTC())
	require.NoError(t, err)
	return r
}

func createTestUser(t *testing.T, email string) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), "Hungry Human", email, "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		"555-0100", kernel.NewAddress("1 Main St", "Pune", "MH", "411001", ""), "", time.Now().UTC())
	require.NoError(t, err)
	return u
}
