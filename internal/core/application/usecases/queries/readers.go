// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries never open a transaction; they read through the narrow reader interfaces below.
package queries

import (
	"context"

	"wiggy/internal/core/domain/model/kernel"
	"wiggy/internal/core/domain/model/order"
	"wiggy/internal/core/domain/model/restaurant"
	"wiggy/internal/core/domain/model/user"
	"wiggy/internal/core/ports"
)

type (
	// OrderReader is the read side of ports.OrderRepository.
	OrderReader interface {
		GetForUser(ctx context.Context, id, userID kernel.UUID) (*order.Order, error)
		ListForUser(ctx context.Context, userID kernel.UUID) ([]*order.Order, error)
	}

	// RestaurantReader is the read side of ports.RestaurantRepository.
	RestaurantReader interface {
		Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)
		List(ctx context.Context, filter ports.RestaurantFilter) ([]*restaurant.Restaurant, error)
	}

	// UserReader is the read side of ports.UserRepository.
	UserReader interface {
		Get(ctx context.Context, id kernel.UUID) (*user.User, error)
	}
)
