// Package ports defines the contracts between the application core and its adapters:
// repositories, the unit of work, event publishing and credential handling.
package ports

import (
	"context"
	"time"

	"wiggy/internal/core/domain/model/kernel"
	"wiggy/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Ownership is part of every read: an order that exists but belongs to someone else is
// reported exactly like a missing one, with an errs.ObjectNotFoundError.
type OrderRepository interface {
	// Add persists a new order together with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the mutable part of an order: status, status message and update time.
	// Line items, totals and owner are never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetForUser retrieves an order by id, filtered by owner in the same lookup.
	GetForUser(ctx context.Context, id, userID kernel.UUID) (*order.Order, error)

	// ListForUser returns the user's orders, newest first.
	ListForUser(ctx context.Context, userID kernel.UUID) ([]*order.Order, error)

	// ListStale returns up to limit non-terminal orders last updated before the given time,
	// oldest first.
	ListStale(ctx context.Context, updatedBefore time.Time, limit int) ([]*order.Order, error)
}
