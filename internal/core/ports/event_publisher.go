package ports

import (
	"context"

	"wiggy/internal/core/domain/model/order"
)

// EventPublisher delivers committed domain events to other systems.
type EventPublisher interface {
	Publish(ctx context.Context, event order.DomainEvent) error
}
