package order

import (
	"time"

	"wiggy/internal/core/domain/model/kernel"
)

const (
	PlacedEventName        = "order.placed"
	StatusChangedEventName = "order.status_changed"
)

// DomainEvent is recorded by the aggregate and dispatched once the transaction commits.
type DomainEvent interface {
	EventName() string
	AggregateID() kernel.UUID
	OccurredAt() time.Time
}

// PlacedEvent is recorded when an order is created.
type PlacedEvent struct {
	OrderID      kernel.UUID
	UserID       kernel.UUID
	RestaurantID kernel.UUID
	FinalAmount  kernel.Money
	At           time.Time
}

func (e PlacedEvent) EventName() string        { return PlacedEventName }
func (e PlacedEvent) AggregateID() kernel.UUID { return e.OrderID }
func (e PlacedEvent) OccurredAt() time.Time    { return e.At }

// StatusChangedEvent is recorded on every status write, including no-op rewrites.
type StatusChangedEvent struct {
	OrderID kernel.UUID
	UserID  kernel.UUID
	From    Status
	To      Status
	At      time.Time
}

func (e StatusChangedEvent) EventName() string        { return StatusChangedEventName }
func (e StatusChangedEvent) AggregateID() kernel.UUID { return e.OrderID }
func (e StatusChangedEvent) OccurredAt() time.Time    { return e.At }
