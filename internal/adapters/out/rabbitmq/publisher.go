// Package rabbitmq publishes committed order events to a RabbitMQ topic exchange.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"wiggy/internal/core/domain/model/kernel"
	"wiggy/internal/core/domain/model/order"

	"github.com/rabbitmq/amqp091-go"
)

const (
	// DefaultExchange is the topic exchange order events are routed through.
	DefaultExchange = "orders_topic"

	publishTimeout = 5 * time.Second
)

// Channel is the part of *amqp091.Channel the publisher needs.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// EventPublisher sends each domain event as a persistent JSON message whose routing key
// is the event name.
type EventPublisher struct {
	channel  Channel
	exchange string
	logger   *slog.Logger
}

// NewEventPublisher declares the durable topic exchange and returns a publisher bound to it.
func NewEventPublisher(channel Channel, exchange string, logger *slog.Logger) (*EventPublisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}
	if logger == nil {
		logger = slog.Default()
	}

	if err := channel.ExchangeDeclare(
		exchange, // name
		"topic",  // kind
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	); err != nil {
		return nil, fmt.Errorf("declare exchange %q: %w", exchange, err)
	}

	return &EventPublisher{
		channel:  channel,
		exchange: exchange,
		logger:   logger.With("component", "event_publisher"),
	}, nil
}

// Dial connects to the broker at url and opens a publisher on a fresh channel.
// The returned close function releases both the channel and the connection.
func Dial(url, exchange string, logger *slog.Logger) (*EventPublisher, func() error, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	publisher, err := NewEventPublisher(ch, exchange, logger)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, err
	}

	closeFn := func() error {
		_ = ch.Close()
		return conn.Close()
	}
	return publisher, closeFn, nil
}

// Publish implements ports.EventPublisher.
func (p *EventPublisher) Publish(ctx context.Context, event order.DomainEvent) error {
	body, err := encodeEvent(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(ctx,
		p.exchange,        // exchange
		event.EventName(), // routing key
		false,             // mandatory
		false,             // immediate
		amqp091.Publishing{
			DeliveryMode: amqp091.Persistent,
			ContentType:  "application/json",
			MessageId:    kernel.NewUUID().String(),
			Type:         event.EventName(),
			Timestamp:    event.OccurredAt(),
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("publish %s: %w", event.EventName(), err)
	}

	p.logger.DebugContext(ctx, "event published",
		"event", event.EventName(),
		"order_id", event.AggregateID().String(),
	)
	return nil
}

// eventMessage is the wire shape shared by all order events.
type eventMessage struct {
	Event        string    `json:"event"`
	OrderID      string    `json:"orderId"`
	UserID       string    `json:"userId"`
	RestaurantID string    `json:"restaurantId,omitempty"`
	FinalAmount  *int64    `json:"finalAmount,omitempty"`
	From         string    `json:"from,omitempty"`
	To           string    `json:"to,omitempty"`
	OccurredAt   time.Time `json:"occurredAt"`
}

func encodeEvent(event order.DomainEvent) ([]byte, error) {
	var msg eventMessage
	switch e := event.(type) {
	case order.PlacedEvent:
		amount := e.FinalAmount.Amount()
		msg = eventMessage{
			OrderID:      e.OrderID.String(),
			UserID:       e.UserID.String(),
			RestaurantID: e.RestaurantID.String(),
			FinalAmount:  &amount,
		}
	case order.StatusChangedEvent:
		msg = eventMessage{
			OrderID: e.OrderID.String(),
			UserID:  e.UserID.String(),
			From:    e.From.String(),
			To:      e.To.String(),
		}
	default:
		return nil, fmt.Errorf("unsupported event %T", event)
	}
	msg.Event = event.EventName()
	msg.OccurredAt = event.OccurredAt().UTC()

	return json.Marshal(msg)
}
