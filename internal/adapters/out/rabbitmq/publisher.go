// Package rabbitmq publishes committed domain events to a durable topic exchange.
// The event name is the routing key so consumers can bind with patterns such as
// "kitchenpos.order.*".
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"kitchenpos/internal/pkg/ddd"

	amqp "github.com/rabbitmq/amqp091-go"
)

const exchangeKind = "topic"

// channel is the part of *amqp.Channel the event publisher needs.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type EventPublisher struct {
	mu       sync.Mutex
	ch       channel
	exchange string
}

// NewEventPublisher declares the exchange and returns a publisher writing to it.
func NewEventPublisher(ch channel, exchange string) (*EventPublisher, error) {
	if err := ch.ExchangeDeclare(exchange, exchangeKind, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange %q: %w", exchange, err)
	}
	return &EventPublisher{ch: ch, exchange: exchange}, nil
}

// Client owns the AMQP connection and channel behind an EventPublisher.
type Client struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// Dial opens a connection and a channel and declares the exchange on it.
func Dial(url, exchange string) (*Client, *EventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("failed to open channel: %w", err)
	}

	publisher, err := NewEventPublisher(ch, exchange)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, err
	}

	return &Client{conn: conn, ch: ch}, publisher, nil
}

func (c *Client) Close() {
	if c == nil {
		return
	}
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

// Publish sends every event as a persistent JSON message, continuing past
// failures. The returned error joins the failures of individual events.
func (p *EventPublisher) Publish(ctx context.Context, events ...ddd.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	for _, event := range events {
		body, err := json.Marshal(event)
		if err != nil {
			errs = append(errs, fmt.Errorf("encode %s: %w", event.EventName(), err))
			continue
		}

		msg := amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt().UTC().Truncate(time.Second),
			ContentType:  "application/json",
			MessageId:    event.EventID().String(),
			Type:         event.EventName(),
			Body:         body,
		}

		if err = p.ch.PublishWithContext(ctx, p.exchange, event.EventName(), false, false, msg); err != nil {
			errs = append(errs, fmt.Errorf("publish %s: %w", event.EventName(), err))
		}
	}
	return errors.Join(errs...)
}
