// Package nats publishes committed domain events to NATS core subjects. The event
// name is the subject and the JSON-encoded event is the payload.
package nats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"kitchenpos/internal/pkg/ddd"

	"github.com/nats-io/nats.go"
)

// publisher is the part of *nats.Conn the event publisher needs.
type publisher interface {
	Publish(subject string, data []byte) error
}

type EventPublisher struct {
	conn publisher
}

func NewEventPublisher(conn publisher) *EventPublisher {
	return &EventPublisher{conn: conn}
}

// Connect dials the server and returns the connection together with a publisher
// bound to it. The caller owns the connection and drains it on shutdown.
func Connect(url string) (*nats.Conn, *EventPublisher, error) {
	conn, err := nats.Connect(url, nats.Name("kitchenpos"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return conn, NewEventPublisher(conn), nil
}

// Publish sends every event, continuing past failures. The returned error joins
// the failures of individual events.
func (p *EventPublisher) Publish(ctx context.Context, events ...ddd.DomainEvent) error {
	var errs []error
	for _, event := range events {
		if err := ctx.Err(); err != nil {
			return errors.Join(append(errs, err)...)
		}

		body, err := json.Marshal(event)
		if err != nil {
			errs = append(errs, fmt.Errorf("encode %s: %w", event.EventName(), err))
			continue
		}

		if err = p.conn.Publish(event.EventName(), body); err != nil {
			errs = append(errs, fmt.Errorf("publish %s: %w", event.EventName(), err))
		}
	}
	return errors.Join(errs...)
}
