package ports

import (
	"context"

	"kitchenpos/internal/pkg/ddd"
)

// EventPublisher delivers committed domain events to a message broker. The event
// name is used as the subject or routing key.
type EventPublisher interface {
	Publish(ctx context.Context, events ...ddd.DomainEvent) error
}
