// Package eventlog is the event publisher used when no broker is configured. It
// writes each committed event to the structured log and never fails.
package eventlog

import (
	"context"
	"log/slog"

	"kitchenpos/internal/pkg/ddd"
)

type EventPublisher struct {
	logger *slog.Logger
}

func NewEventPublisher(logger *slog.Logger) *EventPublisher {
	return &EventPublisher{logger: logger.With("component", "event-log")}
}

func (p *EventPublisher) Publish(ctx context.Context, events ...ddd.DomainEvent) error {
	for _, event := range events {
		p.logger.InfoContext(ctx, "domain event",
			"event_id", event.EventID().String(),
			"event_type", event.EventName(),
			"occurred_at", event.OccurredAt(),
		)
	}
	return nil
}
