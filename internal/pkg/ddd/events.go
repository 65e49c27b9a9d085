// Package ddd holds the small building blocks shared by aggregates that record
// domain events: the event contract, a base event and an embeddable recorder.
package ddd

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is a fact recorded by an aggregate. Events are published only after
// the unit of work that produced them commits.
type DomainEvent interface {
	EventID() uuid.UUID
	EventName() string
	OccurredAt() time.Time
}

// EventSource is implemented by aggregates that record domain events.
type EventSource interface {
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}

// BaseEvent carries the envelope fields every event has. Concrete events embed it
// so the envelope is flattened into their JSON payload.
type BaseEvent struct {
	ID   uuid.UUID `json:"event_id"`
	Name string    `json:"event_type"`
	At   time.Time `json:"occurred_at"`
}

func NewBaseEvent(name string) BaseEvent {
	return BaseEvent{
		ID:   uuid.New(),
		Name: name,
		At:   time.Now().UTC(),
	}
}

func (e BaseEvent) EventID() uuid.UUID {
	return e.ID
}

func (e BaseEvent) EventName() string {
	return e.Name
}

func (e BaseEvent) OccurredAt() time.Time {
	return e.At
}

// EventRecorder is embedded by aggregates to collect events raised by their
// behavior methods.
type EventRecorder struct {
	events []DomainEvent
}

// Raise appends an event to the pending list.
func (r *EventRecorder) Raise(event DomainEvent) {
	r.events = append(r.events, event)
}

// DomainEvents returns a copy of the pending events.
func (r *EventRecorder) DomainEvents() []DomainEvent {
	out := make([]DomainEvent, len(r.events))
	copy(out, r.events)
	return out
}

func (r *EventRecorder) ClearDomainEvents() {
	r.events = nil
}
