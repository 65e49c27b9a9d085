package table

import "kitchenpos/internal/pkg/ddd"

const (
	EmptyChangedEventName  = "kitchenpos.table.empty-changed"
	GuestsChangedEventName = "kitchenpos.table.guests-changed"
)

type EmptyChanged struct {
	ddd.BaseEvent

	TableID string `json:"order_table_id"`
	Empty   bool   `json:"empty"`
}

type GuestsChanged struct {
	ddd.BaseEvent

	TableID        string `json:"order_table_id"`
	NumberOfGuests int    `json:"number_of_guests"`
}

func newEmptyChanged(t *OrderTable) EmptyChanged {
	return EmptyChanged{
		BaseEvent: ddd.NewBaseEvent(EmptyChangedEventName),
		TableID:   t.id.String(),
		Empty:     t.empty,
	}
}

func newGuestsChanged(t *OrderTable) GuestsChanged {
	return GuestsChanged{
		BaseEvent:      ddd.NewBaseEvent(GuestsChangedEventName),
		TableID:        t.id.String(),
		NumberOfGuests: t.guestNumber.Value(),
	}
}
