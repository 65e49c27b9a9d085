package order

import "kitchenpos/internal/pkg/ddd"

const (
	PlacedEventName        = "kitchenpos.order.placed"
	StatusChangedEventName = "kitchenpos.order.status-changed"
)

type PlacedLineItem struct {
	MenuID   string `json:"menu_id"`
	Quantity int64  `json:"quantity"`
}

// Placed is raised when an order is accepted by a table.
type Placed struct {
	ddd.BaseEvent

	OrderID   string           `json:"order_id"`
	TableID   string           `json:"order_table_id"`
	Status    string           `json:"order_status"`
	LineItems []PlacedLineItem `json:"order_line_items"`
}

type StatusChanged struct {
	ddd.BaseEvent

	OrderID        string `json:"order_id"`
	TableID        string `json:"order_table_id"`
	PreviousStatus string `json:"previous_status"`
	Status         string `json:"order_status"`
}

func newPlaced(o *Order) Placed {
	items := make([]PlacedLineItem, 0, len(o.lineItems))
	for _, li := range o.lineItems {
		items = append(items, PlacedLineItem{
			MenuID:   li.menuID.String(),
			Quantity: li.quantity.Value(),
		})
	}

	return Placed{
		BaseEvent: ddd.NewBaseEvent(PlacedEventName),
		OrderID:   o.id.String(),
		TableID:   o.orderTableID.String(),
		Status:    o.status.String(),
		LineItems: items,
	}
}

func newStatusChanged(o *Order, previous Status) StatusChanged {
	return StatusChanged{
		BaseEvent:      ddd.NewBaseEvent(StatusChangedEventName),
		OrderID:        o.id.String(),
		TableID:        o.orderTableID.String(),
		PreviousStatus: previous.String(),
		Status:         o.status.String(),
	}
}
