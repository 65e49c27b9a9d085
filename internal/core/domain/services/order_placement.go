package services

import (
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/table"
)

// OrderPlacement creates orders against tables.
//
// Business rules, in the order they are checked:
//   - the order must have at least one line item
//   - the table must not be empty
type OrderPlacement struct{}

func NewOrderPlacement() OrderPlacement {
	return OrderPlacement{}
}

// Place builds a new order in COOKING for tbl. Menu existence is the caller's
// concern and must be verified before Place is called.
func (OrderPlacement) Place(
	tbl *table.OrderTable,
	orderID kernel.UUID,
	lineItems []order.OrderLineItem,
	now time.Time,
) (*order.Order, error) {
	if len(lineItems) == 0 {
		return nil, order.ErrOrderLineItemsEmpty
	}

	if err := tbl.Validate(); err != nil {
		return nil, err
	}

	if tbl.IsEmpty() {
		return nil, order.ErrTableIsEmpty
	}

	return order.NewOrder(orderID, tbl.ID(), lineItems, now)
}
