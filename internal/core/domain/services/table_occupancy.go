package services

import (
	"errors"

	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/table"
)

// TableOccupancy decides empty-state changes of a table against the orders
// placed on it.
//
// Example usage:
//
//	occupancy := services.NewTableOccupancy()
//	err := occupancy.ChangeEmpty(tbl, orders, true)
//	if errors.Is(err, table.ErrTableHasActiveOrder) {
//	    // the table still has an order that is not in COMPLETION
//	}
type TableOccupancy struct{}

func NewTableOccupancy() TableOccupancy {
	return TableOccupancy{}
}

// ChangeEmpty sets the table's empty flag. orders must be every order placed
// against tbl; any of them that is not in COMPLETION blocks the change. The
// grouped-table rule takes precedence over the active-order rule.
func (TableOccupancy) ChangeEmpty(tbl *table.OrderTable, orders []*order.Order, empty bool) error {
	if err := tbl.Validate(); err != nil {
		return err
	}

	hasActiveOrder := false
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return err
		}
		if !o.OrderTableID().IsEqual(tbl.ID()) {
			return errors.New("order does not belong to the table")
		}
		if o.IsActive() {
			hasActiveOrder = true
		}
	}

	return tbl.ChangeEmpty(empty, hasActiveOrder)
}
