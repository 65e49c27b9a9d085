package queries

import (
	"context"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads orders in insertion order, each with its line items
// in the order they were placed.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	orders := make([]OrderResponse, 0)
	index := make(map[uuid.UUID]int)

	rows, err := db.Raw(`
		SELECT
			id,
			order_table_id,
			order_status,
			ordered_time
		FROM orders
		ORDER BY created_at, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, tableID uuid.UUID
			status      string
			orderedTime time.Time
		)
		if err = rows.Scan(&id, &tableID, &status, &orderedTime); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderTableID, idErr := kernel.UUIDFromBytes(tableID[:])
		if idErr != nil {
			return nil, idErr
		}

		index[id] = len(orders)
		orders = append(orders, OrderResponse{
			ID:             orderID,
			OrderTableID:   orderTableID,
			OrderStatus:    status,
			OrderedTime:    orderedTime,
			OrderLineItems: make([]OrderLineItemResponse, 0),
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	lineRows, err := db.Raw(`
		SELECT
			order_id,
			id,
			menu_id,
			quantity
		FROM order_line_items
		ORDER BY order_id, seq
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var (
			orderID, id, menuID uuid.UUID
			quantity            int64
		)
		if err = lineRows.Scan(&orderID, &id, &menuID, &quantity); err != nil {
			return nil, err
		}

		i, ok := index[orderID]
		if !ok {
			continue
		}

		lineID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		mID, idErr := kernel.UUIDFromBytes(menuID[:])
		if idErr != nil {
			return nil, idErr
		}

		orders[i].OrderLineItems = append(orders[i].OrderLineItems, OrderLineItemResponse{
			ID:       lineID,
			MenuID:   mID,
			Quantity: quantity,
		})
	}
	if err = lineRows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
