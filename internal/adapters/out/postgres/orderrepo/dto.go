// Package orderrepo provides data transfer objects and mapping functions for order
// persistence. An order row and its line item rows are written together and never
// rewritten; only the status column changes afterwards.
package orderrepo

import (
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is a row of the orders table. The status is stored by name so the
// column stays readable for reports.
type OrderDTO struct {
	ID           uuid.UUID          `gorm:"type:uuid;primaryKey"`
	OrderTableID uuid.UUID          `gorm:"type:uuid;not null;index"`
	OrderStatus  string             `gorm:"type:varchar(16);not null;index"`
	OrderedTime  time.Time          `gorm:"not null"`
	CreatedAt    time.Time          `gorm:"not null"`
	LineItems    []OrderLineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type OrderLineItemDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Seq      int       `gorm:"not null"`
	MenuID   uuid.UUID `gorm:"type:uuid;not null"`
	Quantity int64     `gorm:"not null"`
}

func (OrderLineItemDTO) TableName() string {
	return "order_line_items"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()
	lineItems := make([]OrderLineItemDTO, 0, len(o.LineItems()))

	for i, li := range o.LineItems() {
		lineItems = append(lineItems, OrderLineItemDTO{
			ID:       li.ID().Bytes(),
			OrderID:  orderID,
			Seq:      i,
			MenuID:   li.MenuID().Bytes(),
			Quantity: li.Quantity().Value(),
		})
	}

	return OrderDTO{
		ID:           orderID,
		OrderTableID: o.OrderTableID().Bytes(),
		OrderStatus:  o.Status().String(),
		OrderedTime:  o.OrderedTime(),
		LineItems:    lineItems,
	}
}

// toDomain rebuilds the aggregate with RestoreOrder. Line items must already be
// sorted by Seq.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tableID, err := kernel.UUIDFromBytes(dto.OrderTableID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.OrderStatus)
	if err != nil {
		return nil, err
	}

	lineItems := make([]order.OrderLineItem, 0, len(dto.LineItems))
	for _, liDto := range dto.LineItems {
		li, liErr := lineItemToDomain(liDto)
		if liErr != nil {
			return nil, liErr
		}
		lineItems = append(lineItems, li)
	}

	return order.RestoreOrder(id, tableID, status, dto.OrderedTime, lineItems)
}

func lineItemToDomain(dto OrderLineItemDTO) (order.OrderLineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.OrderLineItem{}, err
	}

	menuID, err := kernel.UUIDFromBytes(dto.MenuID[:])
	if err != nil {
		return order.OrderLineItem{}, err
	}

	quantity, err := kernel.NewQuantity(dto.Quantity)
	if err != nil {
		return order.OrderLineItem{}, err
	}

	return order.NewOrderLineItem(id, menuID, quantity)
}
