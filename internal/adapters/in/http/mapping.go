package http

import (
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toKernelUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func tableResponse(t *table.OrderTable) servers.OrderTable {
	var groupID *openapi_types.UUID
	if id := t.TableGroupID(); id != nil {
		raw := id.Bytes()
		groupID = &raw
	}

	return servers.OrderTable{
		Id:             t.ID().Bytes(),
		TableGroupId:   groupID,
		NumberOfGuests: t.GuestNumber().Value(),
		Empty:          t.IsEmpty(),
	}
}

func orderResponse(o *order.Order) servers.Order {
	items := make([]servers.OrderLineItem, 0, len(o.LineItems()))
	for _, li := range o.LineItems() {
		items = append(items, servers.OrderLineItem{
			Id:       li.ID().Bytes(),
			MenuId:   li.MenuID().Bytes(),
			Quantity: li.Quantity().Value(),
		})
	}

	return servers.Order{
		Id:             o.ID().Bytes(),
		OrderTableId:   o.OrderTableID().Bytes(),
		OrderStatus:    servers.OrderOrderStatus(o.Status().String()),
		OrderedTime:    o.OrderedTime().UTC(),
		OrderLineItems: items,
	}
}
