package queries

import (
	"errors"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves every order with its line items.
type ListOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

type OrderLineItemResponse struct {
	ID       kernel.UUID
	MenuID   kernel.UUID
	Quantity int64
}

type OrderResponse struct {
	ID             kernel.UUID
	OrderTableID   kernel.UUID
	OrderStatus    string
	OrderedTime    time.Time
	OrderLineItems []OrderLineItemResponse
}
