package queries

import (
	"errors"

	"kitchenpos/internal/pkg/guard"
)

var ErrGetKitchenLoadQueryIsNotConstructed = errors.New(
	"GetKitchenLoadQuery must be created via NewGetKitchenLoadQuery constructor",
)

// GetKitchenLoadQuery summarizes how busy the floor and the kitchen are.
type GetKitchenLoadQuery struct {
	guard guard.ConstructorGuard
}

func NewGetKitchenLoadQuery() GetKitchenLoadQuery {
	return GetKitchenLoadQuery{guard: guard.NewConstructorGuard()}
}

func (q GetKitchenLoadQuery) Validate() error {
	return q.guard.Validate(ErrGetKitchenLoadQueryIsNotConstructed)
}

// KitchenLoadResponse counts orders per status and tables per occupancy.
type KitchenLoadResponse struct {
	Cooking        int64
	Meal           int64
	Completion     int64
	OccupiedTables int64
	EmptyTables    int64
}

// ActiveOrders is the number of orders not yet in COMPLETION.
func (r KitchenLoadResponse) ActiveOrders() int64 {
	return r.Cooking + r.Meal
}
