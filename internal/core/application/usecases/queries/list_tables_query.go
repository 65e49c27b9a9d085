package queries

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var ErrListTablesQueryIsNotConstructed = errors.New(
	"ListTablesQuery must be created via NewListTablesQuery constructor",
)

type ListTablesQuery struct {
	guard guard.ConstructorGuard
}

func NewListTablesQuery() ListTablesQuery {
	return ListTablesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListTablesQuery) Validate() error {
	return q.guard.Validate(ErrListTablesQueryIsNotConstructed)
}

// TableResponse is the read model of an order table. TableGroupID is nil for
// ungrouped tables.
type TableResponse struct {
	ID             kernel.UUID
	TableGroupID   *kernel.UUID
	NumberOfGuests int
	Empty          bool
}
