// Package queries contains the read operations of kitchenpos. Queries read the
// database directly with SQL and never take locks.
package queries

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListMenusQueryIsNotConstructed = errors.New(
	"ListMenusQuery must be created via NewListMenusQuery constructor",
)

// ListMenusQuery retrieves every menu with its line items.
type ListMenusQuery struct {
	guard guard.ConstructorGuard
}

func NewListMenusQuery() ListMenusQuery {
	return ListMenusQuery{guard: guard.NewConstructorGuard()}
}

func (q ListMenusQuery) Validate() error {
	return q.guard.Validate(ErrListMenusQueryIsNotConstructed)
}

type MenuProductResponse struct {
	ID        kernel.UUID
	ProductID kernel.UUID
	Quantity  int64
}

// MenuResponse is the read model of a menu. MenuProducts keep the order they were
// created in.
type MenuResponse struct {
	ID           kernel.UUID
	Name         string
	Price        decimal.Decimal
	MenuGroupID  kernel.UUID
	MenuProducts []MenuProductResponse
}
