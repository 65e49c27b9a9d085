package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"
)

// TableRepository defines the persistence contract for order tables.
//
// The locking reads serialize requests on the same table: GetForUpdate is used
// before the empty flag or the guest count changes, GetForShare before an order is
// placed, so an order can never land on a table that is concurrently being freed.
type TableRepository interface {
	Add(ctx context.Context, aggregate *table.OrderTable) error
	Update(ctx context.Context, aggregate *table.OrderTable) error
	Get(ctx context.Context, id kernel.UUID) (*table.OrderTable, error)

	// GetForUpdate reads the table and holds an exclusive row lock until the
	// surrounding transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*table.OrderTable, error)

	// GetForShare reads the table and holds a shared row lock until the surrounding
	// transaction ends.
	GetForShare(ctx context.Context, id kernel.UUID) (*table.OrderTable, error)
}

// TableGroupRepository stores table groups. Groups are formed outside the core;
// the repository exists so tables can reference them.
type TableGroupRepository interface {
	Add(ctx context.Context, aggregate *table.TableGroup) error
	Get(ctx context.Context, id kernel.UUID) (*table.TableGroup, error)
}
