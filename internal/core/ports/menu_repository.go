package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for menu aggregates.
type MenuRepository interface {
	// Add persists the menu together with its line items.
	Add(ctx context.Context, aggregate *menu.Menu) error

	// Get retrieves a menu with its line items in their original order.
	Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error)

	// CountExisting returns how many of the distinct ids refer to a stored menu.
	// Duplicates in ids are counted once.
	CountExisting(ctx context.Context, ids []kernel.UUID) (int64, error)
}
