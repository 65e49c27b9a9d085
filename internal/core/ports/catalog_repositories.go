// Package ports defines the contracts between the kitchenpos core and its
// infrastructure: a repository per aggregate, the unit of work that binds them to
// one transaction, and the publisher of domain events.
package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menugroup"
	"kitchenpos/internal/core/domain/model/product"
)

// ProductRepository is the product lookup consulted when menus are built.
// Get returns an error matching errs.ErrObjectNotFound for unknown ids.
type ProductRepository interface {
	Add(ctx context.Context, aggregate *product.Product) error
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
}

// MenuGroupRepository is the menu group lookup consulted when menus are built.
type MenuGroupRepository interface {
	Add(ctx context.Context, aggregate *menugroup.MenuGroup) error
	Get(ctx context.Context, id kernel.UUID) (*menugroup.MenuGroup, error)
}
