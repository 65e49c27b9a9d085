// Package commands contains the write operations of kitchenpos. Each command is a
// validated value; each handler runs its command inside one unit of work, so all
// reads, rule checks and writes of an operation commit together or not at all.
package commands

import (
	"context"

	"kitchenpos/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	MenuGroupRepoFactory interface {
		MenuGroupRepository() ports.MenuGroupRepository
	}

	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	TableRepoFactory interface {
		TableRepository() ports.TableRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MenuUoW is used by menu creation: products and the menu group are looked up
	// and the menu is written in one transaction.
	MenuUoW interface {
		TxManager
		ProductRepoFactory
		MenuGroupRepoFactory
		MenuRepoFactory
	}

	MenuUoWFactory interface {
		Create() MenuUoW
	}

	// TableUoW is used by operations that touch a single table and no orders.
	TableUoW interface {
		TxManager
		TableRepoFactory
	}

	TableUoWFactory interface {
		Create() TableUoW
	}

	// OrderUoW is used by operations that touch a single order.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW spans a table, its orders and the menus they reference. Used where a
	// rule crosses the table/order boundary.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   tbl, err := uow.TableRepository().GetForUpdate(ctx, tableID)
	//   orders, err := uow.OrderRepository().GetAllByTable(ctx, tableID)
	//   // ... apply rules
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		MenuRepoFactory
		TableRepoFactory
		OrderRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
