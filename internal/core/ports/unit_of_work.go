package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of one command. Repositories it returns
// are bound to the transaction started by Begin. Domain events recorded by the
// aggregates they touch are published only after Commit succeeds.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	ProductRepository() ProductRepository
	MenuGroupRepository() MenuGroupRepository
	MenuRepository() MenuRepository
	TableRepository() TableRepository
	TableGroupRepository() TableGroupRepository
	OrderRepository() OrderRepository
}
