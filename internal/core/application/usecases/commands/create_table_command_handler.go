package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/table"
)

type CreateTableCommandHandler struct {
	uowFactory TableUoWFactory
}

func NewCreateTableCommandHandler(uowFactory TableUoWFactory) CreateTableCommandHandler {
	return CreateTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists an ungrouped table with no order history.
func (h CreateTableCommandHandler) Handle(ctx context.Context, cmd CreateTableCommand) (*table.OrderTable, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	tbl, err := table.NewOrderTable(cmd.TableID(), cmd.GuestNumber(), cmd.Empty())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TableRepository().Add(ctx, tbl); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return tbl, nil
}
