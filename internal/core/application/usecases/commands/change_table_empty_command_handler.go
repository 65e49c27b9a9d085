package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/core/domain/services"
)

// ChangeTableEmptyCommandHandler is the only place a table's empty flag changes.
//
// The table row is locked for update before its orders are read, so two
// concurrent requests on the same table, or a concurrent order placement, cannot
// both act on the same "no active order" answer.
type ChangeTableEmptyCommandHandler struct {
	uowFactory UoWFactory
	occupancy  services.TableOccupancy
}

func NewChangeTableEmptyCommandHandler(uowFactory UoWFactory) ChangeTableEmptyCommandHandler {
	return ChangeTableEmptyCommandHandler{
		uowFactory: uowFactory,
		occupancy:  services.NewTableOccupancy(),
	}
}

// Handle returns the updated table. Rule violations are table.ErrTableIsGrouped
// and table.ErrTableHasActiveOrder; a missing table matches ErrTableNotFound.
func (h ChangeTableEmptyCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeTableEmptyCommand,
) (*table.OrderTable, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tableRepo := uow.TableRepository()

	tbl, err := tableRepo.GetForUpdate(ctx, cmd.TableID())
	if err != nil {
		return nil, notFound(ErrTableNotFound, err)
	}

	orders, err := uow.OrderRepository().GetAllByTable(ctx, cmd.TableID())
	if err != nil {
		return nil, err
	}

	if err = h.occupancy.ChangeEmpty(tbl, orders, cmd.Empty()); err != nil {
		return nil, err
	}

	if err = tableRepo.Update(ctx, tbl); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return tbl, nil
}
