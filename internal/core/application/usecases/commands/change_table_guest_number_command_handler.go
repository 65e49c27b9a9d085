package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/table"
)

type ChangeTableGuestNumberCommandHandler struct {
	uowFactory TableUoWFactory
}

func NewChangeTableGuestNumberCommandHandler(uowFactory TableUoWFactory) ChangeTableGuestNumberCommandHandler {
	return ChangeTableGuestNumberCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle sets the guest count of an occupied table. An empty table fails with
// table.ErrGuestChangeOnEmptyTable.
func (h ChangeTableGuestNumberCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeTableGuestNumberCommand,
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

	if err = tbl.ChangeGuestNumber(cmd.GuestNumber()); err != nil {
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
