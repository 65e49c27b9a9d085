package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
)

// CreateMenuCommandHandler builds a menu from existing products.
//
// Every referenced product is resolved first, then the menu group; any miss aborts
// the whole operation and nothing is written. The menu and its line items are
// inserted in the same transaction.
type CreateMenuCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewCreateMenuCommandHandler(uowFactory MenuUoWFactory) CreateMenuCommandHandler {
	return CreateMenuCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the created menu. Errors match ErrProductNotFound or
// ErrMenuGroupNotFound for dangling references.
func (h CreateMenuCommandHandler) Handle(ctx context.Context, cmd CreateMenuCommand) (*menu.Menu, error) {
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

	productRepo := uow.ProductRepository()
	lines := cmd.Products()
	menuProducts := make([]menu.MenuProduct, 0, len(lines))

	for _, line := range lines {
		if _, err := productRepo.Get(ctx, line.ProductID); err != nil {
			return nil, notFound(ErrProductNotFound, err)
		}

		mp, err := menu.NewMenuProduct(kernel.NewUUID(), line.ProductID, line.Quantity)
		if err != nil {
			return nil, err
		}
		menuProducts = append(menuProducts, mp)
	}

	if _, err := uow.MenuGroupRepository().Get(ctx, cmd.MenuGroupID()); err != nil {
		return nil, notFound(ErrMenuGroupNotFound, err)
	}

	m, err := menu.NewMenu(cmd.MenuID(), cmd.Name(), cmd.Price(), cmd.MenuGroupID(), menuProducts)
	if err != nil {
		return nil, err
	}

	if err = uow.MenuRepository().Add(ctx, m); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return m, nil
}
