package commands

import (
	"context"
	"fmt"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/services"
	"kitchenpos/internal/pkg/errs"
)

// CreateOrderCommandHandler places orders against tables.
//
// Checks run in this order: every referenced menu exists, the table exists, the
// table is not empty. The table row is read with a shared lock, so a concurrent
// empty-state change on the same table waits until the order is committed.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	o, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrMenuNotFound), errors.Is(err, ErrTableNotFound):
//	    // dangling reference
//	case errors.Is(err, order.ErrTableIsEmpty):
//	    // seat the guests first
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	placement  services.OrderPlacement
	now        func() time.Time
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		placement:  services.NewOrderPlacement(),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handle returns the placed order, in COOKING with its line items persisted.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	menuIDs := cmd.MenuIDs()
	existing, err := uow.MenuRepository().CountExisting(ctx, menuIDs)
	if err != nil {
		return nil, err
	}
	if existing != int64(len(menuIDs)) {
		return nil, fmt.Errorf("%w: %w", ErrMenuNotFound,
			errs.NewObjectNotFoundError("menu", fmt.Sprintf("%d of %d menus", int64(len(menuIDs))-existing, len(menuIDs))))
	}

	tbl, err := uow.TableRepository().GetForShare(ctx, cmd.TableID())
	if err != nil {
		return nil, notFound(ErrTableNotFound, err)
	}

	lines := cmd.LineItems()
	lineItems := make([]order.OrderLineItem, 0, len(lines))
	for _, line := range lines {
		li, liErr := order.NewOrderLineItem(kernel.NewUUID(), line.MenuID, line.Quantity)
		if liErr != nil {
			return nil, liErr
		}
		lineItems = append(lineItems, li)
	}

	o, err := h.placement.Place(tbl, cmd.OrderID(), lineItems, h.now())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
