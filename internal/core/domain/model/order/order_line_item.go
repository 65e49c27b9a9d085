package order

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

// ErrOrderLineItemIsNotConstructed is returned when validating a zero-value OrderLineItem.
var ErrOrderLineItemIsNotConstructed = errs.NewValueIsRequiredError("OrderLineItem must be created via NewOrderLineItem")

// OrderLineItem pairs a menu with the number of servings ordered. Several line
// items of one order may reference the same menu.
type OrderLineItem struct {
	id       kernel.UUID
	menuID   kernel.UUID
	quantity kernel.Quantity
	guard    guard.ConstructorGuard
}

// NewOrderLineItem creates a line item for an existing menu. The menu reference is
// not resolved here; the caller checks it against the menu repository.
//
// Returns:
//   - OrderLineItem: a valid line item
//   - error: joined validation errors when any argument is a zero value
//
// Example:
//
//	qty, _ := kernel.NewQuantity(2)
//	item, err := order.NewOrderLineItem(kernel.NewUUID(), menuID, qty)
func NewOrderLineItem(id, menuID kernel.UUID, quantity kernel.Quantity) (OrderLineItem, error) {
	if err := errors.Join(
		id.Validate(),
		menuID.Validate(),
		quantity.Validate(),
	); err != nil {
		return OrderLineItem{}, err
	}

	return OrderLineItem{
		id:       id,
		menuID:   menuID,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (li OrderLineItem) Validate() error {
	return li.guard.Validate(ErrOrderLineItemIsNotConstructed)
}

func (li OrderLineItem) ID() kernel.UUID {
	return li.id
}

func (li OrderLineItem) MenuID() kernel.UUID {
	return li.menuID
}

func (li OrderLineItem) Quantity() kernel.Quantity {
	return li.quantity
}
