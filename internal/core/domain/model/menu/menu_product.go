package menu

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var ErrMenuProductIsNotConstructed = errs.NewValueIsRequiredError("MenuProduct must be created via NewMenuProduct")

// MenuProduct is a line item of a menu: a referenced product and how many of it
// the menu contains.
type MenuProduct struct {
	id        kernel.UUID
	productID kernel.UUID
	quantity  kernel.Quantity
	guard     guard.ConstructorGuard
}

func NewMenuProduct(id, productID kernel.UUID, quantity kernel.Quantity) (MenuProduct, error) {
	mp := MenuProduct{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		id.Validate(),
		productID.Validate(),
		quantity.Validate(),
	); err != nil {
		return MenuProduct{}, err
	}

	mp.id = id
	mp.productID = productID
	mp.quantity = quantity
	return mp, nil
}

func (mp MenuProduct) Validate() error {
	return mp.guard.Validate(ErrMenuProductIsNotConstructed)
}

func (mp MenuProduct) ID() kernel.UUID {
	return mp.id
}

func (mp MenuProduct) ProductID() kernel.UUID {
	return mp.productID
}

func (mp MenuProduct) Quantity() kernel.Quantity {
	return mp.quantity
}
