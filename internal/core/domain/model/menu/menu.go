package menu

import (
	"errors"
	"strings"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/ddd"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var ErrMenuIsNotConstructed = errs.NewValueIsRequiredError("Menu must be created via NewMenu or RestoreMenu")

// Menu is the aggregate root for an orderable bundle of products.
//
// Invariants:
//   - name is required and price is a valid, non-negative Price
//   - the owning menu group id is set
//   - line items are fixed at construction and keep their request order
type Menu struct {
	ddd.EventRecorder

	id          kernel.UUID
	name        string
	price       kernel.Price
	menuGroupID kernel.UUID
	products    []MenuProduct
	guard       guard.ConstructorGuard
}

// NewMenu builds a menu and records a Created event.
//
// Example:
//
//	mp, _ := menu.NewMenuProduct(kernel.NewUUID(), productID, quantity)
//	m, err := menu.NewMenu(kernel.NewUUID(), "two chickens", price, groupID, []menu.MenuProduct{mp})
func NewMenu(
	id kernel.UUID,
	name string,
	price kernel.Price,
	menuGroupID kernel.UUID,
	products []MenuProduct,
) (*Menu, error) {
	m, err := build(id, name, price, menuGroupID, products)
	if err != nil {
		return nil, err
	}

	m.Raise(newCreated(m))
	return m, nil
}

// RestoreMenu rebuilds a menu loaded from storage without recording events.
func RestoreMenu(
	id kernel.UUID,
	name string,
	price kernel.Price,
	menuGroupID kernel.UUID,
	products []MenuProduct,
) (*Menu, error) {
	return build(id, name, price, menuGroupID, products)
}

func build(
	id kernel.UUID,
	name string,
	price kernel.Price,
	menuGroupID kernel.UUID,
	products []MenuProduct,
) (*Menu, error) {
	m := &Menu{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setPrice(price),
		m.setMenuGroupID(menuGroupID),
		m.setProducts(products),
	); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Menu) Validate() error {
	if m == nil {
		return ErrMenuIsNotConstructed
	}
	return m.guard.Validate(ErrMenuIsNotConstructed)
}

func (m *Menu) ID() kernel.UUID {
	return m.id
}

func (m *Menu) Name() string {
	return m.name
}

func (m *Menu) Price() kernel.Price {
	return m.price
}

func (m *Menu) MenuGroupID() kernel.UUID {
	return m.menuGroupID
}

// Products returns a copy of the line items in their original order.
func (m *Menu) Products() []MenuProduct {
	out := make([]MenuProduct, len(m.products))
	copy(out, m.products)
	return out
}

func (m *Menu) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Menu) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *Menu) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	m.price = price
	return nil
}

func (m *Menu) setMenuGroupID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("menu group id", err)
	}
	m.menuGroupID = id
	return nil
}

func (m *Menu) setProducts(products []MenuProduct) error {
	for _, mp := range products {
		if err := mp.Validate(); err != nil {
			return err
		}
	}
	m.products = make([]MenuProduct, len(products))
	copy(m.products, products)
	return nil
}
