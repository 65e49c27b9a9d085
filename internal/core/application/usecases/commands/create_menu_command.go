package commands

import (
	"errors"
	"fmt"
	"strings"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateMenuCommandIsNotConstructed = errors.New(
	"CreateMenuCommand must be created via NewCreateMenuCommand constructor",
)

// MenuProductInput is one requested line item of a new menu.
type MenuProductInput struct {
	ProductID kernel.UUID
	Quantity  *int64
}

// MenuProductLine is a validated MenuProductInput.
type MenuProductLine struct {
	ProductID kernel.UUID
	Quantity  kernel.Quantity
}

// CreateMenuCommand is a request to build a menu from existing products.
//
// Example:
//
//	price := decimal.NewFromInt(19000)
//	qty := int64(2)
//	cmd, err := NewCreateMenuCommand(kernel.NewUUID(), "two chickens", &price, groupID,
//	    []MenuProductInput{{ProductID: productID, Quantity: &qty}})
type CreateMenuCommand struct { //nolint:recvcheck //using for validation
	menuID      kernel.UUID
	name        string
	price       kernel.Price
	menuGroupID kernel.UUID
	products    []MenuProductLine

	guard guard.ConstructorGuard
}

// NewCreateMenuCommand validates every scalar of the request. Price and quantities
// go through their value object factories, so a nil price or quantity fails with
// errs.ErrValueIsRequired.
func NewCreateMenuCommand(
	menuID kernel.UUID,
	name string,
	price *decimal.Decimal,
	menuGroupID kernel.UUID,
	products []MenuProductInput,
) (CreateMenuCommand, error) {
	cmd := CreateMenuCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMenuID(menuID),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setMenuGroupID(menuGroupID),
		cmd.setProducts(products),
	); err != nil {
		return CreateMenuCommand{}, err
	}

	return cmd, nil
}

func (c CreateMenuCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuCommandIsNotConstructed)
}

func (c CreateMenuCommand) MenuID() kernel.UUID {
	return c.menuID
}

func (c CreateMenuCommand) Name() string {
	return c.name
}

func (c CreateMenuCommand) Price() kernel.Price {
	return c.price
}

func (c CreateMenuCommand) MenuGroupID() kernel.UUID {
	return c.menuGroupID
}

// Products returns the requested line items in request order.
func (c CreateMenuCommand) Products() []MenuProductLine {
	out := make([]MenuProductLine, len(c.products))
	copy(out, c.products)
	return out
}

func (c *CreateMenuCommand) setMenuID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.menuID = id
	return nil
}

func (c *CreateMenuCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateMenuCommand) setPrice(raw *decimal.Decimal) error {
	price, err := kernel.PriceFrom(raw)
	if err != nil {
		return err
	}
	c.price = price
	return nil
}

func (c *CreateMenuCommand) setMenuGroupID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("menu group id", err)
	}
	c.menuGroupID = id
	return nil
}

func (c *CreateMenuCommand) setProducts(inputs []MenuProductInput) error {
	lines := make([]MenuProductLine, 0, len(inputs))
	var failures []error

	for i, in := range inputs {
		if err := in.ProductID.Validate(); err != nil {
			failures = append(failures, fmt.Errorf("menu product %d: %w", i, err))
			continue
		}

		qty, err := kernel.QuantityFrom(in.Quantity)
		if err != nil {
			failures = append(failures, fmt.Errorf("menu product %d: %w", i, err))
			continue
		}

		lines = append(lines, MenuProductLine{ProductID: in.ProductID, Quantity: qty})
	}

	if len(failures) > 0 {
		return errors.Join(failures...)
	}

	c.products = lines
	return nil
}
