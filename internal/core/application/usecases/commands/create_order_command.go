package commands

import (
	"errors"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLineItemInput is one requested line item of a new order.
type OrderLineItemInput struct {
	MenuID   kernel.UUID
	Quantity *int64
}

// OrderLine is a validated OrderLineItemInput.
type OrderLine struct {
	MenuID   kernel.UUID
	Quantity kernel.Quantity
}

// CreateOrderCommand represents a request to place an order against a table.
//
// Example:
//
//	qty := int64(1)
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), tableID,
//	    []OrderLineItemInput{{MenuID: menuID, Quantity: &qty}})
//	if errors.Is(err, order.ErrOrderLineItemsEmpty) {
//	    // nothing to order
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	tableID   kernel.UUID
	lineItems []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand fails with order.ErrOrderLineItemsEmpty when no line item
// is requested, whatever the state of the table. The same menu may appear in
// several line items.
func NewCreateOrderCommand(
	orderID, tableID kernel.UUID,
	lineItems []OrderLineItemInput,
) (CreateOrderCommand, error) {
	if len(lineItems) == 0 {
		return CreateOrderCommand{}, order.ErrOrderLineItemsEmpty
	}

	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTableID(tableID),
		cmd.setLineItems(lineItems),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) TableID() kernel.UUID {
	return c.tableID
}

// LineItems returns the requested line items in request order.
func (c CreateOrderCommand) LineItems() []OrderLine {
	out := make([]OrderLine, len(c.lineItems))
	copy(out, c.lineItems)
	return out
}

// MenuIDs returns the distinct menu ids referenced by the line items.
func (c CreateOrderCommand) MenuIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(c.lineItems))
	ids := make([]kernel.UUID, 0, len(c.lineItems))
	for _, li := range c.lineItems {
		if _, ok := seen[li.MenuID]; ok {
			continue
		}
		seen[li.MenuID] = struct{}{}
		ids = append(ids, li.MenuID)
	}
	return ids
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setTableID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.tableID = id
	return nil
}

func (c *CreateOrderCommand) setLineItems(inputs []OrderLineItemInput) error {
	lines := make([]OrderLine, 0, len(inputs))
	var failures []error

	for i, in := range inputs {
		if err := in.MenuID.Validate(); err != nil {
			failures = append(failures, fmt.Errorf("order line item %d: %w", i, err))
			continue
		}

		qty, err := kernel.QuantityFrom(in.Quantity)
		if err != nil {
			failures = append(failures, fmt.Errorf("order line item %d: %w", i, err))
			continue
		}

		lines = append(lines, OrderLine{MenuID: in.MenuID, Quantity: qty})
	}

	if len(failures) > 0 {
		return errors.Join(failures...)
	}

	c.lineItems = lines
	return nil
}
