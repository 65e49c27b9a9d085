package order

import (
	"errors"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/ddd"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order was not created through
// NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errs.NewValueIsRequiredError("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root of the order lifecycle. It belongs to exactly one
// table and owns an ordered list of line items.
//
// Order follows these invariants:
//   - it has at least one line item, fixed at creation
//   - it starts in Cooking with the time it was placed
//   - only the status changes afterwards, and never once Completion is reached
//
// Whether the table may accept the order is not decided here; see
// services.OrderPlacement.
type Order struct {
	ddd.EventRecorder

	id           kernel.UUID
	orderTableID kernel.UUID
	status       Status
	orderedTime  time.Time
	lineItems    []OrderLineItem
	guard        guard.ConstructorGuard
}

// NewOrder creates an order in Cooking status placed at orderedTime and records a
// Placed event.
//
// Returns ErrOrderLineItemsEmpty when lineItems is empty, before any other check.
//
// Example:
//
//	qty, _ := kernel.NewQuantity(2)
//	item, _ := order.NewOrderLineItem(kernel.NewUUID(), menuID, qty)
//	o, err := order.NewOrder(kernel.NewUUID(), tableID, []order.OrderLineItem{item}, time.Now())
func NewOrder(id, orderTableID kernel.UUID, lineItems []OrderLineItem, orderedTime time.Time) (*Order, error) {
	if len(lineItems) == 0 {
		return nil, ErrOrderLineItemsEmpty
	}

	o, err := build(id, orderTableID, Cooking, orderedTime, lineItems)
	if err != nil {
		return nil, err
	}

	o.Raise(newPlaced(o))
	return o, nil
}

// RestoreOrder rebuilds an order loaded from storage without recording events.
func RestoreOrder(
	id, orderTableID kernel.UUID,
	status Status,
	orderedTime time.Time,
	lineItems []OrderLineItem,
) (*Order, error) {
	return build(id, orderTableID, status, orderedTime, lineItems)
}

func build(
	id, orderTableID kernel.UUID,
	status Status,
	orderedTime time.Time,
	lineItems []OrderLineItem,
) (*Order, error) {
	o := &Order{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		o.setID(id),
		o.setOrderTableID(orderTableID),
		o.setStatus(status),
		o.setOrderedTime(orderedTime),
		o.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate returns ErrOrderIsNotConstructed for a nil or zero-value Order.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) OrderTableID() kernel.UUID {
	return o.orderTableID
}

func (o *Order) Status() Status {
	return o.status
}

// OrderedTime is the moment the order was placed, as given to NewOrder.
func (o *Order) OrderedTime() time.Time {
	return o.orderedTime
}

// LineItems returns a copy of the line items in their original order.
func (o *Order) LineItems() []OrderLineItem {
	out := make([]OrderLineItem, len(o.lineItems))
	copy(out, o.lineItems)
	return out
}

// IsActive reports whether the order still blocks empty-state changes of its table.
func (o *Order) IsActive() bool {
	return o.status.IsActive()
}

// ChangeStatus overwrites the status. Any known status is accepted while the order
// is active; once the order is in Completion it fails with ErrOrderAlreadyCompleted.
// Line items are untouched.
func (o *Order) ChangeStatus(status Status) error {
	if o.status == Completion {
		return ErrOrderAlreadyCompleted
	}

	if err := status.Validate(); err != nil {
		return err
	}

	previous := o.status
	o.status = status
	o.Raise(newStatusChanged(o, previous))
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderTableID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order table id", err)
	}
	o.orderTableID = id
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setOrderedTime(orderedTime time.Time) error {
	if orderedTime.IsZero() {
		return errs.NewValueIsRequiredError("ordered time")
	}
	o.orderedTime = orderedTime
	return nil
}

func (o *Order) setLineItems(lineItems []OrderLineItem) error {
	for _, li := range lineItems {
		if err := li.Validate(); err != nil {
			return err
		}
	}
	o.lineItems = make([]OrderLineItem, len(lineItems))
	copy(o.lineItems, lineItems)
	return nil
}
