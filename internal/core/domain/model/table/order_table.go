package table

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/ddd"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var ErrOrderTableIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderTable must be created via NewOrderTable or RestoreOrderTable")

// OrderTable is a physical seating unit that orders are placed against.
//
// The empty flag and the guest count are mutated only through ChangeEmpty and
// ChangeGuestNumber. Group membership is assigned when the table group is formed
// and is only consulted here.
type OrderTable struct {
	ddd.EventRecorder

	id           kernel.UUID
	tableGroupID *kernel.UUID
	guestNumber  kernel.GuestNumber
	empty        bool
	guard        guard.ConstructorGuard
}

// NewOrderTable creates an ungrouped table in the state chosen by the caller.
func NewOrderTable(id kernel.UUID, guestNumber kernel.GuestNumber, empty bool) (*OrderTable, error) {
	return RestoreOrderTable(id, nil, guestNumber, empty)
}

// RestoreOrderTable rebuilds a table loaded from storage. tableGroupID is nil for
// ungrouped tables.
func RestoreOrderTable(
	id kernel.UUID,
	tableGroupID *kernel.UUID,
	guestNumber kernel.GuestNumber,
	empty bool,
) (*OrderTable, error) {
	t := &OrderTable{
		empty: empty,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setTableGroupID(tableGroupID),
		t.setGuestNumber(guestNumber),
	); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *OrderTable) Validate() error {
	if t == nil {
		return ErrOrderTableIsNotConstructed
	}
	return t.guard.Validate(ErrOrderTableIsNotConstructed)
}

func (t *OrderTable) ID() kernel.UUID {
	return t.id
}

// TableGroupID returns the group the table belongs to, or nil.
func (t *OrderTable) TableGroupID() *kernel.UUID {
	if t.tableGroupID == nil {
		return nil
	}
	id := *t.tableGroupID
	return &id
}

// IsGrouped reports whether the table belongs to a table group. A grouped table
// cannot change its empty state.
func (t *OrderTable) IsGrouped() bool {
	return t.tableGroupID != nil
}

func (t *OrderTable) GuestNumber() kernel.GuestNumber {
	return t.guestNumber
}

func (t *OrderTable) IsEmpty() bool {
	return t.empty
}

// ChangeEmpty sets the empty flag. The grouped-table rule is checked before the
// active-order rule, so a grouped table always reports ErrTableIsGrouped.
//
// Parameters:
//   - empty: the requested state
//   - hasActiveOrder: whether any order of the table is not yet in Completion,
//     as read by the caller inside the same transaction
//
// Returns:
//   - nil when the flag is set; an EmptyChanged event is raised only when the
//     value actually changes
//   - ErrTableIsGrouped or ErrTableHasActiveOrder otherwise
//
// Example:
//
//	// orders were read under the table's row lock
//	if err := tbl.ChangeEmpty(true, hasActiveOrder); err != nil {
//	    return nil, err
//	}
func (t *OrderTable) ChangeEmpty(empty, hasActiveOrder bool) error {
	if t.IsGrouped() {
		return ErrTableIsGrouped
	}

	if hasActiveOrder {
		return ErrTableHasActiveOrder
	}

	if t.empty == empty {
		return nil
	}

	t.empty = empty
	t.Raise(newEmptyChanged(t))
	return nil
}

// ChangeGuestNumber sets the guest count of an occupied table.
//
// Returns:
//   - nil and a GuestsChanged event when the table is occupied
//   - ErrGuestChangeOnEmptyTable when the table is empty
//   - kernel.ErrGuestNumberIsNotConstructed for a zero-value guestNumber
func (t *OrderTable) ChangeGuestNumber(guestNumber kernel.GuestNumber) error {
	if err := guestNumber.Validate(); err != nil {
		return err
	}

	if t.empty {
		return ErrGuestChangeOnEmptyTable
	}

	t.guestNumber = guestNumber
	t.Raise(newGuestsChanged(t))
	return nil
}

func (t *OrderTable) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *OrderTable) setTableGroupID(id *kernel.UUID) error {
	if id == nil {
		t.tableGroupID = nil
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("table group id", err)
	}
	groupID := *id
	t.tableGroupID = &groupID
	return nil
}

func (t *OrderTable) setGuestNumber(guestNumber kernel.GuestNumber) error {
	if err := guestNumber.Validate(); err != nil {
		return err
	}
	t.guestNumber = guestNumber
	return nil
}
