package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var ErrChangeTableEmptyCommandIsNotConstructed = errors.New(
	"ChangeTableEmptyCommand must be created via NewChangeTableEmptyCommand constructor",
)

// ChangeTableEmptyCommand marks a table empty or occupied. A nil empty flag is
// treated as absent input.
type ChangeTableEmptyCommand struct { //nolint:recvcheck //using for validation
	tableID kernel.UUID
	empty   bool

	guard guard.ConstructorGuard
}

func NewChangeTableEmptyCommand(tableID kernel.UUID, empty *bool) (ChangeTableEmptyCommand, error) {
	cmd := ChangeTableEmptyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTableID(tableID),
		cmd.setEmpty(empty),
	); err != nil {
		return ChangeTableEmptyCommand{}, err
	}

	return cmd, nil
}

func (c ChangeTableEmptyCommand) Validate() error {
	return c.guard.Validate(ErrChangeTableEmptyCommandIsNotConstructed)
}

func (c ChangeTableEmptyCommand) TableID() kernel.UUID {
	return c.tableID
}

func (c ChangeTableEmptyCommand) Empty() bool {
	return c.empty
}

func (c *ChangeTableEmptyCommand) setTableID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.tableID = id
	return nil
}

func (c *ChangeTableEmptyCommand) setEmpty(empty *bool) error {
	if empty == nil {
		return errs.NewValueIsRequiredError("empty")
	}
	c.empty = *empty
	return nil
}
