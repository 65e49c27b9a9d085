package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var ErrCreateTableCommandIsNotConstructed = errors.New(
	"CreateTableCommand must be created via NewCreateTableCommand constructor",
)

// CreateTableCommand registers a new table in the state chosen by the caller.
type CreateTableCommand struct { //nolint:recvcheck //using for validation
	tableID     kernel.UUID
	guestNumber kernel.GuestNumber
	empty       bool

	guard guard.ConstructorGuard
}

func NewCreateTableCommand(tableID kernel.UUID, guestNumber *int, empty bool) (CreateTableCommand, error) {
	cmd := CreateTableCommand{
		empty: empty,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTableID(tableID),
		cmd.setGuestNumber(guestNumber),
	); err != nil {
		return CreateTableCommand{}, err
	}

	return cmd, nil
}

func (c CreateTableCommand) Validate() error {
	return c.guard.Validate(ErrCreateTableCommandIsNotConstructed)
}

func (c CreateTableCommand) TableID() kernel.UUID {
	return c.tableID
}

func (c CreateTableCommand) GuestNumber() kernel.GuestNumber {
	return c.guestNumber
}

func (c CreateTableCommand) Empty() bool {
	return c.empty
}

func (c *CreateTableCommand) setTableID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.tableID = id
	return nil
}

func (c *CreateTableCommand) setGuestNumber(raw *int) error {
	g, err := kernel.GuestNumberFrom(raw)
	if err != nil {
		return err
	}
	c.guestNumber = g
	return nil
}
