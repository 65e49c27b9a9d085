package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var ErrChangeTableGuestNumberCommandIsNotConstructed = errors.New(
	"ChangeTableGuestNumberCommand must be created via NewChangeTableGuestNumberCommand constructor",
)

type ChangeTableGuestNumberCommand struct { //nolint:recvcheck //using for validation
	tableID     kernel.UUID
	guestNumber kernel.GuestNumber

	guard guard.ConstructorGuard
}

func NewChangeTableGuestNumberCommand(tableID kernel.UUID, guestNumber *int) (ChangeTableGuestNumberCommand, error) {
	cmd := ChangeTableGuestNumberCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTableID(tableID),
		cmd.setGuestNumber(guestNumber),
	); err != nil {
		return ChangeTableGuestNumberCommand{}, err
	}

	return cmd, nil
}

func (c ChangeTableGuestNumberCommand) Validate() error {
	return c.guard.Validate(ErrChangeTableGuestNumberCommandIsNotConstructed)
}

func (c ChangeTableGuestNumberCommand) TableID() kernel.UUID {
	return c.tableID
}

func (c ChangeTableGuestNumberCommand) GuestNumber() kernel.GuestNumber {
	return c.guestNumber
}

func (c *ChangeTableGuestNumberCommand) setTableID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.tableID = id
	return nil
}

func (c *ChangeTableGuestNumberCommand) setGuestNumber(raw *int) error {
	g, err := kernel.GuestNumberFrom(raw)
	if err != nil {
		return err
	}
	c.guestNumber = g
	return nil
}
