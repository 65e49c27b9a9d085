package table

import (
	"errors"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var ErrTableGroupIsNotConstructed = errs.NewValueIsRequiredError(
	"TableGroup must be created via NewTableGroup or RestoreTableGroup")

// TableGroup is the grouping token tables reference by id.
type TableGroup struct {
	id          kernel.UUID
	createdDate time.Time
	guard       guard.ConstructorGuard
}

func NewTableGroup(id kernel.UUID, createdDate time.Time) (*TableGroup, error) {
	g := &TableGroup{guard: guard.NewConstructorGuard()}

	var dateErr error
	if createdDate.IsZero() {
		dateErr = errs.NewValueIsRequiredError("created date")
	}

	if err := errors.Join(id.Validate(), dateErr); err != nil {
		return nil, err
	}

	g.id = id
	g.createdDate = createdDate
	return g, nil
}

func RestoreTableGroup(id kernel.UUID, createdDate time.Time) (*TableGroup, error) {
	return NewTableGroup(id, createdDate)
}

func (g *TableGroup) Validate() error {
	if g == nil {
		return ErrTableGroupIsNotConstructed
	}
	return g.guard.Validate(ErrTableGroupIsNotConstructed)
}

func (g *TableGroup) ID() kernel.UUID {
	return g.id
}

func (g *TableGroup) CreatedDate() time.Time {
	return g.createdDate
}
