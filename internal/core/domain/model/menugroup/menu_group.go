// Package menugroup holds MenuGroup, the classification label every menu belongs to.
package menugroup

import (
	"errors"
	"strings"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var ErrMenuGroupIsNotConstructed = errs.NewValueIsRequiredError("MenuGroup must be created via NewMenuGroup or RestoreMenuGroup")

type MenuGroup struct {
	id    kernel.UUID
	name  string
	guard guard.ConstructorGuard
}

func NewMenuGroup(id kernel.UUID, name string) (*MenuGroup, error) {
	g := &MenuGroup{guard: guard.NewConstructorGuard()}

	if err := errors.Join(g.setID(id), g.setName(name)); err != nil {
		return nil, err
	}

	return g, nil
}

func RestoreMenuGroup(id kernel.UUID, name string) (*MenuGroup, error) {
	return NewMenuGroup(id, name)
}

func (g *MenuGroup) Validate() error {
	if g == nil {
		return ErrMenuGroupIsNotConstructed
	}
	return g.guard.Validate(ErrMenuGroupIsNotConstructed)
}

func (g *MenuGroup) ID() kernel.UUID {
	return g.id
}

func (g *MenuGroup) Name() string {
	return g.name
}

func (g *MenuGroup) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	g.id = id
	return nil
}

func (g *MenuGroup) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	g.name = name
	return nil
}
