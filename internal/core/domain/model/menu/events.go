package menu

import (
	"kitchenpos/internal/pkg/ddd"
)

const CreatedEventName = "kitchenpos.menu.created"

// Created is raised when a new menu is built.
type Created struct {
	ddd.BaseEvent

	MenuID      string   `json:"menu_id"`
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	MenuGroupID string   `json:"menu_group_id"`
	ProductIDs  []string `json:"product_ids"`
}

func newCreated(m *Menu) Created {
	ids := make([]string, 0, len(m.products))
	for _, mp := range m.products {
		ids = append(ids, mp.productID.String())
	}

	return Created{
		BaseEvent:   ddd.NewBaseEvent(CreatedEventName),
		MenuID:      m.id.String(),
		Name:        m.name,
		Price:       m.price.Amount().String(),
		MenuGroupID: m.menuGroupID.String(),
		ProductIDs:  ids,
	}
}
