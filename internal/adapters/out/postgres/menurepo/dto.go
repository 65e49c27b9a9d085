// Package menurepo persists menus together with their menu products.
package menurepo

import (
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuDTO is a row of the menus table. MenuProducts are written in the same
// insert as the menu and read back ordered by Seq.
type MenuDTO struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name         string           `gorm:"type:varchar(255);not null"`
	Price        decimal.Decimal  `gorm:"type:numeric(19,2);not null"`
	MenuGroupID  uuid.UUID        `gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time        `gorm:"not null"`
	MenuProducts []MenuProductDTO `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE"`
}

func (MenuDTO) TableName() string {
	return "menus"
}

type MenuProductDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	MenuID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Seq       int       `gorm:"not null"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  int64     `gorm:"not null"`
}

func (MenuProductDTO) TableName() string {
	return "menu_products"
}

func fromDomain(m *menu.Menu) MenuDTO {
	menuID := m.ID().Bytes()
	products := make([]MenuProductDTO, 0, len(m.Products()))

	for i, mp := range m.Products() {
		products = append(products, MenuProductDTO{
			ID:        mp.ID().Bytes(),
			MenuID:    menuID,
			Seq:       i,
			ProductID: mp.ProductID().Bytes(),
			Quantity:  mp.Quantity().Value(),
		})
	}

	return MenuDTO{
		ID:           menuID,
		Name:         m.Name(),
		Price:        m.Price().Amount(),
		MenuGroupID:  m.MenuGroupID().Bytes(),
		MenuProducts: products,
	}
}

func toDomain(dto MenuDTO) (*menu.Menu, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	groupID, err := kernel.UUIDFromBytes(dto.MenuGroupID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	products := make([]menu.MenuProduct, 0, len(dto.MenuProducts))
	for _, mpDto := range dto.MenuProducts {
		mp, mpErr := menuProductToDomain(mpDto)
		if mpErr != nil {
			return nil, mpErr
		}
		products = append(products, mp)
	}

	return menu.RestoreMenu(id, dto.Name, price, groupID, products)
}

func menuProductToDomain(dto MenuProductDTO) (menu.MenuProduct, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return menu.MenuProduct{}, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return menu.MenuProduct{}, err
	}

	quantity, err := kernel.NewQuantity(dto.Quantity)
	if err != nil {
		return menu.MenuProduct{}, err
	}

	return menu.NewMenuProduct(id, productID, quantity)
}
