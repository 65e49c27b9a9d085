package queries

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListMenusQueryHandler reads menus in insertion order.
//
// Example:
//
//	handler := NewListMenusQueryHandler(db)
//	menus, err := handler.Handle(ctx, NewListMenusQuery())
type ListMenusQueryHandler struct {
	db *gorm.DB
}

func NewListMenusQueryHandler(db *gorm.DB) ListMenusQueryHandler {
	return ListMenusQueryHandler{db: db}
}

func (h ListMenusQueryHandler) Handle(ctx context.Context, query ListMenusQuery) ([]MenuResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	menus := make([]MenuResponse, 0)
	index := make(map[uuid.UUID]int)

	rows, err := db.Raw(`
		SELECT
			id,
			name,
			price,
			menu_group_id
		FROM menus
		ORDER BY created_at, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, groupID uuid.UUID
			name        string
			price       decimal.Decimal
		)
		if err = rows.Scan(&id, &name, &price, &groupID); err != nil {
			return nil, err
		}

		menuID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		menuGroupID, idErr := kernel.UUIDFromBytes(groupID[:])
		if idErr != nil {
			return nil, idErr
		}

		index[id] = len(menus)
		menus = append(menus, MenuResponse{
			ID:           menuID,
			Name:         name,
			Price:        price,
			MenuGroupID:  menuGroupID,
			MenuProducts: make([]MenuProductResponse, 0),
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	lineRows, err := db.Raw(`
		SELECT
			menu_id,
			id,
			product_id,
			quantity
		FROM menu_products
		ORDER BY menu_id, seq
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var (
			menuID, id, productID uuid.UUID
			quantity              int64
		)
		if err = lineRows.Scan(&menuID, &id, &productID, &quantity); err != nil {
			return nil, err
		}

		i, ok := index[menuID]
		if !ok {
			continue
		}

		lineID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		pID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}

		menus[i].MenuProducts = append(menus[i].MenuProducts, MenuProductResponse{
			ID:        lineID,
			ProductID: pID,
			Quantity:  quantity,
		})
	}
	if err = lineRows.Err(); err != nil {
		return nil, err
	}

	return menus, nil
}
