package queries

import (
	"context"

	"kitchenpos/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetKitchenLoadQueryHandler struct {
	db *gorm.DB
}

func NewGetKitchenLoadQueryHandler(db *gorm.DB) GetKitchenLoadQueryHandler {
	return GetKitchenLoadQueryHandler{db: db}
}

func (h GetKitchenLoadQueryHandler) Handle(ctx context.Context, query GetKitchenLoadQuery) (KitchenLoadResponse, error) {
	var load KitchenLoadResponse

	if err := query.Validate(); err != nil {
		return load, err
	}

	db := h.db.WithContext(ctx)

	rows, err := db.Raw(`
		SELECT order_status, COUNT(*)
		FROM orders
		GROUP BY order_status
	`).Rows()
	if err != nil {
		return load, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			name  string
			total int64
		)
		if err = rows.Scan(&name, &total); err != nil {
			return load, err
		}

		status, parseErr := order.ParseStatus(name)
		if parseErr != nil {
			return load, parseErr
		}

		switch status {
		case order.Cooking:
			load.Cooking = total
		case order.Meal:
			load.Meal = total
		case order.Completion:
			load.Completion = total
		case order.Unknown:
		}
	}
	if err = rows.Err(); err != nil {
		return load, err
	}

	// SUM over an empty table is NULL, hence COALESCE.
	if err = db.Raw(`
		SELECT
			COALESCE(SUM(CASE WHEN empty THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN empty THEN 0 ELSE 1 END), 0)
		FROM order_tables
	`).Row().Scan(&load.EmptyTables, &load.OccupiedTables); err != nil {
		return load, err
	}

	return load, nil
}
