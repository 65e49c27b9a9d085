package queries

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListTablesQueryHandler struct {
	db *gorm.DB
}

func NewListTablesQueryHandler(db *gorm.DB) ListTablesQueryHandler {
	return ListTablesQueryHandler{db: db}
}

// Handle returns every table in insertion order.
func (h ListTablesQueryHandler) Handle(ctx context.Context, query ListTablesQuery) ([]TableResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tables := make([]TableResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			table_group_id,
			number_of_guests,
			empty
		FROM order_tables
		ORDER BY created_at, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id      uuid.UUID
			groupID uuid.NullUUID
			resp    TableResponse
		)
		if err = rows.Scan(&id, &groupID, &resp.NumberOfGuests, &resp.Empty); err != nil {
			return nil, err
		}

		tableID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = tableID

		if groupID.Valid {
			gID, groupErr := kernel.UUIDFromBytes(groupID.UUID[:])
			if groupErr != nil {
				return nil, groupErr
			}
			resp.TableGroupID = &gID
		}

		tables = append(tables, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tables, nil
}
