// Package tablerepo persists order tables and table groups.
package tablerepo

import (
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"

	"github.com/google/uuid"
)

type OrderTableDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TableGroupID   *uuid.UUID `gorm:"type:uuid;index"`
	NumberOfGuests int        `gorm:"type:int;not null"`
	Empty          bool       `gorm:"not null"`
	CreatedAt      time.Time  `gorm:"not null"`
}

func (OrderTableDTO) TableName() string {
	return "order_tables"
}

type TableGroupDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedDate time.Time `gorm:"not null"`
}

func (TableGroupDTO) TableName() string {
	return "table_groups"
}

func fromDomain(t *table.OrderTable) OrderTableDTO {
	var groupID *uuid.UUID
	if id := t.TableGroupID(); id != nil {
		raw := id.Bytes()
		groupID = &raw
	}

	return OrderTableDTO{
		ID:             t.ID().Bytes(),
		TableGroupID:   groupID,
		NumberOfGuests: t.GuestNumber().Value(),
		Empty:          t.IsEmpty(),
	}
}

func toDomain(dto OrderTableDTO) (*table.OrderTable, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var groupID *kernel.UUID
	if dto.TableGroupID != nil {
		gID, groupErr := kernel.UUIDFromBytes((*dto.TableGroupID)[:])
		if groupErr != nil {
			return nil, groupErr
		}
		groupID = &gID
	}

	guests, err := kernel.NewGuestNumber(dto.NumberOfGuests)
	if err != nil {
		return nil, err
	}

	return table.RestoreOrderTable(id, groupID, guests, dto.Empty)
}

func groupFromDomain(g *table.TableGroup) TableGroupDTO {
	return TableGroupDTO{
		ID:          g.ID().Bytes(),
		CreatedDate: g.CreatedDate(),
	}
}

func groupToDomain(dto TableGroupDTO) (*table.TableGroup, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return table.RestoreTableGroup(id, dto.CreatedDate)
}
