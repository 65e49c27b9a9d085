package tablerepo

import (
	"context"
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTableRepository implements ports.TableRepository using GORM. The locking
// reads rely on the surrounding transaction; outside one the lock is released as
// soon as the statement completes.
type GormTableRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormTableRepository(db *gorm.DB, tracker aggregateTracker) *GormTableRepository {
	return &GormTableRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormTableRepository) Add(ctx context.Context, aggregate *table.OrderTable) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the mutable columns of the table. A map is used so that false
// and zero values are written too.
func (r *GormTableRepository) Update(ctx context.Context, aggregate *table.OrderTable) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderTableDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"table_group_id":   dto.TableGroupID,
			"number_of_guests": dto.NumberOfGuests,
			"empty":            dto.Empty,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order table", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormTableRepository) Get(ctx context.Context, id kernel.UUID) (*table.OrderTable, error) {
	return r.get(ctx, r.db, id)
}

func (r *GormTableRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*table.OrderTable, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormTableRepository) GetForShare(ctx context.Context, id kernel.UUID) (*table.OrderTable, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "SHARE"}), id)
}

func (r *GormTableRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*table.OrderTable, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderTableDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order table", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GormTableGroupRepository implements ports.TableGroupRepository using GORM.
type GormTableGroupRepository struct {
	db *gorm.DB
}

func NewGormTableGroupRepository(db *gorm.DB) *GormTableGroupRepository {
	return &GormTableGroupRepository{db: db}
}

func (r *GormTableGroupRepository) Add(ctx context.Context, aggregate *table.TableGroup) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := groupFromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormTableGroupRepository) Get(ctx context.Context, id kernel.UUID) (*table.TableGroup, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TableGroupDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("table group", id.String())
		}
		return nil, err
	}

	return groupToDomain(dto)
}
