package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"bizops/internal/domain/entities"
	"bizops/internal/usecase/interfaces"
)

type EstimateGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IEstimateRepository = (*EstimateGormRepository)(nil)

func NewEstimateGormRepository(db *gorm.DB) *EstimateGormRepository {
	return &EstimateGormRepository{db: db}
}

func (r *EstimateGormRepository) Create(ctx context.Context, estimate entities.Estimate) (entities.Estimate, error) {
	row := toEstimateRow(estimate)
	if err := dbFrom(ctx, r.db).Create(&row).Error; err != nil {
		return entities.Estimate{}, err
	}
	return estimate, nil
}

func (r *EstimateGormRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	var row estimateRow
	err := dbFrom(ctx, r.db).
		Preload("LineItems", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Estimate{}, nil
	}
	if err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateRow(row), nil
}

func (r *EstimateGormRepository) Update(ctx context.Context, estimate entities.Estimate) (entities.Estimate, error) {
	db := dbFrom(ctx, r.db)
	// Line items are replaced wholesale on every update.
	if err := db.Where("estimate_id = ?", estimate.ID).Delete(&estimateLineItemRow{}).Error; err != nil {
		return entities.Estimate{}, err
	}
	row := toEstimateRow(estimate)
	items := row.LineItems
	row.LineItems = nil
	if err := db.Save(&row).Error; err != nil {
		return entities.Estimate{}, err
	}
	if len(items) > 0 {
		if err := db.Create(&items).Error; err != nil {
			return entities.Estimate{}, err
		}
	}
	return estimate, nil
}
