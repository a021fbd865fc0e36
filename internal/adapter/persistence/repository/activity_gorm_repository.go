package repository

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"bizops/internal/domain/entities"
	"bizops/internal/usecase/interfaces"
)

type ActivityGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IActivityRepository = (*ActivityGormRepository)(nil)

func NewActivityGormRepository(db *gorm.DB) *ActivityGormRepository {
	return &ActivityGormRepository{db: db}
}

func (r *ActivityGormRepository) Append(ctx context.Context, entry entities.ActivityEntry) error {
	row := activityRow{
		ID:          entry.ID,
		ActorID:     entry.ActorID,
		EntityType:  entry.EntityType,
		EntityID:    entry.EntityID,
		Action:      entry.Action,
		Description: entry.Description,
		Metadata:    datatypes.JSONMap(entry.Metadata),
		CreatedAt:   entry.CreatedAt,
	}
	return dbFrom(ctx, r.db).Create(&row).Error
}
