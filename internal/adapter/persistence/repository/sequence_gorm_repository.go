package repository

import (
	"context"

	"gorm.io/gorm"

	"bizops/internal/usecase/interfaces"
)

type DocumentSequenceGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IDocumentSequenceRepository = (*DocumentSequenceGormRepository)(nil)

func NewDocumentSequenceGormRepository(db *gorm.DB) *DocumentSequenceGormRepository {
	return &DocumentSequenceGormRepository{db: db}
}

// Next increments the named counter and returns the new value. The upsert
// runs as a single statement, so concurrent callers never see the same value.
func (r *DocumentSequenceGormRepository) Next(ctx context.Context, name string) (int64, error) {
	var value int64
	err := dbFrom(ctx, r.db).Raw(
		`INSERT INTO document_sequences (name, value) VALUES (?, 1)
		 ON CONFLICT (name) DO UPDATE SET value = document_sequences.value + 1
		 RETURNING value`,
		name,
	).Scan(&value).Error
	if err != nil {
		return 0, err
	}
	return value, nil
}
