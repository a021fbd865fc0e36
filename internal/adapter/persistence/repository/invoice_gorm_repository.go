package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"bizops/internal/domain/entities"
	"bizops/internal/usecase/interfaces"
)

type InvoiceGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IInvoiceRepository = (*InvoiceGormRepository)(nil)

func NewInvoiceGormRepository(db *gorm.DB) *InvoiceGormRepository {
	return &InvoiceGormRepository{db: db}
}

func (r *InvoiceGormRepository) Create(ctx context.Context, invoice entities.Invoice) (entities.Invoice, error) {
	row := toInvoiceRow(invoice)
	if err := dbFrom(ctx, r.db).Create(&row).Error; err != nil {
		return entities.Invoice{}, err
	}
	return invoice, nil
}

func (r *InvoiceGormRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	var row invoiceRow
	err := dbFrom(ctx, r.db).
		Preload("LineItems", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Invoice{}, nil
	}
	if err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceRow(row), nil
}

func (r *InvoiceGormRepository) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.Invoice, error) {
	var rows []invoiceRow
	err := dbFrom(ctx, r.db).
		Preload("LineItems", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Where("estimate_id = ?", estimateID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	invoices := make([]entities.Invoice, len(rows))
	for i, row := range rows {
		invoices[i] = fromInvoiceRow(row)
	}
	return invoices, nil
}
