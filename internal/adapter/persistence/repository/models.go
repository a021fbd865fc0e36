package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"bizops/internal/domain/entities"
)

// Row models mirror the domain entities one table each. Money columns are
// decimal(18,4); the tax rate is a fraction, decimal(6,5).

type estimateRow struct {
	ID             string                `gorm:"type:uuid;primaryKey"`
	EstimateNumber string                `gorm:"type:varchar(30);uniqueIndex;not null"`
	ClientID       string                `gorm:"type:uuid;not null;index"`
	ProjectID      *string               `gorm:"type:uuid;index"`
	Title          string                `gorm:"type:text;not null"`
	Description    string                `gorm:"type:text"`
	Status         string                `gorm:"type:varchar(20);not null;index"`
	TaxRate        *decimal.Decimal      `gorm:"type:decimal(6,5)"`
	Subtotal       decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	TaxAmount      decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	Total          decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	ValidUntil     *time.Time
	CreatedBy      string                `gorm:"type:text;not null"`
	CreatedAt      time.Time             `gorm:"not null"`
	UpdatedAt      time.Time             `gorm:"not null"`
	LineItems      []estimateLineItemRow `gorm:"foreignKey:EstimateID;constraint:OnDelete:CASCADE"`
}

func (estimateRow) TableName() string { return "estimates" }

type estimateLineItemRow struct {
	ID          string          `gorm:"type:uuid;primaryKey"`
	EstimateID  string          `gorm:"type:uuid;not null;index"`
	Description string          `gorm:"type:text;not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	SortOrder   int             `gorm:"not null"`
}

func (estimateLineItemRow) TableName() string { return "estimate_line_items" }

type invoiceRow struct {
	ID            string               `gorm:"type:uuid;primaryKey"`
	InvoiceNumber string               `gorm:"type:varchar(30);uniqueIndex;not null"`
	EstimateID    *string              `gorm:"type:uuid;index"`
	ClientID      string               `gorm:"type:uuid;not null;index"`
	ProjectID     *string              `gorm:"type:uuid;index"`
	Title         string               `gorm:"type:text;not null"`
	Description   string               `gorm:"type:text"`
	Status        string               `gorm:"type:varchar(20);not null;index"`
	TaxRate       *decimal.Decimal     `gorm:"type:decimal(6,5)"`
	Subtotal      decimal.Decimal      `gorm:"type:decimal(18,4);not null"`
	TaxAmount     decimal.Decimal      `gorm:"type:decimal(18,4);not null"`
	Total         decimal.Decimal      `gorm:"type:decimal(18,4);not null"`
	DueDate       time.Time            `gorm:"not null"`
	CreatedBy     string               `gorm:"type:text;not null"`
	CreatedAt     time.Time            `gorm:"not null"`
	UpdatedAt     time.Time            `gorm:"not null"`
	LineItems     []invoiceLineItemRow `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

func (invoiceRow) TableName() string { return "invoices" }

type invoiceLineItemRow struct {
	ID          string          `gorm:"type:uuid;primaryKey"`
	InvoiceID   string          `gorm:"type:uuid;not null;index"`
	Description string          `gorm:"type:text;not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	SortOrder   int             `gorm:"not null"`
}

func (invoiceLineItemRow) TableName() string { return "invoice_line_items" }

type documentSequenceRow struct {
	Name  string `gorm:"type:varchar(30);primaryKey"`
	Value int64  `gorm:"not null"`
}

func (documentSequenceRow) TableName() string { return "document_sequences" }

type activityRow struct {
	ID          string            `gorm:"type:uuid;primaryKey"`
	ActorID     string            `gorm:"type:text;not null"`
	EntityType  string            `gorm:"type:text;not null;index"`
	EntityID    string            `gorm:"type:uuid;not null;index"`
	Action      string            `gorm:"type:text;not null"`
	Description string            `gorm:"type:text"`
	Metadata    datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt   time.Time         `gorm:"not null"`
}

func (activityRow) TableName() string { return "activity_log" }

// AutoMigrate creates or updates the billing tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&estimateRow{},
		&estimateLineItemRow{},
		&invoiceRow{},
		&invoiceLineItemRow{},
		&documentSequenceRow{},
		&activityRow{},
	)
}

func toEstimateRow(e entities.Estimate) estimateRow {
	items := make([]estimateLineItemRow, len(e.LineItems))
	for i, it := range e.LineItems {
		items[i] = estimateLineItemRow{
			ID:          it.ID,
			EstimateID:  e.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal,
			SortOrder:   it.SortOrder,
		}
	}
	return estimateRow{
		ID:             e.ID,
		EstimateNumber: e.EstimateNumber,
		ClientID:       e.ClientID,
		ProjectID:      optionalString(e.ProjectID),
		Title:          e.Title,
		Description:    e.Description,
		Status:         string(e.Status),
		TaxRate:        e.TaxRate,
		Subtotal:       e.Subtotal,
		TaxAmount:      e.TaxAmount,
		Total:          e.Total,
		ValidUntil:     e.ValidUntil,
		CreatedBy:      e.CreatedBy,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
		LineItems:      items,
	}
}

func fromEstimateRow(row estimateRow) entities.Estimate {
	items := make([]entities.LineItem, len(row.LineItems))
	for i, it := range row.LineItems {
		items[i] = entities.LineItem{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal,
			SortOrder:   it.SortOrder,
		}
	}
	return entities.Estimate{
		ID:             row.ID,
		EstimateNumber: row.EstimateNumber,
		ClientID:       row.ClientID,
		ProjectID:      stringValue(row.ProjectID),
		Title:          row.Title,
		Description:    row.Description,
		Status:         entities.EstimateStatus(row.Status),
		LineItems:      items,
		TaxRate:        row.TaxRate,
		Subtotal:       row.Subtotal,
		TaxAmount:      row.TaxAmount,
		Total:          row.Total,
		ValidUntil:     row.ValidUntil,
		CreatedBy:      row.CreatedBy,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

func toInvoiceRow(inv entities.Invoice) invoiceRow {
	items := make([]invoiceLineItemRow, len(inv.LineItems))
	for i, it := range inv.LineItems {
		items[i] = invoiceLineItemRow{
			ID:          it.ID,
			InvoiceID:   inv.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal,
			SortOrder:   it.SortOrder,
		}
	}
	return invoiceRow{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		EstimateID:    optionalString(inv.EstimateID),
		ClientID:      inv.ClientID,
		ProjectID:     optionalString(inv.ProjectID),
		Title:         inv.Title,
		Description:   inv.Description,
		Status:        string(inv.Status),
		TaxRate:       inv.TaxRate,
		Subtotal:      inv.Subtotal,
		TaxAmount:     inv.TaxAmount,
		Total:         inv.Total,
		DueDate:       inv.DueDate,
		CreatedBy:     inv.CreatedBy,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
		LineItems:     items,
	}
}

func fromInvoiceRow(row invoiceRow) entities.Invoice {
	items := make([]entities.LineItem, len(row.LineItems))
	for i, it := range row.LineItems {
		items[i] = entities.LineItem{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal,
			SortOrder:   it.SortOrder,
		}
	}
	return entities.Invoice{
		ID:            row.ID,
		InvoiceNumber: row.InvoiceNumber,
		EstimateID:    stringValue(row.EstimateID),
		ClientID:      row.ClientID,
		ProjectID:     stringValue(row.ProjectID),
		Title:         row.Title,
		Description:   row.Description,
		Status:        entities.InvoiceStatus(row.Status),
		LineItems:     items,
		TaxRate:       row.TaxRate,
		Subtotal:      row.Subtotal,
		TaxAmount:     row.TaxAmount,
		Total:         row.Total,
		DueDate:       row.DueDate,
		CreatedBy:     row.CreatedBy,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
