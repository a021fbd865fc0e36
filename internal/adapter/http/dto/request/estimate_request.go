package request

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNoLineItems     = errors.New("at least one line item is required")
	ErrInvalidLineItem = errors.New("invalid line item")
)

// LineItemRequest is one priced row in a create or update payload.
//
// line_total is intentionally absent: it is derived server-side and never
// accepted from callers.
type LineItemRequest struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateEstimateRequest is the POST /estimates payload.
type CreateEstimateRequest struct {
	ClientID    string            `json:"client_id" binding:"required"`
	ProjectID   string            `json:"project_id"`
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description"`
	LineItems   []LineItemRequest `json:"line_items"`
	TaxRate     *decimal.Decimal  `json:"tax_rate"`
	ValidUntil  *time.Time        `json:"valid_until"`
}

// Validate performs the structural checks that do not need domain state.
// Business-rule validation (tax-rate range, per-item amounts) lives in the
// use case.
func (r CreateEstimateRequest) Validate() error {
	if len(r.LineItems) == 0 {
		return ErrNoLineItems
	}
	for _, it := range r.LineItems {
		if strings.TrimSpace(it.Description) == "" {
			return ErrInvalidLineItem
		}
	}
	return nil
}

// UpdateEstimateRequest is the PATCH /estimates/:id payload. Absent fields are
// left untouched; a present line_items array replaces all existing rows.
type UpdateEstimateRequest struct {
	Title       *string           `json:"title"`
	Description *string           `json:"description"`
	LineItems   []LineItemRequest `json:"line_items"`
	TaxRate     *decimal.Decimal  `json:"tax_rate"`
	ValidUntil  *time.Time        `json:"valid_until"`
	Status      *string           `json:"status"`
}

// Empty reports whether the patch carries no changes at all.
func (r UpdateEstimateRequest) Empty() bool {
	return r.Title == nil && r.Description == nil && r.LineItems == nil &&
		r.TaxRate == nil && r.ValidUntil == nil && r.Status == nil
}
