package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstimateStatus represents the lifecycle of an estimate.
//
// Domain notes:
//   - An estimate starts in draft and is the only document type clients approve.
//   - Content edits (line items, tax rate, validity) are gated on the current
//     status; an explicit status change is always accepted.

type EstimateStatus string

const (
	EstimateStatusDraft    EstimateStatus = "draft"
	EstimateStatusSent     EstimateStatus = "sent"
	EstimateStatusApproved EstimateStatus = "approved"
	EstimateStatusRejected EstimateStatus = "rejected"
	EstimateStatusExpired  EstimateStatus = "expired"
)

// Valid reports whether s is one of the known estimate statuses.
func (s EstimateStatus) Valid() bool {
	switch s {
	case EstimateStatusDraft, EstimateStatusSent, EstimateStatusApproved,
		EstimateStatusRejected, EstimateStatusExpired:
		return true
	}
	return false
}

// ContentEditable reports whether line items, tax rate and other content
// fields may still be changed without an accompanying status change.
func (s EstimateStatus) ContentEditable() bool {
	return s == EstimateStatusDraft || s == EstimateStatusSent
}

// LineItem is one priced row within an estimate or invoice.
//
// LineTotal is derived (Quantity * UnitPrice) and is never set independently.
// SortOrder preserves display order; it survives the estimate-to-invoice copy.
type LineItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
	SortOrder   int             `json:"sort_order"`
}

// Totals is the derived money triple carried by estimates and invoices.
//
// Invariants:
//   - Subtotal = sum of LineTotal over all line items
//   - TaxAmount = Subtotal * tax rate (zero when no rate is set)
//   - Total = Subtotal + TaxAmount
type Totals struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxAmount decimal.Decimal `json:"tax_amount"`
	Total     decimal.Decimal `json:"total"`
}

// Estimate is a quoted, not-yet-billed proposal of line items and totals.
//
// Monetary representation:
//   - All amounts are decimals (stored as decimal(18,4)); TaxRate is a
//     fraction in [0,1].
type Estimate struct {
	ID             string           `json:"id"`
	EstimateNumber string           `json:"estimate_number"`
	ClientID       string           `json:"client_id"`
	ProjectID      string           `json:"project_id,omitempty"`
	Title          string           `json:"title"`
	Description    string           `json:"description,omitempty"`
	Status         EstimateStatus   `json:"status"`
	LineItems      []LineItem       `json:"line_items"`
	TaxRate        *decimal.Decimal `json:"tax_rate,omitempty"`
	Subtotal       decimal.Decimal  `json:"subtotal"`
	TaxAmount      decimal.Decimal  `json:"tax_amount"`
	Total          decimal.Decimal  `json:"total"`
	ValidUntil     *time.Time       `json:"valid_until,omitempty"`
	CreatedBy      string           `json:"created_by"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}
