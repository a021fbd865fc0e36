package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the billing state of an invoice.
//
// Conversion always produces a draft invoice; later states are owned by the
// accounting flow.

type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// Invoice is a billing document, usually derived from an approved estimate.
//
// EstimateID is a traceability back-reference only: the invoice does not own
// the estimate and is never written back into it.
type Invoice struct {
	ID            string           `json:"id"`
	InvoiceNumber string           `json:"invoice_number"`
	EstimateID    string           `json:"estimate_id,omitempty"`
	ClientID      string           `json:"client_id"`
	ProjectID     string           `json:"project_id,omitempty"`
	Title         string           `json:"title"`
	Description   string           `json:"description,omitempty"`
	Status        InvoiceStatus    `json:"status"`
	LineItems     []LineItem       `json:"line_items"`
	TaxRate       *decimal.Decimal `json:"tax_rate,omitempty"`
	Subtotal      decimal.Decimal  `json:"subtotal"`
	TaxAmount     decimal.Decimal  `json:"tax_amount"`
	Total         decimal.Decimal  `json:"total"`
	DueDate       time.Time        `json:"due_date"`
	CreatedBy     string           `json:"created_by"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}
