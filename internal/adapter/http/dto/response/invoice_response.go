package response

import (
	"time"

	"github.com/shopspring/decimal"

	"bizops/internal/domain/entities"
)

type InvoiceResponse struct {
	ID            string             `json:"id"`
	InvoiceNumber string             `json:"invoice_number"`
	EstimateID    string             `json:"estimate_id,omitempty"`
	ClientID      string             `json:"client_id"`
	ProjectID     string             `json:"project_id,omitempty"`
	Title         string             `json:"title"`
	Description   string             `json:"description,omitempty"`
	Status        string             `json:"status"`
	LineItems     []LineItemResponse `json:"line_items"`
	TaxRate       *decimal.Decimal   `json:"tax_rate,omitempty"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	TaxAmount     decimal.Decimal    `json:"tax_amount"`
	Total         decimal.Decimal    `json:"total"`
	DueDate       time.Time          `json:"due_date"`
	CreatedBy     string             `json:"created_by"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// ConversionResponse is the body returned by POST /estimates/:id/convert.
type ConversionResponse struct {
	InvoiceID     string `json:"invoice_id"`
	InvoiceNumber string `json:"invoice_number"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		EstimateID:    inv.EstimateID,
		ClientID:      inv.ClientID,
		ProjectID:     inv.ProjectID,
		Title:         inv.Title,
		Description:   inv.Description,
		Status:        string(inv.Status),
		LineItems:     fromLineItems(inv.LineItems),
		TaxRate:       inv.TaxRate,
		Subtotal:      inv.Subtotal,
		TaxAmount:     inv.TaxAmount,
		Total:         inv.Total,
		DueDate:       inv.DueDate,
		CreatedBy:     inv.CreatedBy,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}

func FromInvoices(invs []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, len(invs))
	for i, inv := range invs {
		out[i] = FromInvoice(inv)
	}
	return out
}
