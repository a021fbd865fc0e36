package response

import (
	"time"

	"github.com/shopspring/decimal"

	"bizops/internal/domain/entities"
)

type LineItemResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
	SortOrder   int             `json:"sort_order"`
}

type EstimateResponse struct {
	ID             string             `json:"id"`
	EstimateNumber string             `json:"estimate_number"`
	ClientID       string             `json:"client_id"`
	ProjectID      string             `json:"project_id,omitempty"`
	Title          string             `json:"title"`
	Description    string             `json:"description,omitempty"`
	Status         string             `json:"status"`
	LineItems      []LineItemResponse `json:"line_items"`
	TaxRate        *decimal.Decimal   `json:"tax_rate,omitempty"`
	Subtotal       decimal.Decimal    `json:"subtotal"`
	TaxAmount      decimal.Decimal    `json:"tax_amount"`
	Total          decimal.Decimal    `json:"total"`
	ValidUntil     *time.Time         `json:"valid_until,omitempty"`
	CreatedBy      string             `json:"created_by"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:             e.ID,
		EstimateNumber: e.EstimateNumber,
		ClientID:       e.ClientID,
		ProjectID:      e.ProjectID,
		Title:          e.Title,
		Description:    e.Description,
		Status:         string(e.Status),
		LineItems:      fromLineItems(e.LineItems),
		TaxRate:        e.TaxRate,
		Subtotal:       e.Subtotal,
		TaxAmount:      e.TaxAmount,
		Total:          e.Total,
		ValidUntil:     e.ValidUntil,
		CreatedBy:      e.CreatedBy,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func fromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, len(items))
	for i, it := range items {
		out[i] = LineItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal,
			SortOrder:   it.SortOrder,
		}
	}
	return out
}
