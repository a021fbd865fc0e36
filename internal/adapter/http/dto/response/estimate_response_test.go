package response

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"bizops/internal/domain/entities"
)

func TestFromEstimate(t *testing.T) {
	now := time.Now().UTC()
	rate := decimal.RequireFromString("0.08")
	e := entities.Estimate{
		ID:             "est-1",
		EstimateNumber: "EST-42",
		ClientID:       "client-1",
		Title:          "Kitchen remodel",
		Status:         entities.EstimateStatusApproved,
		LineItems: []entities.LineItem{
			{ID: "li-2", Description: "Materials", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(50), LineTotal: decimal.NewFromInt(50), SortOrder: 1},
			{ID: "li-1", Description: "Labor", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(100), LineTotal: decimal.NewFromInt(200), SortOrder: 0},
		},
		TaxRate:   &rate,
		Subtotal:  decimal.NewFromInt(250),
		TaxAmount: decimal.NewFromInt(20),
		Total:     decimal.NewFromInt(270),
		CreatedBy: "user-1",
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromEstimate(e)
	if res.ID != "est-1" || res.EstimateNumber != "EST-42" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Status != "approved" {
		t.Fatalf("unexpected status: %s", res.Status)
	}
	if len(res.LineItems) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(res.LineItems))
	}
	// Mapper preserves input order; ordering is the repository's concern.
	if res.LineItems[0].ID != "li-2" || res.LineItems[1].ID != "li-1" {
		t.Fatalf("line item order not preserved: %+v", res.LineItems)
	}
	if !res.Total.Equal(decimal.NewFromInt(270)) {
		t.Fatalf("unexpected total: %s", res.Total)
	}
	if res.TaxRate == nil || !res.TaxRate.Equal(rate) {
		t.Fatalf("unexpected tax rate: %v", res.TaxRate)
	}
}
