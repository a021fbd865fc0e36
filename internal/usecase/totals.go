package usecase

import (
	"github.com/shopspring/decimal"

	"bizops/internal/domain/entities"
)

// CalculateTotals computes subtotal, tax amount and total for a sequence of
// line items. Pure: no side effects, deterministic single accumulation pass in
// item order.
//
// Each line total is recomputed as Quantity * UnitPrice; any LineTotal on the
// input is ignored. A nil taxRate means no tax. An empty slice yields zeros.
// No rounding is applied here; presentation rounding is the caller's concern.
func CalculateTotals(items []entities.LineItem, taxRate *decimal.Decimal) entities.Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Quantity.Mul(it.UnitPrice))
	}

	taxAmount := decimal.Zero
	if taxRate != nil {
		taxAmount = subtotal.Mul(*taxRate)
	}

	return entities.Totals{
		Subtotal:  subtotal,
		TaxAmount: taxAmount,
		Total:     subtotal.Add(taxAmount),
	}
}
