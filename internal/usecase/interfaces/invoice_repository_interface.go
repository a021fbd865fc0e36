package interfaces

import (
	"context"

	"bizops/internal/domain/entities"
)

// IInvoiceRepository abstracts relational persistence for Invoice.

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.Invoice, error)
}
