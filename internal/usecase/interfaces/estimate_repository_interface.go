package interfaces

import (
	"context"

	"bizops/internal/domain/entities"
)

// IEstimateRepository abstracts relational persistence for Estimate.
//
// Conventions:
//   - GetByID returns the zero value (ID == "") when no row exists.
//   - Create and Update persist the estimate together with its line items;
//     Update replaces the whole line-item set.
//   - All methods honor a transaction carried in ctx (see ITransactionManager).

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	Update(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
}
