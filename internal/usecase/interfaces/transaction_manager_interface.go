package interfaces

import "context"

// ITransactionManager scopes multi-step writes to a single transaction.
//
// Do runs fn with a transaction handle carried in the derived context;
// repositories pick it up transparently. If fn returns an error the whole
// transaction rolls back and the error is returned unchanged.
type ITransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
