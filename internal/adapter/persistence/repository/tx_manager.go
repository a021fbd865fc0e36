package repository

import (
	"context"

	"gorm.io/gorm"

	"bizops/internal/usecase/interfaces"
)

type txKey struct{}

// GormTransactionManager runs a function inside a database transaction and
// hands the transaction to repositories through the context.
type GormTransactionManager struct {
	db *gorm.DB
}

var _ interfaces.ITransactionManager = (*GormTransactionManager)(nil)

func NewGormTransactionManager(db *gorm.DB) *GormTransactionManager {
	return &GormTransactionManager{db: db}
}

func (m *GormTransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// dbFrom returns the transaction carried in ctx, or the repository's own
// handle when no transaction is open.
func dbFrom(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}
