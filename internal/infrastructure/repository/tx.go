package repository

import (
	"context"

	domainRepo "github.com/sangkips/medrep-crm/internal/domain/repository"
	"gorm.io/gorm"
)

type ctxKey string

// TxKey is the context key holding the active *gorm.DB transaction
const TxKey ctxKey = "gorm_tx"

type txManager struct {
	db *gorm.DB
}

// NewTxManager creates a transaction manager over db
func NewTxManager(db *gorm.DB) domainRepo.TxManager {
	return &txManager{db: db}
}

// WithinTransaction runs fn in a transaction. A call made while a transaction
// is already active joins it.
func (m *txManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(TxKey).(*gorm.DB); ok {
		return fn(ctx)
	}
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, TxKey, tx))
	})
}

// conn returns the transaction carried by ctx, or db
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(TxKey).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}
