// Package postgres implements the marketplace repositories on GORM and PostgreSQL.
package postgres

import (
	"context"

	"marketplace/internal/domain/repository"

	"gorm.io/gorm"
)

// txFactory hands out repositories bound to one open transaction.
type txFactory struct {
	tx *gorm.DB
}

func (f txFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f txFactory) NewCatalogRepository() repository.CatalogRepository {
	return NewCatalogRepository(f.tx)
}

type transactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &transactionManager{db: db}
}

// Execute commits when fn returns nil and rolls back on an error or a panic.
// fn's error is returned unwrapped so callers can match domain sentinels.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txFactory{tx: tx})
	})
}
