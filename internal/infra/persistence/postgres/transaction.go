// Package postgres implements the alert repositories on GORM and PostgreSQL.
package postgres

import (
	"context"
	"database/sql"

	"ufobeep/internal/domain/repository"
	"ufobeep/internal/errors"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// txRepositoryFactory hands out repositories bound to one open transaction.
type txRepositoryFactory struct {
	tx *gorm.DB
}

func (f *txRepositoryFactory) NewAlertRepository() repository.AlertRepository {
	return NewAlertRepository(f.tx)
}

// NewTransactionManager runs fanout bookkeeping in READ COMMITTED transactions.
// The per-sighting dispatch unique index is what keeps concurrent fanouts from double alerting.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute commits when fn returns nil. An error or panic from fn rolls back.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&txRepositoryFactory{tx: tx})
	}, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return errors.WithMessage(err, "fanout transaction")
	}

	return nil
}
