package memory

import (
	"context"

	"ufobeep/internal/domain/repository"
)

// transactionManager runs fn directly against the store. The in-memory
// driver has no rollback: each repository call is atomic on its own.
type transactionManager struct {
	store *Store
}

type repositoryFactory struct {
	store *Store
}

// NewTransactionManager is the constructor for the in-memory transaction manager.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

func (tm *transactionManager) Execute(_ context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	return fn(&repositoryFactory{store: tm.store})
}

func (f *repositoryFactory) NewAlertRepository() repository.AlertRepository {
	return NewAlertRepository(f.store)
}
