package repository

import "context"

// TransactionManager runs a unit of work atomically without exposing the driver.
type TransactionManager interface {
	// Execute runs fn inside one transaction; an error from fn rolls it back.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	NewAlertRepository() AlertRepository
}
