package repository

import "context"

// TransactionManager runs a unit of work atomically. Signup uses it so the
// email check and the insert see the same snapshot.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory builds repositories that share the caller's transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewCatalogRepository() CatalogRepository
}
