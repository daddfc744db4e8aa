package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// The repositories below use the transaction started by Begin.

	CargoRepository() CargoRepository
	HandlingEventRepository() HandlingEventRepository
	LocationRepository() LocationRepository
	VoyageRepository() VoyageRepository
	OutboxRepository() OutboxRepository
}
