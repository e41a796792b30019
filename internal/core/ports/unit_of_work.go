package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork spans one transition or registration. Callers pair Begin with a
// deferred Rollback and finish with Commit.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction, then publishes the transitions
	// recorded by the orders saved in it.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction and drops recorded transitions.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// Repositories below are bound to the transaction started by Begin().

	OrderRepository() OrderRepository
	ProcessRepository() ProcessRepository
	ProgressLogRepository() ProgressLogRepository
	WorkerRepository() WorkerRepository
}
