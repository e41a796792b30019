// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"progress/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest set of repositories it uses.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	ProcessRepoFactory interface {
		ProcessRepository() ports.ProcessRepository
	}

	ProgressLogRepoFactory interface {
		ProgressLogRepository() ports.ProgressLogRepository
	}

	WorkerRepoFactory interface {
		WorkerRepository() ports.WorkerRepository
	}

	// TransitionUoW covers StartProcess and CompleteProcess: the order row
	// lock, the registry read, the log write and the order update all run in
	// one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, orderID)
	//   seq, err := uow.ProcessRepository().Sequence(ctx)
	//   // ... run the engine, write the entry and the order
	//
	//   err = uow.Commit(ctx)
	TransitionUoW interface {
		TxManager
		OrderRepoFactory
		ProcessRepoFactory
		ProgressLogRepoFactory
		WorkerRepoFactory
	}

	TransitionUoWFactory interface {
		Create() TransitionUoW
	}

	// OrderUoW registers orders; it reads the registry for the first process.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		ProcessRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ProcessUoW administers the process registry.
	ProcessUoW interface {
		TxManager
		ProcessRepoFactory
	}

	ProcessUoWFactory interface {
		Create() ProcessUoW
	}

	// WorkerUoW administers workers. Deleting a worker also detaches the
	// worker from the progress log in the same transaction.
	WorkerUoW interface {
		TxManager
		WorkerRepoFactory
		ProgressLogRepoFactory
	}

	WorkerUoWFactory interface {
		Create() WorkerUoW
	}
)
