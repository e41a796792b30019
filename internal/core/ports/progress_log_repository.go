package ports

import (
	"context"

	"progress/internal/core/domain/model/kernel"
	"progress/internal/core/domain/model/progress"
)

// ProgressLogRepository is the append-mostly store of progress entries.
type ProgressLogRepository interface {
	// Add appends an open entry. A second open entry for the same
	// (order, process) is rejected with errs.ErrObjectAlreadyExists.
	Add(ctx context.Context, entry *progress.Entry) error

	// Close persists the end time of an entry that was closed in memory.
	// Only an entry that is still open in storage is updated.
	Close(ctx context.Context, entry *progress.Entry) error

	// FindOpen returns the open entry for (order, process) with the latest
	// start time, or nil when there is none.
	FindOpen(ctx context.Context, orderID, processID kernel.UUID) (*progress.Entry, error)

	// FindLatest returns the entry for (order, process) with the latest end
	// time, open entries ranking first, or nil when the process was never
	// started for the order.
	FindLatest(ctx context.Context, orderID, processID kernel.UUID) (*progress.Entry, error)

	// DetachWorker clears the worker reference of every entry recorded by
	// workerID. The entries themselves are kept.
	DetachWorker(ctx context.Context, workerID kernel.UUID) error

	// ListByOrder returns the entries of an order by ascending start time.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*progress.Entry, error)
}
