package ports

import (
	"context"

	"progress/internal/core/domain/model/kernel"
	"progress/internal/core/domain/model/worker"
)

type WorkerRepository interface {
	// Add returns errs.ErrObjectAlreadyExists when employee_id is taken.
	Add(ctx context.Context, w *worker.Worker) error
	// Update returns errs.ErrObjectAlreadyExists when the new employee_id
	// belongs to another worker and errs.ErrObjectNotFound for unknown ids.
	Update(ctx context.Context, w *worker.Worker) error
	Delete(ctx context.Context, id kernel.UUID) error
	Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*worker.Worker, error)
}
