package ports

import (
	"context"

	"progress/internal/core/domain/model/kernel"
	"progress/internal/core/domain/model/process"
)

// ProcessRepository is the process registry.
type ProcessRepository interface {
	Add(ctx context.Context, p *process.Process) error
	Update(ctx context.Context, p *process.Process) error

	// Delete removes a process from the registry. Orders and log entries keep
	// the identifier as a dangling reference.
	Delete(ctx context.Context, id kernel.UUID) error

	Get(ctx context.Context, id kernel.UUID) (*process.Process, error)

	// Sequence reads the whole registry ordered ascending by position.
	// It is read again in every transaction and never cached.
	Sequence(ctx context.Context) (process.Sequence, error)
}
