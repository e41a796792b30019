package commands

import (
	"context"

	"progress/internal/core/domain/model/kernel"
	"progress/internal/core/domain/model/process"
)

type SeedResult struct {
	Created   int
	Reordered int
	Unchanged int
}

// SeedProcessesCommandHandler creates the seeds whose name is not registered
// yet and moves registered ones to the seeded position, in one transaction.
// Processes that are not in the seed are left alone.
type SeedProcessesCommandHandler struct {
	uowFactory ProcessUoWFactory
}

func NewSeedProcessesCommandHandler(uowFactory ProcessUoWFactory) SeedProcessesCommandHandler {
	return SeedProcessesCommandHandler{uowFactory: uowFactory}
}

func (h *SeedProcessesCommandHandler) Handle(ctx context.Context, cmd SeedProcessesCommand) (SeedResult, error) {
	if err := cmd.Validate(); err != nil {
		return SeedResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SeedResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ProcessRepository()
	seq, err := repo.Sequence(ctx)
	if err != nil {
		return SeedResult{}, err
	}

	byName := make(map[string]*process.Process, seq.Len())
	for _, p := range seq.Processes() {
		if _, taken := byName[p.Name()]; !taken {
			byName[p.Name()] = p
		}
	}

	var result SeedResult
	for _, seed := range cmd.Seeds() {
		existing, ok := byName[seed.Name]
		switch {
		case !ok:
			p, pErr := process.NewProcess(kernel.NewUUID(), seed.Name, seed.Position)
			if pErr != nil {
				return SeedResult{}, pErr
			}
			if err = repo.Add(ctx, p); err != nil {
				return SeedResult{}, err
			}
			result.Created++
		case existing.Position() != seed.Position:
			if err = existing.Reorder(seed.Position); err != nil {
				return SeedResult{}, err
			}
			if err = repo.Update(ctx, existing); err != nil {
				return SeedResult{}, err
			}
			result.Reordered++
		default:
			result.Unchanged++
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return SeedResult{}, err
	}

	return result, nil
}
