package commands

import (
	"context"

	"progress/internal/core/domain/model/process"
)

// ProcessCommandHandler administers the process registry. Registry edits are
// picked up by the next transition, which reads the registry again.
type ProcessCommandHandler struct {
	uowFactory ProcessUoWFactory
}

func NewProcessCommandHandler(uowFactory ProcessUoWFactory) ProcessCommandHandler {
	return ProcessCommandHandler{uowFactory: uowFactory}
}

func (h *ProcessCommandHandler) HandleCreate(ctx context.Context, cmd CreateProcessCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p, err := process.NewProcess(cmd.ProcessID(), cmd.Name(), cmd.Position())
	if err != nil {
		return err
	}

	return h.inTx(ctx, func(uow ProcessUoW) error {
		return uow.ProcessRepository().Add(ctx, p)
	})
}

func (h *ProcessCommandHandler) HandleUpdate(ctx context.Context, cmd UpdateProcessCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.inTx(ctx, func(uow ProcessUoW) error {
		repo := uow.ProcessRepository()

		p, err := repo.Get(ctx, cmd.ProcessID())
		if err != nil {
			return err
		}

		if err = p.Rename(cmd.Name()); err != nil {
			return err
		}
		if err = p.Reorder(cmd.Position()); err != nil {
			return err
		}

		return repo.Update(ctx, p)
	})
}

func (h *ProcessCommandHandler) HandleDelete(ctx context.Context, cmd DeleteProcessCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.inTx(ctx, func(uow ProcessUoW) error {
		return uow.ProcessRepository().Delete(ctx, cmd.ProcessID())
	})
}

func (h *ProcessCommandHandler) inTx(ctx context.Context, fn func(uow ProcessUoW) error) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(uow); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
