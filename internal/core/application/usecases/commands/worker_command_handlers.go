package commands

import (
	"context"
	"errors"
	"fmt"

	"progress/internal/core/domain/model/worker"
	"progress/internal/pkg/errs"
)

// WorkerCommandHandler edits and removes registered workers.
type WorkerCommandHandler struct {
	uowFactory WorkerUoWFactory
}

func NewWorkerCommandHandler(uowFactory WorkerUoWFactory) WorkerCommandHandler {
	return WorkerCommandHandler{uowFactory: uowFactory}
}

// HandleUpdate applies the edit to the stored worker.
//
// Returns:
//   - error: errs.ErrObjectNotFound for an unknown worker, ErrDuplicateEmployeeID
//     when the new employee_id belongs to someone else, a validation error from
//     the worker aggregate otherwise
func (h *WorkerCommandHandler) HandleUpdate(ctx context.Context, cmd UpdateWorkerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.inTx(ctx, func(uow WorkerUoW) error {
		repo := uow.WorkerRepository()

		w, err := repo.Get(ctx, cmd.WorkerID())
		if err != nil {
			return err
		}

		if cmd.EmployeeID() != w.EmployeeID() {
			holder, lookupErr := repo.GetByEmployeeID(ctx, cmd.EmployeeID())
			switch {
			case lookupErr == nil && !holder.ID().IsEqual(w.ID()):
				return fmt.Errorf("%w: %s", ErrDuplicateEmployeeID, cmd.EmployeeID())
			case lookupErr != nil && !errors.Is(lookupErr, errs.ErrObjectNotFound):
				return lookupErr
			}
		}

		details := cmd.Details()
		if err = w.Edit(cmd.EmployeeID(), cmd.Name(), worker.Profile{
			HireDate:   details.HireDate,
			Department: details.Department,
			IsActive:   details.IsActive,
		}); err != nil {
			return err
		}

		if cmd.Password() != "" {
			if err = w.ChangePassword(cmd.Password()); err != nil {
				return err
			}
		}

		if err = repo.Update(ctx, w); err != nil {
			if errors.Is(err, errs.ErrObjectAlreadyExists) {
				return fmt.Errorf("%w: %s", ErrDuplicateEmployeeID, cmd.EmployeeID())
			}
			return err
		}
		return nil
	})
}

// HandleDelete removes the worker and clears it from the progress log.
func (h *WorkerCommandHandler) HandleDelete(ctx context.Context, cmd DeleteWorkerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.inTx(ctx, func(uow WorkerUoW) error {
		if err := uow.WorkerRepository().Delete(ctx, cmd.WorkerID()); err != nil {
			return err
		}
		return uow.ProgressLogRepository().DetachWorker(ctx, cmd.WorkerID())
	})
}

func (h *WorkerCommandHandler) inTx(ctx context.Context, fn func(uow WorkerUoW) error) error {
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
