package commands

import (
	"context"
	"errors"
	"fmt"

	"progress/internal/core/domain/model/worker"
	"progress/internal/pkg/errs"
)

// ErrDuplicateEmployeeID is returned when the employee_id is already registered.
var ErrDuplicateEmployeeID = errors.New("employee_id already exists")

type RegisterWorkerCommandHandler struct {
	uowFactory WorkerUoWFactory
}

func NewRegisterWorkerCommandHandler(uowFactory WorkerUoWFactory) RegisterWorkerCommandHandler {
	return RegisterWorkerCommandHandler{uowFactory: uowFactory}
}

func (h *RegisterWorkerCommandHandler) Handle(ctx context.Context, cmd RegisterWorkerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	details := cmd.Details()
	w, err := worker.NewWorker(cmd.WorkerID(), cmd.EmployeeID(), cmd.Name(), cmd.Password(), worker.Profile{
		HireDate:   details.HireDate,
		Department: details.Department,
		IsActive:   details.IsActive,
	})
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.WorkerRepository()

	_, err = repo.GetByEmployeeID(ctx, cmd.EmployeeID())
	switch {
	case err == nil:
		return fmt.Errorf("%w: %s", ErrDuplicateEmployeeID, cmd.EmployeeID())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	if err = repo.Add(ctx, w); err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			return fmt.Errorf("%w: %s", ErrDuplicateEmployeeID, cmd.EmployeeID())
		}
		return err
	}

	return uow.Commit(ctx)
}
