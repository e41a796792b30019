package commands

import (
	"context"
	"errors"

	"progress/internal/core/domain/services"
	"progress/internal/pkg/errs"
)

// CompleteProcessCommandHandler closes the newest open entry of
// (order, process) and advances the order.
//
// A process deleted from the registry is still completable while the order
// has an open entry for it; the order then falls back to Completed. Without
// such an entry a missing process is reported as not found.
type CompleteProcessCommandHandler struct {
	uowFactory TransitionUoWFactory
	engine     services.TransitionEngine
}

func NewCompleteProcessCommandHandler(uowFactory TransitionUoWFactory, engine services.TransitionEngine) CompleteProcessCommandHandler {
	return CompleteProcessCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
	}
}

func (h *CompleteProcessCommandHandler) Handle(ctx context.Context, cmd CompleteProcessCommand) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return TransitionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	processRepo := uow.ProcessRepository()
	logRepo := uow.ProgressLogRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return TransitionResult{}, err
	}

	_, processErr := processRepo.Get(ctx, cmd.ProcessID())
	if processErr != nil && !errors.Is(processErr, errs.ErrObjectNotFound) {
		return TransitionResult{}, processErr
	}

	open, err := logRepo.FindOpen(ctx, o.ID(), cmd.ProcessID())
	if err != nil {
		return TransitionResult{}, err
	}

	if processErr != nil && open == nil {
		return TransitionResult{}, processErr
	}

	seq, err := processRepo.Sequence(ctx)
	if err != nil {
		return TransitionResult{}, err
	}

	if err = h.engine.Complete(services.CompleteInput{
		Order:     o,
		ProcessID: cmd.ProcessID(),
		Sequence:  seq,
		OpenEntry: open,
	}); err != nil {
		return TransitionResult{}, err
	}

	if err = logRepo.Close(ctx, open); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return TransitionResult{}, services.ErrNotStarted
		}
		return TransitionResult{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return TransitionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return TransitionResult{}, err
	}

	return TransitionResult{
		OrderID:            o.ID(),
		OrderNo:            o.OrderNo(),
		CurrentProcessID:   o.CurrentProcess(),
		Status:             o.Status(),
		ProgressPercentage: o.ProgressPercentage(seq),
	}, nil
}
