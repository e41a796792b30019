package commands

import (
	"context"
	"errors"

	"progress/internal/core/domain/services"
	"progress/internal/pkg/errs"
)

// StartProcessCommandHandler opens a progress entry for (order, process).
//
// All reads and writes happen inside one transaction that holds the order row
// lock, so two racing starts of the same pair are serialized: the second one
// sees the first one's open entry and fails with services.ErrAlreadyInProgress.
// The open entry index on progress_logs reports the same failure should the
// lock ever be bypassed.
//
// Example:
//
//	handler := NewStartProcessCommandHandler(uowFactory, services.NewTransitionEngine())
//	result, err := handler.Handle(ctx, cmd)
//	var blocked *services.PrecedingProcessIncompleteError
//	if errors.As(err, &blocked) {
//	    fmt.Printf("complete %s first\n", blocked.ProcessName)
//	}
type StartProcessCommandHandler struct {
	uowFactory TransitionUoWFactory
	engine     services.TransitionEngine
}

func NewStartProcessCommandHandler(uowFactory TransitionUoWFactory, engine services.TransitionEngine) StartProcessCommandHandler {
	return StartProcessCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
	}
}

// Handle checks, in order: the order exists, the process exists, the actor
// exists when given, then the transition rules of services.TransitionEngine.
func (h *StartProcessCommandHandler) Handle(ctx context.Context, cmd StartProcessCommand) (TransitionResult, error) {
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

	p, err := processRepo.Get(ctx, cmd.ProcessID())
	if err != nil {
		return TransitionResult{}, err
	}

	if actor := cmd.Actor(); actor != nil {
		if _, err = uow.WorkerRepository().Get(ctx, *actor); err != nil {
			return TransitionResult{}, err
		}
	}

	seq, err := processRepo.Sequence(ctx)
	if err != nil {
		return TransitionResult{}, err
	}

	in := services.StartInput{
		Order:    o,
		Process:  p,
		Sequence: seq,
		Actor:    cmd.Actor(),
	}

	if in.OpenEntry, err = logRepo.FindOpen(ctx, o.ID(), p.ID()); err != nil {
		return TransitionResult{}, err
	}

	if predecessor, ok := seq.Predecessor(p.ID()); ok {
		if in.PredecessorLatest, err = logRepo.FindLatest(ctx, o.ID(), predecessor.ID()); err != nil {
			return TransitionResult{}, err
		}
	}

	entry, err := h.engine.Start(in)
	if err != nil {
		return TransitionResult{}, err
	}

	if err = logRepo.Add(ctx, entry); err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			return TransitionResult{}, services.ErrAlreadyInProgress
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
