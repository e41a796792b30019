package services

import (
	"errors"
	"fmt"
	"time"

	"progress/internal/core/domain/model/kernel"
	"progress/internal/core/domain/model/order"
	"progress/internal/core/domain/model/process"
	"progress/internal/core/domain/model/progress"
)

var (
	// ErrAlreadyInProgress is returned when the (order, process) pair already
	// has an open entry. The caller should complete that entry first.
	ErrAlreadyInProgress = errors.New("process is already in progress")

	// ErrPrecedingProcessIncomplete is the sentinel behind PrecedingProcessIncompleteError.
	ErrPrecedingProcessIncomplete = errors.New("preceding process is not completed")

	// ErrNotStarted is returned when completing a process that has no open entry.
	ErrNotStarted = errors.New("process has not been started")

	// ErrProcessMismatch is returned in strict mode when the completed process
	// is not the order's current process.
	ErrProcessMismatch = errors.New("process is not the current process of the order")
)

// PrecedingProcessIncompleteError names the process that blocks a start.
type PrecedingProcessIncompleteError struct {
	ProcessID   kernel.UUID
	ProcessName string
}

func (e *PrecedingProcessIncompleteError) Error() string {
	return fmt.Sprintf("%s: complete %q before starting the next process", ErrPrecedingProcessIncomplete, e.ProcessName)
}

func (e *PrecedingProcessIncompleteError) Unwrap() error {
	return ErrPrecedingProcessIncomplete
}

// StartInput is everything Start needs, loaded under the order lock.
type StartInput struct {
	Order    *order.Order
	Process  *process.Process
	Sequence process.Sequence

	// OpenEntry is the open entry for (Order, Process), nil when there is none.
	OpenEntry *progress.Entry

	// PredecessorLatest is the predecessor's entry for Order with the latest
	// end time, open entries first. Nil when the predecessor was never started
	// or the process has no predecessor.
	PredecessorLatest *progress.Entry

	// Actor is the worker starting the process, nil for anonymous starts.
	Actor *kernel.UUID
}

// CompleteInput is everything Complete needs, loaded under the order lock.
type CompleteInput struct {
	Order     *order.Order
	ProcessID kernel.UUID
	Sequence  process.Sequence

	// OpenEntry is the open entry for (Order, ProcessID) with the latest start
	// time, nil when there is none.
	OpenEntry *progress.Entry
}

// Option configures a TransitionEngine.
type Option func(*TransitionEngine)

// WithStrictCompletion makes Complete reject a process that is not the
// order's current process with ErrProcessMismatch. Off by default: Complete
// then advances from the order's current process whatever process is closed.
func WithStrictCompletion() Option {
	return func(e *TransitionEngine) {
		e.strict = true
	}
}

// WithClock overrides the time source used for entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *TransitionEngine) {
		if now != nil {
			e.now = now
		}
	}
}

// TransitionEngine enforces the process progression rules.
//
// Business rules:
//   - A process cannot be started twice without being completed in between
//   - A process can be started only when the process right before it in the
//     sequence has a completed entry for the order
//   - A process missing from the sequence (deleted) has no ordering constraint
//   - Completing closes the newest open entry and moves the order to the
//     process after its current one, or to Completed after the last one
//   - A current process missing from the sequence completes the order
//   - Completed is a projection, not a lock: starting again is allowed
//
// Example usage:
//
//	engine := services.NewTransitionEngine()
//	entry, err := engine.Start(services.StartInput{
//	    Order:             o,
//	    Process:           weld,
//	    Sequence:          seq,
//	    PredecessorLatest: cutEntry,
//	})
//	var blocked *services.PrecedingProcessIncompleteError
//	if errors.As(err, &blocked) {
//	    // blocked.ProcessName must be completed first
//	}
type TransitionEngine struct {
	strict bool
	now    func() time.Time
}

// NewTransitionEngine creates an engine with the given options applied.
func NewTransitionEngine(opts ...Option) TransitionEngine {
	e := TransitionEngine{now: time.Now}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// IsStrict reports whether WithStrictCompletion was applied.
func (e TransitionEngine) IsStrict() bool {
	return e.strict
}

// Start opens a new entry and marks the order InProgress on the process.
//
// Checks run in this order and the first failure wins:
//   - an open entry for the pair: ErrAlreadyInProgress
//   - predecessor without a completed latest entry: *PrecedingProcessIncompleteError
//
// Returns:
//   - *progress.Entry: the new open entry, to be inserted by the caller
//   - error: a business rule failure, the order is left untouched
func (e TransitionEngine) Start(in StartInput) (*progress.Entry, error) {
	if err := in.Order.Validate(); err != nil {
		return nil, err
	}
	if err := in.Process.Validate(); err != nil {
		return nil, err
	}

	if in.OpenEntry != nil && in.OpenEntry.IsOpen() {
		return nil, ErrAlreadyInProgress
	}

	if predecessor, ok := in.Sequence.Predecessor(in.Process.ID()); ok {
		if !completes(in.PredecessorLatest, predecessor) {
			return nil, &PrecedingProcessIncompleteError{
				ProcessID:   predecessor.ID(),
				ProcessName: predecessor.Name(),
			}
		}
	}

	now := e.now()
	entry, err := progress.NewEntry(kernel.NewUUID(), in.Order.ID(), in.Process.ID(), in.Actor, now)
	if err != nil {
		return nil, err
	}

	if err = in.Order.MarkStarted(in.Process.ID()); err != nil {
		return nil, err
	}

	in.Order.RecordTransition(order.ProcessStarted, in.Process.ID(), in.Actor, now)
	return entry, nil
}

// Complete closes the open entry and recomputes the order projection.
//
// Returns:
//   - error: ErrNotStarted without an open entry, ErrProcessMismatch in strict
//     mode; the entry and the order are left untouched on failure
func (e TransitionEngine) Complete(in CompleteInput) error {
	if err := in.Order.Validate(); err != nil {
		return err
	}

	entry := in.OpenEntry
	if entry == nil || entry.IsClosed() ||
		!entry.ProcessID().IsEqual(in.ProcessID) ||
		!entry.OrderID().IsEqual(in.Order.ID()) {
		return ErrNotStarted
	}

	if e.strict && !kernel.EqualPtr(in.Order.CurrentProcess(), in.ProcessID.Ptr()) {
		return ErrProcessMismatch
	}

	now := e.now()
	if err := entry.Close(now); err != nil {
		return err
	}

	in.Order.Advance(in.Sequence)
	in.Order.RecordTransition(order.ProcessCompleted, in.ProcessID, entry.WorkerID(), now)
	return nil
}

func completes(entry *progress.Entry, predecessor *process.Process) bool {
	return entry != nil &&
		entry.ProcessID().IsEqual(predecessor.ID()) &&
		entry.IsClosed()
}
