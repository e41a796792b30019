package order

import (
	"time"

	"progress/internal/core/domain/model/kernel"
)

type TransitionKind string

const (
	ProcessStarted   TransitionKind = "process.started"
	ProcessCompleted TransitionKind = "process.completed"
)

// Transition is raised by the order whenever a process is started or
// completed. It snapshots the order projection right after the change.
type Transition struct {
	Kind           TransitionKind
	OrderID        kernel.UUID
	OrderNo        string
	ProcessID      kernel.UUID
	CurrentProcess *kernel.UUID
	Status         Status
	WorkerID       *kernel.UUID
	OccurredAt     time.Time
}

// RecordTransition appends a Transition describing the current state.
func (o *Order) RecordTransition(kind TransitionKind, processID kernel.UUID, worker *kernel.UUID, at time.Time) {
	t := Transition{
		Kind:           kind,
		OrderID:        o.id,
		OrderNo:        o.orderNo,
		ProcessID:      processID,
		CurrentProcess: o.CurrentProcess(),
		Status:         o.status,
		OccurredAt:     at.UTC(),
	}
	if worker != nil {
		t.WorkerID = worker.Ptr()
	}
	o.events = append(o.events, t)
}

// DomainEvents returns the transitions recorded since the last clear.
func (o *Order) DomainEvents() []Transition {
	return append([]Transition(nil), o.events...)
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}
