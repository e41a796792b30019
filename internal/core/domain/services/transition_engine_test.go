package services_test

import (
	"testing"
	"time"

	"progress/internal/core/domain/model/kernel"
	"progress/internal/core/domain/model/order"
	"progress/internal/core/domain/model/process"
	"progress/internal/core/domain/model/progress"
	"progress/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// floor is an in-memory progress log driven through the engine the same way
// the command handlers drive it against storage.
type floor struct {
	t       *testing.T
	engine  services.TransitionEngine
	seq     process.Sequence
	entries []*progress.Entry
}

func newFloor(t *testing.T, names ...string) *floor {
	t.Helper()
	clock := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	processes := make([]*process.Process, 0, len(names))
	for i, name := range names {
		p, err := process.NewProcess(kernel.NewUUID(), name, i+1)
		require.NoError(t, err)
		processes = append(processes, p)
	}
	return &floor{
		t: t,
		engine: services.NewTransitionEngine(services.WithClock(func() time.Time {
			clock = clock.Add(time.Minute)
			return clock
		})),
		seq: process.NewSequence(processes),
	}
}

func (f *floor) process(name string) *process.Process {
	for _, p := range f.seq.Processes() {
		if p.Name() == name {
			return p
		}
	}
	f.t.Fatalf("unknown process %s", name)
	return nil
}

func (f *floor) register(orderNo string) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), orderNo, "Bracket", 10, time.Now(), f.seq, time.Now())
	require.NoError(f.t, err)
	return o
}

func (f *floor) openEntries(o *order.Order, processID kernel.UUID) []*progress.Entry {
	var open []*progress.Entry
	for _, e := range f.entries {
		if e.OrderID().IsEqual(o.ID()) && e.ProcessID().IsEqual(processID) && e.IsOpen() {
			open = append(open, e)
		}
	}
	return open
}

// findOpen mirrors ORDER BY start_time DESC over the open entries.
func (f *floor) findOpen(o *order.Order, processID kernel.UUID) *progress.Entry {
	var found *progress.Entry
	for _, e := range f.openEntries(o, processID) {
		if found == nil || e.StartTime().After(found.StartTime()) {
			found = e
		}
	}
	return found
}

// latest mirrors ORDER BY end_time DESC NULLS FIRST.
func (f *floor) latest(o *order.Order, processID kernel.UUID) *progress.Entry {
	var latest *progress.Entry
	for _, e := range f.entries {
		if !e.OrderID().IsEqual(o.ID()) || !e.ProcessID().IsEqual(processID) {
			continue
		}
		switch {
		case latest == nil:
			latest = e
		case latest.IsClosed() && e.IsOpen():
			latest = e
		case latest.IsClosed() && e.EndTime().After(*latest.EndTime()):
			latest = e
		}
	}
	return latest
}

func (f *floor) start(o *order.Order, p *process.Process) error {
	in := services.StartInput{
		Order:     o,
		Process:   p,
		Sequence:  f.seq,
		OpenEntry: f.findOpen(o, p.ID()),
	}
	if pred, ok := f.seq.Predecessor(p.ID()); ok {
		in.PredecessorLatest = f.latest(o, pred.ID())
	}
	entry, err := f.engine.Start(in)
	if err == nil {
		f.entries = append(f.entries, entry)
	}
	return err
}

func (f *floor) complete(o *order.Order, processID kernel.UUID) error {
	return f.engine.Complete(services.CompleteInput{
		Order:     o,
		ProcessID: processID,
		Sequence:  f.seq,
		OpenEntry: f.findOpen(o, processID),
	})
}

func (f *floor) deleteProcess(name string) {
	var kept []*process.Process
	for _, p := range f.seq.Processes() {
		if p.Name() != name {
			kept = append(kept, p)
		}
	}
	f.seq = process.NewSequence(kept)
}

func TestTransitionEngine_FullSequence(t *testing.T) {
	f := newFloor(t, "Cut", "Weld", "Paint")
	cut, weld, paint := f.process("Cut"), f.process("Weld"), f.process("Paint")
	o := f.register("O-100")

	assert.True(t, o.CurrentProcess().IsEqual(cut.ID()))
	assert.Equal(t, order.NotStarted, o.Status())

	require.NoError(t, f.start(o, cut))
	assert.Equal(t, order.InProgress, o.Status())

	err := f.start(o, weld)
	var blocked *services.PrecedingProcessIncompleteError
	require.ErrorAs(t, err, &blocked)
	require.ErrorIs(t, err, services.ErrPrecedingProcessIncomplete)
	assert.Equal(t, "Cut", blocked.ProcessName)
	assert.True(t, blocked.ProcessID.IsEqual(cut.ID()))
	assert.Len(t, f.entries, 1)

	require.NoError(t, f.complete(o, cut.ID()))
	assert.True(t, o.CurrentProcess().IsEqual(weld.ID()))
	assert.Equal(t, order.InProgress, o.Status())

	require.NoError(t, f.start(o, weld))
	require.NoError(t, f.complete(o, weld.ID()))
	assert.True(t, o.CurrentProcess().IsEqual(paint.ID()))
	assert.Equal(t, order.InProgress, o.Status())

	require.NoError(t, f.start(o, paint))
	assert.Equal(t, 100, o.ProgressPercentage(f.seq), "last process current reads 100 while still running")
	assert.Equal(t, order.InProgress, o.Status())

	require.NoError(t, f.complete(o, paint.ID()))
	assert.Equal(t, order.Completed, o.Status())
	assert.True(t, o.CurrentProcess().IsEqual(paint.ID()))
	assert.Equal(t, 100, o.ProgressPercentage(f.seq))
	assert.Len(t, f.entries, 3)
	for _, e := range f.entries {
		assert.True(t, e.IsClosed())
	}
}

func TestTransitionEngine_Start(t *testing.T) {
	t.Run("should reject double start without state change", func(t *testing.T) {
		f := newFloor(t, "Cut", "Weld")
		cut := f.process("Cut")
		o := f.register("O-1")
		require.NoError(t, f.start(o, cut))

		err := f.start(o, cut)

		require.ErrorIs(t, err, services.ErrAlreadyInProgress)
		assert.Len(t, f.entries, 1)
		assert.Equal(t, order.InProgress, o.Status())
	})

	t.Run("should check open entry before ordering", func(t *testing.T) {
		f := newFloor(t, "Cut", "Weld")
		weld := f.process("Weld")
		o := f.register("O-1")
		openWeld, err := progress.NewEntry(kernel.NewUUID(), o.ID(), weld.ID(), nil, time.Now())
		require.NoError(t, err)
		f.entries = append(f.entries, openWeld)

		require.ErrorIs(t, f.start(o, weld), services.ErrAlreadyInProgress)
	})

	t.Run("should block when predecessor never started", func(t *testing.T) {
		f := newFloor(t, "Cut", "Weld")
		o := f.register("O-1")

		err := f.start(o, f.process("Weld"))

		require.ErrorIs(t, err, services.ErrPrecedingProcessIncomplete)
		assert.Equal(t, order.NotStarted, o.Status())
		assert.True(t, o.CurrentProcess().IsEqual(f.process("Cut").ID()))
	})

	t.Run("should block when predecessor was restarted", func(t *testing.T) {
		f := newFloor(t, "Cut", "Weld")
		cut, weld := f.process("Cut"), f.process("Weld")
		o := f.register("O-1")
		require.NoError(t, f.start(o, cut))
		require.NoError(t, f.complete(o, cut.ID()))
		require.NoError(t, f.start(o, cut))

		require.ErrorIs(t, f.start(o, weld), services.ErrPrecedingProcessIncomplete)
	})

	t.Run("should ignore a latest entry of another process", func(t *testing.T) {
		f := newFloor(t, "Cut", "Weld")
		o := f.register("O-1")
		closed, _ := progress.RestoreEntry(kernel.NewUUID(), o.ID(), kernel.NewUUID(), nil, time.Now(), nil)
		require.NoError(t, closed.Close(time.Now().Add(time.Minute)))

		_, err := f.engine.Start(services.StartInput{
			Order:             o,
			Process:           f.process("Weld"),
			Sequence:          f.seq,
			PredecessorLatest: closed,
		})

		require.ErrorIs(t, err, services.ErrPrecedingProcessIncomplete)
	})

	t.Run("should skip ordering for unregistered process", func(t *testing.T) {
		f := newFloor(t, "Cut", "Weld")
		o := f.register("O-1")
		ghost, _ := process.NewProcess(kernel.NewUUID(), "Ghost", 99)

		require.NoError(t, f.start(o, ghost))

		assert.True(t, o.CurrentProcess().IsEqual(ghost.ID()))
		assert.Equal(t, order.InProgress, o.Status())
	})

	t.Run("should record actor", func(t *testing.T) {
		f := newFloor(t, "Cut")
		o := f.register("O-1")
		actor := kernel.NewUUID()

		entry, err := f.engine.Start(services.StartInput{
			Order:    o,
			Process:  f.process("Cut"),
			Sequence: f.seq,
			Actor:    &actor,
		})

		require.NoError(t, err)
		assert.True(t, entry.WorkerID().IsEqual(actor))
		assert.True(t, entry.OrderID().IsEqual(o.ID()))
		assert.True(t, entry.IsOpen())
	})

	t.Run("should allow restart after completion", func(t *testing.T) {
		f := newFloor(t, "Cut")
		cut := f.process("Cut")
		o := f.register("O-1")
		require.NoError(t, f.start(o, cut))
		require.NoError(t, f.complete(o, cut.ID()))
		require.Equal(t, order.Completed, o.Status())

		require.NoError(t, f.start(o, cut))

		assert.Equal(t, order.InProgress, o.Status())
	})

	t.Run("should reject unconstructed input", func(t *testing.T) {
		_, err := services.NewTransitionEngine().Start(services.StartInput{})

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestTransitionEngine_Complete(t *testing.T) {
	t.Run("should fail second complete", func(t *testing.T) {
		f := newFloor(t, "Cut", "Weld")
		cut := f.process("Cut")
		o := f.register("O-1")
		require.NoError(t, f.start(o, cut))
		require.NoError(t, f.complete(o, cut.ID()))
		endTime := *f.entries[0].EndTime()

		require.ErrorIs(t, f.complete(o, cut.ID()), services.ErrNotStarted)
		assert.Equal(t, endTime, *f.entries[0].EndTime())
		assert.True(t, o.CurrentProcess().IsEqual(f.process("Weld").ID()))
	})

	t.Run("should fail when never started", func(t *testing.T) {
		f := newFloor(t, "Cut")
		o := f.register("O-1")

		require.ErrorIs(t, f.complete(o, f.process("Cut").ID()), services.ErrNotStarted)
		assert.Equal(t, order.NotStarted, o.Status())
	})

	t.Run("should close the newest open entry", func(t *testing.T) {
		f := newFloor(t, "Cut", "Weld")
		cut := f.process("Cut")
		o := f.register("O-1")
		base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		older, _ := progress.NewEntry(kernel.NewUUID(), o.ID(), cut.ID(), nil, base)
		newer, _ := progress.NewEntry(kernel.NewUUID(), o.ID(), cut.ID(), nil, base.Add(time.Hour))
		f.entries = append(f.entries, older, newer)

		require.NoError(t, f.complete(o, cut.ID()))

		assert.True(t, older.IsOpen())
		assert.True(t, newer.IsClosed())
	})

	t.Run("should advance from current process not the completed one", func(t *testing.T) {
		f := newFloor(t, "Cut", "Weld", "Paint")
		cut, weld := f.process("Cut"), f.process("Weld")
		o := f.register("O-1")
		require.NoError(t, f.start(o, cut))
		require.NoError(t, f.complete(o, cut.ID()))
		require.NoError(t, f.start(o, weld))
		require.NoError(t, f.start(o, cut))

		require.NoError(t, f.complete(o, weld.ID()))

		assert.True(t, o.CurrentProcess().IsEqual(weld.ID()), "advanced from Cut, the current process")
	})

	t.Run("should reject mismatch in strict mode", func(t *testing.T) {
		f := newFloor(t, "Cut", "Weld", "Paint")
		f.engine = services.NewTransitionEngine(services.WithStrictCompletion())
		require.True(t, f.engine.IsStrict())
		cut, weld := f.process("Cut"), f.process("Weld")
		o := f.register("O-1")
		require.NoError(t, f.start(o, cut))
		require.NoError(t, f.complete(o, cut.ID()))
		require.NoError(t, f.start(o, weld))
		require.NoError(t, f.start(o, cut))

		require.ErrorIs(t, f.complete(o, weld.ID()), services.ErrProcessMismatch)
		assert.Len(t, f.openEntries(o, weld.ID()), 1)
		assert.True(t, o.CurrentProcess().IsEqual(cut.ID()))
	})

	t.Run("should complete order when current process was deleted", func(t *testing.T) {
		f := newFloor(t, "Cut", "Weld", "Paint")
		cut := f.process("Cut")
		o := f.register("O-1")
		require.NoError(t, f.start(o, cut))
		f.deleteProcess("Cut")

		require.NoError(t, f.complete(o, cut.ID()))

		assert.Equal(t, order.Completed, o.Status())
		assert.True(t, o.CurrentProcess().IsEqual(cut.ID()))
		assert.Equal(t, 0, o.ProgressPercentage(f.seq))
	})
}

func TestTransitionEngine_RecordsTransitions(t *testing.T) {
	f := newFloor(t, "Cut", "Weld")
	cut, weld := f.process("Cut"), f.process("Weld")
	o := f.register("O-7")

	require.NoError(t, f.start(o, cut))
	require.Error(t, f.start(o, cut))
	require.NoError(t, f.complete(o, cut.ID()))

	events := o.DomainEvents()
	require.Len(t, events, 2)
	assert.Equal(t, order.ProcessStarted, events[0].Kind)
	assert.Equal(t, order.InProgress, events[0].Status)
	assert.True(t, events[0].CurrentProcess.IsEqual(cut.ID()))
	assert.Equal(t, order.ProcessCompleted, events[1].Kind)
	assert.True(t, events[1].ProcessID.IsEqual(cut.ID()))
	assert.True(t, events[1].CurrentProcess.IsEqual(weld.ID()))
	assert.True(t, events[1].OccurredAt.After(events[0].OccurredAt))
}
