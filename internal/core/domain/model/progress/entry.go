package progress

import (
	"errors"
	"time"

	"progress/internal/core/domain/model/kernel"
	"progress/internal/pkg/errs"
)

var (
	ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")
	ErrEntryAlreadyClosed    = errors.New("progress entry is already closed")
)

type Entry struct {
	id        kernel.UUID
	orderID   kernel.UUID
	processID kernel.UUID
	workerID  *kernel.UUID
	startTime time.Time
	endTime   *time.Time

	isConstructed bool
}

// NewEntry opens an entry at now. worker is optional.
//
// Parameters:
//   - id: identifier of the entry
//   - orderID, processID: the pair being worked on
//   - worker: the worker who started the step, nil for anonymous starts
//   - now: start time, stored in UTC
//
// Returns:
//   - *Entry: an open entry
//   - error: a missing identifier or a zero start time
//
// Example:
//
//	entry, err := progress.NewEntry(kernel.NewUUID(), o.ID(), cut.ID(), workerID.Ptr(), time.Now())
func NewEntry(id, orderID, processID kernel.UUID, worker *kernel.UUID, now time.Time) (*Entry, error) {
	return RestoreEntry(id, orderID, processID, worker, now, nil)
}

func RestoreEntry(
	id, orderID, processID kernel.UUID,
	worker *kernel.UUID,
	startTime time.Time,
	endTime *time.Time,
) (*Entry, error) {
	if err := errors.Join(
		validateID("id", id),
		validateID("order_id", orderID),
		validateID("process_id", processID),
		validateTimes(startTime, endTime),
	); err != nil {
		return nil, err
	}

	e := &Entry{
		id:            id,
		orderID:       orderID,
		processID:     processID,
		startTime:     startTime.UTC(),
		isConstructed: true,
	}
	if worker != nil {
		e.workerID = worker.Ptr()
	}
	if endTime != nil {
		end := endTime.UTC()
		e.endTime = &end
	}
	return e, nil
}

func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

func (e *Entry) ID() kernel.UUID {
	return e.id
}

func (e *Entry) OrderID() kernel.UUID {
	return e.orderID
}

func (e *Entry) ProcessID() kernel.UUID {
	return e.processID
}

// WorkerID is nil for anonymous starts and for workers that were removed.
func (e *Entry) WorkerID() *kernel.UUID {
	if e.workerID == nil {
		return nil
	}
	return e.workerID.Ptr()
}

func (e *Entry) StartTime() time.Time {
	return e.startTime
}

func (e *Entry) EndTime() *time.Time {
	if e.endTime == nil {
		return nil
	}
	end := *e.endTime
	return &end
}

func (e *Entry) IsOpen() bool {
	return e.endTime == nil
}

func (e *Entry) IsClosed() bool {
	return e.endTime != nil
}

// Close stamps the end time. A closed entry is never reopened or re-closed.
//
// Returns:
//   - error: ErrEntryAlreadyClosed for a second close, errs.ErrValueIsInvalid
//     when now precedes the start time
func (e *Entry) Close(now time.Time) error {
	if e.IsClosed() {
		return ErrEntryAlreadyClosed
	}
	if now.Before(e.startTime) {
		return errs.NewValueIsInvalidError("end_time is before start_time")
	}
	end := now.UTC()
	e.endTime = &end
	return nil
}

// Duration of a closed entry, zero while open.
func (e *Entry) Duration() time.Duration {
	if e.endTime == nil {
		return 0
	}
	return e.endTime.Sub(e.startTime)
}

func validateID(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}

func validateTimes(start time.Time, end *time.Time) error {
	if start.IsZero() {
		return errs.NewValueIsRequiredError("start_time")
	}
	if end != nil && end.Before(start) {
		return errs.NewValueIsInvalidError("end_time is before start_time")
	}
	return nil
}
