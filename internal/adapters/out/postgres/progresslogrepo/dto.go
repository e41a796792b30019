// Package progresslogrepo persists progress entries in the progress_logs table.
package progresslogrepo

import (
	"time"

	"progress/internal/core/domain/model/kernel"
	"progress/internal/core/domain/model/progress"

	"github.com/google/uuid"
)

// EntryDTO is a progress_logs row. The partial unique index
// idx_progress_logs_open allows at most one open row per (order, process).
// process_id and worker_id are weak references.
type EntryDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_progress_logs_open,where:end_time IS NULL"`
	ProcessID uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_progress_logs_open,where:end_time IS NULL"`
	WorkerID  *uuid.UUID `gorm:"type:uuid;index"`
	StartTime time.Time  `gorm:"not null"`
	EndTime   *time.Time
}

func (EntryDTO) TableName() string {
	return "progress_logs"
}

func fromDomain(e *progress.Entry) EntryDTO {
	var workerID *uuid.UUID
	if id := e.WorkerID(); id != nil {
		raw := id.Bytes()
		workerID = &raw
	}

	return EntryDTO{
		ID:        e.ID().Bytes(),
		OrderID:   e.OrderID().Bytes(),
		ProcessID: e.ProcessID().Bytes(),
		WorkerID:  workerID,
		StartTime: e.StartTime(),
		EndTime:   e.EndTime(),
	}
}

func toDomain(dto EntryDTO) (*progress.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	processID, err := kernel.UUIDFromBytes(dto.ProcessID[:])
	if err != nil {
		return nil, err
	}

	var workerID *kernel.UUID
	if dto.WorkerID != nil {
		wID, wErr := kernel.UUIDFromBytes((*dto.WorkerID)[:])
		if wErr != nil {
			return nil, wErr
		}
		workerID = &wID
	}

	return progress.RestoreEntry(id, orderID, processID, workerID, dto.StartTime, dto.EndTime)
}
