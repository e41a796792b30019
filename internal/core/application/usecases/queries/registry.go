// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries read the tables directly and return read models for one screen each.
package queries

import (
	"context"

	"progress/internal/core/domain/model/kernel"
	"progress/internal/core/domain/model/process"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// loadSequence reads the registry the same way the process repository does.
func loadSequence(ctx context.Context, db *gorm.DB) (process.Sequence, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			"order"
		FROM processes
		ORDER BY "order", id
	`).Rows()
	if err != nil {
		return process.Sequence{}, err
	}
	defer rows.Close()

	processes := make([]*process.Process, 0)
	for rows.Next() {
		var (
			id       uuid.UUID
			name     string
			position int
		)
		if err = rows.Scan(&id, &name, &position); err != nil {
			return process.Sequence{}, err
		}

		pID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return process.Sequence{}, idErr
		}
		p, pErr := process.RestoreProcess(pID, name, position)
		if pErr != nil {
			return process.Sequence{}, pErr
		}
		processes = append(processes, p)
	}

	if err = rows.Err(); err != nil {
		return process.Sequence{}, err
	}

	return process.NewSequence(processes), nil
}

func nullableUUID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil //nolint:nilnil // NULL column
	}
	kID, err := kernel.UUIDFromBytes(id.UUID[:])
	if err != nil {
		return nil, err
	}
	return &kID, nil
}
