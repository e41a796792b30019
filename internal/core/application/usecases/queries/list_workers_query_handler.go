package queries

import (
	"context"
	"time"

	"progress/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListWorkersQueryHandler struct {
	db *gorm.DB
}

func NewListWorkersQueryHandler(db *gorm.DB) ListWorkersQueryHandler {
	return ListWorkersQueryHandler{db: db}
}

func (h ListWorkersQueryHandler) Handle(ctx context.Context, query ListWorkersQuery) ([]WorkerView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	workers := make([]WorkerView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			employee_id,
			name,
			hire_date,
			COALESCE(department, ''),
			is_active
		FROM workers
		ORDER BY employee_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			view     WorkerView
			id       uuid.UUID
			hireDate *time.Time
		)
		if err = rows.Scan(&id, &view.EmployeeID, &view.Name, &hireDate, &view.Department, &view.IsActive); err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		view.HireDate = hireDate
		workers = append(workers, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return workers, nil
}
