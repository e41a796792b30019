package queries

import (
	"errors"
	"time"

	"progress/internal/core/domain/model/kernel"
	"progress/internal/pkg/guard"
)

var ErrListWorkersQueryIsNotConstructed = errors.New(
	"ListWorkersQuery must be created via NewListWorkersQuery constructor",
)

// ListWorkersQuery returns every worker account ordered by employee_id.
// Password hashes never leave the repository.
type ListWorkersQuery struct {
	guard guard.ConstructorGuard
}

func NewListWorkersQuery() ListWorkersQuery {
	return ListWorkersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListWorkersQuery) Validate() error {
	return q.guard.Validate(ErrListWorkersQueryIsNotConstructed)
}

type WorkerView struct {
	ID         kernel.UUID
	EmployeeID string
	Name       string
	HireDate   *time.Time
	Department string
	IsActive   bool
}
