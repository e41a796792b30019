package queries

import (
	"errors"

	"progress/internal/core/domain/model/kernel"
	"progress/internal/pkg/guard"
)

var ErrListProcessesQueryIsNotConstructed = errors.New(
	"ListProcessesQuery must be created via NewListProcessesQuery constructor",
)

// ListProcessesQuery returns the registry in sequence order.
type ListProcessesQuery struct {
	guard guard.ConstructorGuard
}

func NewListProcessesQuery() ListProcessesQuery {
	return ListProcessesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListProcessesQuery) Validate() error {
	return q.guard.Validate(ErrListProcessesQueryIsNotConstructed)
}

type ProcessView struct {
	ID       kernel.UUID
	Name     string
	Position int
}
