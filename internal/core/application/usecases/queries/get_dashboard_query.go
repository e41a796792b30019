package queries

import (
	"errors"

	"progress/internal/pkg/guard"
)

var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

// GetDashboardQuery aggregates order counts by status.
type GetDashboardQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDashboardQuery() GetDashboardQuery {
	return GetDashboardQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

// Dashboard weighs Completed orders as 100, InProgress as 50 and NotStarted
// as 0; AverageProgress is the mean rounded to one decimal.
type Dashboard struct {
	Total           int
	Completed       int
	InProgress      int
	NotStarted      int
	AverageProgress float64
}
