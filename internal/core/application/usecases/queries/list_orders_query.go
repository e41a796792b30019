package queries

import (
	"errors"
	"strings"
	"time"

	"progress/internal/core/domain/model/kernel"
	"progress/internal/core/domain/model/order"
	"progress/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery filters the order list.
//
// Example:
//
//	status := order.InProgress
//	query, err := NewListOrdersQuery("bracket", &status)
//	if err != nil {
//	    return err
//	}
//	rows, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	search string
	status *order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery matches search case-insensitively against order_no and
// product_name. Empty search and nil status disable the filters.
func NewListOrdersQuery(search string, status *order.Status) (ListOrdersQuery, error) {
	q := ListOrdersQuery{
		search: strings.TrimSpace(search),
		guard:  guard.NewConstructorGuard(),
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
		s := *status
		q.status = &s
	}

	return q, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Search() string {
	return q.search
}

func (q ListOrdersQuery) Status() *order.Status {
	if q.status == nil {
		return nil
	}
	s := *q.status
	return &s
}

// OrderSummary is one line of the order list. CurrentProcessName is empty
// when the order has no current process or it was deleted.
type OrderSummary struct {
	ID                 kernel.UUID
	OrderNo            string
	ProductName        string
	Quantity           int
	DueDate            time.Time
	Status             order.Status
	CurrentProcessID   *kernel.UUID
	CurrentProcessName string
	ProgressPercentage int
	CreatedAt          time.Time
}
