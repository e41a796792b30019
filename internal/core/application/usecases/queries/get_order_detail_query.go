package queries

import (
	"errors"
	"time"

	"progress/internal/core/domain/model/kernel"
	"progress/internal/pkg/guard"
)

var ErrGetOrderDetailQueryIsNotConstructed = errors.New(
	"GetOrderDetailQuery must be created via NewGetOrderDetailQuery constructor",
)

// GetOrderDetailQuery loads one order with the registry and its progress log.
type GetOrderDetailQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderDetailQuery(orderID kernel.UUID) (GetOrderDetailQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderDetailQuery{}, err
	}
	return GetOrderDetailQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailQueryIsNotConstructed)
}

func (q GetOrderDetailQuery) OrderID() kernel.UUID {
	return q.orderID
}

// LogLine is one progress entry. Names are empty when the process or worker
// no longer exists, or when no worker was recorded. Duration is zero while
// the entry is open.
type LogLine struct {
	ID          kernel.UUID
	ProcessID   kernel.UUID
	ProcessName string
	WorkerID    *kernel.UUID
	WorkerName  string
	StartTime   time.Time
	EndTime     *time.Time
	Duration    time.Duration
}

// OrderDetail is the order page: the order, the registry to draw the line
// against and the chronological log.
type OrderDetail struct {
	Order     OrderSummary
	Processes []ProcessView
	Log       []LogLine
}
