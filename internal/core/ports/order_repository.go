// Package ports defines the contracts between the progress tracker core and
// its infrastructure: repositories bound to a unit of work, and the publisher
// of process transitions.
package ports

import (
	"context"

	"progress/internal/core/domain/model/kernel"
	"progress/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// Returns errs.ErrObjectAlreadyExists when order_no is taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the current process and status of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row until the surrounding
	// transaction ends. Every transition of an order runs behind this lock,
	// so transitions of one order are serialized and different orders never
	// wait on each other.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ExistsByOrderNo reports whether an order with this order_no is stored.
	ExistsByOrderNo(ctx context.Context, orderNo string) (bool, error)
}
