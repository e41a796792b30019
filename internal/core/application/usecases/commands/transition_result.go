package commands

import (
	"progress/internal/core/domain/model/kernel"
	"progress/internal/core/domain/model/order"
)

// TransitionResult is the order state after a successful start or complete.
type TransitionResult struct {
	OrderID            kernel.UUID
	OrderNo            string
	CurrentProcessID   *kernel.UUID
	Status             order.Status
	ProgressPercentage int
}
