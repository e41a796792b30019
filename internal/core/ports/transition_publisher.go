package ports

import (
	"context"

	"progress/internal/core/domain/model/order"
)

// TransitionPublisher delivers committed process transitions to other systems.
// It is called only after the transaction that produced the transition has
// committed; a failure never undoes the transition.
type TransitionPublisher interface {
	Publish(ctx context.Context, transition order.Transition) error
}
