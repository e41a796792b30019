package commands

import (
	"errors"

	"progress/internal/core/domain/model/kernel"
	"progress/internal/pkg/guard"
)

var ErrCompleteProcessCommandIsNotConstructed = errors.New(
	"CompleteProcessCommand must be created via NewCompleteProcessCommand constructor",
)

// CompleteProcessCommand asks to close the open entry of (order, process).
type CompleteProcessCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	processID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteProcessCommand validates the identifiers of a completion request.
//
// Returns:
//   - CompleteProcessCommand: the validated command
//   - error: the joined identifier errors
func NewCompleteProcessCommand(orderID, processID kernel.UUID) (CompleteProcessCommand, error) {
	cmd := CompleteProcessCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProcessID(processID),
	); err != nil {
		return CompleteProcessCommand{}, err
	}

	return cmd, nil
}

func (c CompleteProcessCommand) Validate() error {
	return c.guard.Validate(ErrCompleteProcessCommandIsNotConstructed)
}

func (c CompleteProcessCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CompleteProcessCommand) ProcessID() kernel.UUID {
	return c.processID
}

func (c *CompleteProcessCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CompleteProcessCommand) setProcessID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.processID = id
	return nil
}
