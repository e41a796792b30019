package commands

import (
	"errors"

	"progress/internal/core/domain/model/kernel"
	"progress/internal/pkg/guard"
)

var ErrStartProcessCommandIsNotConstructed = errors.New(
	"StartProcessCommand must be created via NewStartProcessCommand constructor",
)

// StartProcessCommand asks to open a process for an order. The actor is the
// worker doing it and may be nil.
//
// Example:
//
//	cmd, err := NewStartProcessCommand(orderID, processID, &workerID)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type StartProcessCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	processID kernel.UUID
	actor     *kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartProcessCommand validates the identifiers of a start request.
//
// Parameters:
//   - orderID: the order to advance
//   - processID: the process to open
//   - actor: the worker, nil when the request is anonymous
//
// Returns:
//   - StartProcessCommand: the validated command
//   - error: the joined identifier errors
func NewStartProcessCommand(orderID, processID kernel.UUID, actor *kernel.UUID) (StartProcessCommand, error) {
	cmd := StartProcessCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProcessID(processID),
		cmd.setActor(actor),
	); err != nil {
		return StartProcessCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartProcessCommand) Validate() error {
	return c.guard.Validate(ErrStartProcessCommandIsNotConstructed)
}

func (c StartProcessCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c StartProcessCommand) ProcessID() kernel.UUID {
	return c.processID
}

func (c StartProcessCommand) Actor() *kernel.UUID {
	if c.actor == nil {
		return nil
	}
	return c.actor.Ptr()
}

func (c *StartProcessCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *StartProcessCommand) setProcessID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.processID = id
	return nil
}

func (c *StartProcessCommand) setActor(actor *kernel.UUID) error {
	if actor == nil {
		return nil
	}
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor.Ptr()
	return nil
}
