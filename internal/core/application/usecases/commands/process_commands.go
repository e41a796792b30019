package commands

import (
	"errors"
	"strings"

	"progress/internal/core/domain/model/kernel"
	"progress/internal/pkg/guard"
)

var (
	ErrCreateProcessCommandIsNotConstructed = errors.New(
		"CreateProcessCommand must be created via NewCreateProcessCommand constructor",
	)
	ErrUpdateProcessCommandIsNotConstructed = errors.New(
		"UpdateProcessCommand must be created via NewUpdateProcessCommand constructor",
	)
	ErrDeleteProcessCommandIsNotConstructed = errors.New(
		"DeleteProcessCommand must be created via NewDeleteProcessCommand constructor",
	)
	ErrProcessNameIsRequired  = errors.New("process name is required")
	ErrProcessPositionInvalid = errors.New("process order must not be negative")
)

// CreateProcessCommand adds a step to the registry.
type CreateProcessCommand struct { //nolint:recvcheck //using for validation
	processID kernel.UUID
	name      string
	position  int

	guard guard.ConstructorGuard
}

func NewCreateProcessCommand(processID kernel.UUID, name string, position int) (CreateProcessCommand, error) {
	cmd := CreateProcessCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		processID.Validate(),
		validateProcessName(name),
		validateProcessPosition(position),
	); err != nil {
		return CreateProcessCommand{}, err
	}

	cmd.processID = processID
	cmd.name = strings.TrimSpace(name)
	cmd.position = position
	return cmd, nil
}

func (c CreateProcessCommand) Validate() error {
	return c.guard.Validate(ErrCreateProcessCommandIsNotConstructed)
}

func (c CreateProcessCommand) ProcessID() kernel.UUID { return c.processID }
func (c CreateProcessCommand) Name() string           { return c.name }
func (c CreateProcessCommand) Position() int          { return c.position }

// UpdateProcessCommand renames and repositions a registered step.
type UpdateProcessCommand struct { //nolint:recvcheck //using for validation
	processID kernel.UUID
	name      string
	position  int

	guard guard.ConstructorGuard
}

func NewUpdateProcessCommand(processID kernel.UUID, name string, position int) (UpdateProcessCommand, error) {
	cmd := UpdateProcessCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		processID.Validate(),
		validateProcessName(name),
		validateProcessPosition(position),
	); err != nil {
		return UpdateProcessCommand{}, err
	}

	cmd.processID = processID
	cmd.name = strings.TrimSpace(name)
	cmd.position = position
	return cmd, nil
}

func (c UpdateProcessCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProcessCommandIsNotConstructed)
}

func (c UpdateProcessCommand) ProcessID() kernel.UUID { return c.processID }
func (c UpdateProcessCommand) Name() string           { return c.name }
func (c UpdateProcessCommand) Position() int          { return c.position }

// DeleteProcessCommand removes a step from the registry. Orders and log
// entries that reference it keep the identifier.
type DeleteProcessCommand struct { //nolint:recvcheck //using for validation
	processID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteProcessCommand(processID kernel.UUID) (DeleteProcessCommand, error) {
	if err := processID.Validate(); err != nil {
		return DeleteProcessCommand{}, err
	}
	return DeleteProcessCommand{processID: processID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteProcessCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProcessCommandIsNotConstructed)
}

func (c DeleteProcessCommand) ProcessID() kernel.UUID { return c.processID }

func validateProcessName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrProcessNameIsRequired
	}
	return nil
}

func validateProcessPosition(position int) error {
	if position < 0 {
		return ErrProcessPositionInvalid
	}
	return nil
}
