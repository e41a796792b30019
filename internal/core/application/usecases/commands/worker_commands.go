package commands

import (
	"errors"
	"strings"

	"progress/internal/core/domain/model/kernel"
	"progress/internal/pkg/guard"
)

var (
	ErrUpdateWorkerCommandIsNotConstructed = errors.New(
		"UpdateWorkerCommand must be created via NewUpdateWorkerCommand constructor",
	)
	ErrDeleteWorkerCommandIsNotConstructed = errors.New(
		"DeleteWorkerCommand must be created via NewDeleteWorkerCommand constructor",
	)
)

// UpdateWorkerCommand edits a registered worker. The profile is replaced as a
// whole; the password only when a new one is given.
type UpdateWorkerCommand struct { //nolint:recvcheck //using for validation
	workerID   kernel.UUID
	employeeID string
	name       string
	password   string
	details    WorkerDetails

	guard guard.ConstructorGuard
}

// NewUpdateWorkerCommand validates the request shape. Field limits are
// checked by the worker aggregate.
//
// Parameters:
//   - workerID: the worker to edit
//   - employeeID: required, may change to a number no other worker holds
//   - name: required
//   - password: empty keeps the current password
//   - details: hire date, department and active flag
//
// Returns:
//   - UpdateWorkerCommand: the validated command
//   - error: the joined ErrEmployeeIDIsRequired / ErrWorkerNameIsRequired
//     or identifier validation failures
func NewUpdateWorkerCommand(
	workerID kernel.UUID,
	employeeID, name, password string,
	details WorkerDetails,
) (UpdateWorkerCommand, error) {
	var problems []error
	if err := workerID.Validate(); err != nil {
		problems = append(problems, err)
	}
	if strings.TrimSpace(employeeID) == "" {
		problems = append(problems, ErrEmployeeIDIsRequired)
	}
	if strings.TrimSpace(name) == "" {
		problems = append(problems, ErrWorkerNameIsRequired)
	}
	if err := errors.Join(problems...); err != nil {
		return UpdateWorkerCommand{}, err
	}

	return UpdateWorkerCommand{
		workerID:   workerID,
		employeeID: strings.TrimSpace(employeeID),
		name:       name,
		password:   password,
		details:    details,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateWorkerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateWorkerCommandIsNotConstructed)
}

func (c UpdateWorkerCommand) WorkerID() kernel.UUID  { return c.workerID }
func (c UpdateWorkerCommand) EmployeeID() string     { return c.employeeID }
func (c UpdateWorkerCommand) Name() string           { return c.name }
func (c UpdateWorkerCommand) Password() string       { return c.password }
func (c UpdateWorkerCommand) Details() WorkerDetails { return c.details }

// DeleteWorkerCommand removes a worker. Progress entries recorded by the
// worker stay in the log without a worker.
type DeleteWorkerCommand struct { //nolint:recvcheck //using for validation
	workerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteWorkerCommand(workerID kernel.UUID) (DeleteWorkerCommand, error) {
	if err := workerID.Validate(); err != nil {
		return DeleteWorkerCommand{}, err
	}
	return DeleteWorkerCommand{workerID: workerID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteWorkerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteWorkerCommandIsNotConstructed)
}

func (c DeleteWorkerCommand) WorkerID() kernel.UUID { return c.workerID }
