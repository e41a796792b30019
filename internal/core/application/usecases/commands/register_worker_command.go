package commands

import (
	"errors"
	"strings"
	"time"

	"progress/internal/core/domain/model/kernel"
	"progress/internal/pkg/guard"
)

var (
	ErrRegisterWorkerCommandIsNotConstructed = errors.New(
		"RegisterWorkerCommand must be created via NewRegisterWorkerCommand constructor",
	)
	ErrEmployeeIDIsRequired = errors.New("employee_id is required")
	ErrWorkerNameIsRequired = errors.New("worker name is required")
	ErrPasswordIsRequired   = errors.New("password is required")
)

// WorkerDetails carries the optional worker fields.
type WorkerDetails struct {
	HireDate   *time.Time
	Department string
	IsActive   bool
}

// RegisterWorkerCommand represents a request to register a worker account.
type RegisterWorkerCommand struct { //nolint:recvcheck //using for validation
	workerID   kernel.UUID
	employeeID string
	name       string
	password   string
	details    WorkerDetails

	guard guard.ConstructorGuard
}

func NewRegisterWorkerCommand(
	workerID kernel.UUID,
	employeeID, name, password string,
	details WorkerDetails,
) (RegisterWorkerCommand, error) {
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
	if password == "" {
		problems = append(problems, ErrPasswordIsRequired)
	}
	if err := errors.Join(problems...); err != nil {
		return RegisterWorkerCommand{}, err
	}

	return RegisterWorkerCommand{
		workerID:   workerID,
		employeeID: strings.TrimSpace(employeeID),
		name:       name,
		password:   password,
		details:    details,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterWorkerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterWorkerCommandIsNotConstructed)
}

func (c RegisterWorkerCommand) WorkerID() kernel.UUID  { return c.workerID }
func (c RegisterWorkerCommand) EmployeeID() string     { return c.employeeID }
func (c RegisterWorkerCommand) Name() string           { return c.name }
func (c RegisterWorkerCommand) Password() string       { return c.password }
func (c RegisterWorkerCommand) Details() WorkerDetails { return c.details }
