package commands_test

import (
	"testing"

	"progress/internal/core/application/usecases/commands"
	"progress/internal/core/domain/model/kernel"
	"progress/internal/core/domain/model/worker"
	"progress/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newWorkerMocks() (*MockWorkerRepository, *MockUoW, *MockWorkerUoWFactory) {
	repo := new(MockWorkerRepository)
	uow := new(MockUoW)
	factory := new(MockWorkerUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("WorkerRepository").Return(repo).Once()
	return repo, uow, factory
}

func TestRegisterWorkerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	repo, uow, factory := newWorkerMocks()

	cmd, err := commands.NewRegisterWorkerCommand(kernel.NewUUID(), "E-001", "Aiko", "s3cret-pass",
		commands.WorkerDetails{Department: "Assembly", IsActive: true})
	require.NoError(t, err)

	var added *worker.Worker
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("GetByEmployeeID", ctx, "E-001").Return(nil, errs.NewObjectNotFoundError("employee_id", "E-001")).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*worker.Worker")).
			Run(func(args mock.Arguments) { added = args.Get(1).(*worker.Worker) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewRegisterWorkerCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, added)
	assert.Equal(t, "E-001", added.EmployeeID())
	assert.Equal(t, "Assembly", added.Department())
	assert.True(t, added.IsActive())
	require.NoError(t, added.CheckPassword("s3cret-pass"))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterWorkerCommandHandler_Handle_DuplicateEmployeeID(t *testing.T) {
	ctx := t.Context()
	repo, uow, factory := newWorkerMocks()

	existing, err := worker.NewWorker(kernel.NewUUID(), "E-001", "Aiko", "s3cret-pass", worker.Profile{IsActive: true})
	require.NoError(t, err)

	cmd, err := commands.NewRegisterWorkerCommand(kernel.NewUUID(), "E-001", "Ben", "another-pass", commands.WorkerDetails{})
	require.NoError(t, err)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("GetByEmployeeID", ctx, "E-001").Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewRegisterWorkerCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), commands.ErrDuplicateEmployeeID)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterWorkerCommandHandler_Handle_DuplicateOnInsert(t *testing.T) {
	ctx := t.Context()
	repo, uow, factory := newWorkerMocks()

	cmd, err := commands.NewRegisterWorkerCommand(kernel.NewUUID(), "E-001", "Ben", "another-pass", commands.WorkerDetails{})
	require.NoError(t, err)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("GetByEmployeeID", ctx, "E-001").Return(nil, errs.NewObjectNotFoundError("employee_id", "E-001")).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*worker.Worker")).
			Return(errs.NewObjectAlreadyExistsError("employee_id", "E-001")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewRegisterWorkerCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), commands.ErrDuplicateEmployeeID)
	uow.AssertExpectations(t)
}

func TestRegisterWorkerCommandHandler_Handle_ShortPassword(t *testing.T) {
	cmd, err := commands.NewRegisterWorkerCommand(kernel.NewUUID(), "E-001", "Ben", "short", commands.WorkerDetails{})
	require.NoError(t, err)

	factory := new(MockWorkerUoWFactory)
	h := commands.NewRegisterWorkerCommandHandler(factory)
	require.ErrorIs(t, h.Handle(t.Context(), cmd), errs.ErrValueIsOutOfRange)
	factory.AssertNotCalled(t, "Create")
}
