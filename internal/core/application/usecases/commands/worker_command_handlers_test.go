package commands_test

import (
	"testing"
	"time"

	"progress/internal/core/application/usecases/commands"
	"progress/internal/core/domain/model/kernel"
	"progress/internal/core/domain/model/worker"
	"progress/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustWorker(t *testing.T, employeeID, name string) *worker.Worker {
	t.Helper()
	w, err := worker.NewWorker(kernel.NewUUID(), employeeID, name, "password1", worker.Profile{IsActive: true})
	require.NoError(t, err)
	return w
}

func TestNewUpdateWorkerCommand(t *testing.T) {
	_, err := commands.NewUpdateWorkerCommand(kernel.NewUUID(), " ", "", "", commands.WorkerDetails{})
	require.ErrorIs(t, err, commands.ErrEmployeeIDIsRequired)
	require.ErrorIs(t, err, commands.ErrWorkerNameIsRequired)

	cmd, err := commands.NewUpdateWorkerCommand(kernel.NewUUID(), " E-7 ", "Ito", "", commands.WorkerDetails{})
	require.NoError(t, err)
	assert.Equal(t, "E-7", cmd.EmployeeID())
	assert.Empty(t, cmd.Password())

	require.ErrorIs(t, commands.UpdateWorkerCommand{}.Validate(), commands.ErrUpdateWorkerCommandIsNotConstructed)
	require.ErrorIs(t, commands.DeleteWorkerCommand{}.Validate(), commands.ErrDeleteWorkerCommandIsNotConstructed)
}

func TestWorkerCommandHandler_HandleUpdate_Success(t *testing.T) {
	ctx := t.Context()
	repo, uow, factory := newWorkerMocks()
	w := mustWorker(t, "E-1", "Ito")
	hired := time.Date(2022, 4, 1, 0, 0, 0, 0, time.UTC)

	cmd, err := commands.NewUpdateWorkerCommand(w.ID(), "E-2", "Ito Ken", "password2",
		commands.WorkerDetails{HireDate: &hired, Department: "Welding"})
	require.NoError(t, err)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", ctx, w.ID()).Return(w, nil).Once(),
		repo.On("GetByEmployeeID", ctx, "E-2").Return(nil, errs.NewObjectNotFoundError("worker", "E-2")).Once(),
		repo.On("Update", ctx, w).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewWorkerCommandHandler(factory)
	require.NoError(t, h.HandleUpdate(ctx, cmd))

	assert.Equal(t, "E-2", w.EmployeeID())
	assert.Equal(t, "Ito Ken", w.Name())
	assert.Equal(t, "Welding", w.Department())
	assert.False(t, w.IsActive())
	require.NoError(t, w.CheckPassword("password2"))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestWorkerCommandHandler_HandleUpdate_KeepsPassword(t *testing.T) {
	ctx := t.Context()
	repo, uow, factory := newWorkerMocks()
	w := mustWorker(t, "E-1", "Ito")

	cmd, err := commands.NewUpdateWorkerCommand(w.ID(), "E-1", "Ito", "", commands.WorkerDetails{IsActive: true})
	require.NoError(t, err)

	uow.On("Begin", ctx).Return(nil).Once()
	repo.On("Get", ctx, w.ID()).Return(w, nil).Once()
	repo.On("Update", ctx, w).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewWorkerCommandHandler(factory)
	require.NoError(t, h.HandleUpdate(ctx, cmd))

	require.NoError(t, w.CheckPassword("password1"))
	repo.AssertNotCalled(t, "GetByEmployeeID", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestWorkerCommandHandler_HandleUpdate_EmployeeIDTaken(t *testing.T) {
	ctx := t.Context()
	repo, uow, factory := newWorkerMocks()
	w := mustWorker(t, "E-1", "Ito")
	holder := mustWorker(t, "E-2", "Abe")

	cmd, err := commands.NewUpdateWorkerCommand(w.ID(), "E-2", "Ito", "", commands.WorkerDetails{})
	require.NoError(t, err)

	uow.On("Begin", ctx).Return(nil).Once()
	repo.On("Get", ctx, w.ID()).Return(w, nil).Once()
	repo.On("GetByEmployeeID", ctx, "E-2").Return(holder, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewWorkerCommandHandler(factory)
	require.ErrorIs(t, h.HandleUpdate(ctx, cmd), commands.ErrDuplicateEmployeeID)

	assert.Equal(t, "E-1", w.EmployeeID())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestWorkerCommandHandler_HandleUpdate_NotFound(t *testing.T) {
	ctx := t.Context()
	repo, uow, factory := newWorkerMocks()
	workerID := kernel.NewUUID()

	cmd, err := commands.NewUpdateWorkerCommand(workerID, "E-1", "Ito", "", commands.WorkerDetails{})
	require.NoError(t, err)

	uow.On("Begin", ctx).Return(nil).Once()
	repo.On("Get", ctx, workerID).Return(nil, errs.NewObjectNotFoundError("worker", workerID)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewWorkerCommandHandler(factory)
	require.ErrorIs(t, h.HandleUpdate(ctx, cmd), errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestWorkerCommandHandler_HandleDelete(t *testing.T) {
	ctx := t.Context()
	repo, uow, factory := newWorkerMocks()
	logRepo := new(MockProgressLogRepository)
	uow.On("ProgressLogRepository").Return(logRepo).Once()
	workerID := kernel.NewUUID()

	cmd, err := commands.NewDeleteWorkerCommand(workerID)
	require.NoError(t, err)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Delete", ctx, workerID).Return(nil).Once(),
		logRepo.On("DetachWorker", ctx, workerID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewWorkerCommandHandler(factory)
	require.NoError(t, h.HandleDelete(ctx, cmd))
	repo.AssertExpectations(t)
	logRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestWorkerCommandHandler_HandleDelete_NotFound(t *testing.T) {
	ctx := t.Context()
	repo, uow, factory := newWorkerMocks()
	workerID := kernel.NewUUID()

	cmd, err := commands.NewDeleteWorkerCommand(workerID)
	require.NoError(t, err)

	uow.On("Begin", ctx).Return(nil).Once()
	repo.On("Delete", ctx, workerID).Return(errs.NewObjectNotFoundError("worker", workerID)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewWorkerCommandHandler(factory)
	require.ErrorIs(t, h.HandleDelete(ctx, cmd), errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "ProgressLogRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
