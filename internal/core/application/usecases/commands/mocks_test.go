package commands_test

import (
	"context"

	"progress/internal/core/application/usecases/commands"
	"progress/internal/core/domain/model/kernel"
	"progress/internal/core/domain/model/order"
	"progress/internal/core/domain/model/process"
	"progress/internal/core/domain/model/progress"
	"progress/internal/core/domain/model/worker"
	"progress/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) ExistsByOrderNo(ctx context.Context, orderNo string) (bool, error) {
	args := m.Called(ctx, orderNo)
	return args.Bool(0), args.Error(1)
}

type MockProcessRepository struct{ mock.Mock }

func (m *MockProcessRepository) Add(ctx context.Context, p *process.Process) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProcessRepository) Update(ctx context.Context, p *process.Process) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockProcessRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockProcessRepository) Get(ctx context.Context, id kernel.UUID) (*process.Process, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*process.Process)
	return p, args.Error(1)
}
func (m *MockProcessRepository) Sequence(ctx context.Context) (process.Sequence, error) {
	args := m.Called(ctx)
	seq, _ := args.Get(0).(process.Sequence)
	return seq, args.Error(1)
}

type MockProgressLogRepository struct{ mock.Mock }

func (m *MockProgressLogRepository) Add(ctx context.Context, e *progress.Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockProgressLogRepository) Close(ctx context.Context, e *progress.Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockProgressLogRepository) FindOpen(ctx context.Context, orderID, processID kernel.UUID) (*progress.Entry, error) {
	args := m.Called(ctx, orderID, processID)
	e, _ := args.Get(0).(*progress.Entry)
	return e, args.Error(1)
}
func (m *MockProgressLogRepository) FindLatest(ctx context.Context, orderID, processID kernel.UUID) (*progress.Entry, error) {
	args := m.Called(ctx, orderID, processID)
	e, _ := args.Get(0).(*progress.Entry)
	return e, args.Error(1)
}
func (m *MockProgressLogRepository) DetachWorker(ctx context.Context, workerID kernel.UUID) error {
	args := m.Called(ctx, workerID)
	return args.Error(0)
}
func (m *MockProgressLogRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*progress.Entry, error) {
	args := m.Called(ctx, orderID)
	entries, _ := args.Get(0).([]*progress.Entry)
	return entries, args.Error(1)
}

type MockWorkerRepository struct{ mock.Mock }

func (m *MockWorkerRepository) Add(ctx context.Context, w *worker.Worker) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}
func (m *MockWorkerRepository) Update(ctx context.Context, w *worker.Worker) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}
func (m *MockWorkerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockWorkerRepository) Get(ctx context.Context, id kernel.UUID) (*worker.Worker, error) {
	args := m.Called(ctx, id)
	w, _ := args.Get(0).(*worker.Worker)
	return w, args.Error(1)
}
func (m *MockWorkerRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*worker.Worker, error) {
	args := m.Called(ctx, employeeID)
	w, _ := args.Get(0).(*worker.Worker)
	return w, args.Error(1)
}

// MockUoW satisfies every unit of work interface of the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUoW) ProcessRepository() ports.ProcessRepository {
	args := m.Called()
	return args.Get(0).(ports.ProcessRepository)
}
func (m *MockUoW) ProgressLogRepository() ports.ProgressLogRepository {
	args := m.Called()
	return args.Get(0).(ports.ProgressLogRepository)
}
func (m *MockUoW) WorkerRepository() ports.WorkerRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkerRepository)
}

type MockTransitionUoWFactory struct{ mock.Mock }

func (m *MockTransitionUoWFactory) Create() commands.TransitionUoW {
	args := m.Called()
	return args.Get(0).(commands.TransitionUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockProcessUoWFactory struct{ mock.Mock }

func (m *MockProcessUoWFactory) Create() commands.ProcessUoW {
	args := m.Called()
	return args.Get(0).(commands.ProcessUoW)
}

type MockWorkerUoWFactory struct{ mock.Mock }

func (m *MockWorkerUoWFactory) Create() commands.WorkerUoW {
	args := m.Called()
	return args.Get(0).(commands.WorkerUoW)
}
