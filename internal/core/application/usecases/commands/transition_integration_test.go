package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	postgres_adapter "progress/internal/adapters/out/postgres"
	"progress/internal/adapters/out/postgres/pgtest"
	"progress/internal/core/application/usecases/commands"
	"progress/internal/core/domain/model/kernel"
	"progress/internal/core/domain/model/order"
	"progress/internal/core/domain/model/process"
	"progress/internal/core/domain/model/worker"
	"progress/internal/core/domain/services"
	"progress/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, order.Transition) error { return nil }

type transitionFactory struct{ f ports.UnitOfWorkFactory }

func (t transitionFactory) Create() commands.TransitionUoW { return t.f.Create() }

type orderFactory struct{ f ports.UnitOfWorkFactory }

func (o orderFactory) Create() commands.OrderUoW { return o.f.Create() }

type workerFactory struct{ f ports.UnitOfWorkFactory }

func (w workerFactory) Create() commands.WorkerUoW { return w.f.Create() }

// TransitionIntegrationTestSuite drives the command handlers against PostgreSQL.
type TransitionIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	uow       ports.UnitOfWorkFactory

	register commands.RegisterOrderCommandHandler
	start    commands.StartProcessCommandHandler
	complete commands.CompleteProcessCommandHandler

	cut, weld, paint *process.Process
}

func (suite *TransitionIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
	suite.Require().NoError(postgres_adapter.Migrate(db))
}

func (suite *TransitionIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, processes, progress_logs, workers").Error)

	suite.uow = postgres_adapter.NewGormUnitOfWorkFactory(suite.db, noopPublisher{}, nil)
	engine := services.NewTransitionEngine()
	suite.register = commands.NewRegisterOrderCommandHandler(orderFactory{suite.uow})
	suite.start = commands.NewStartProcessCommandHandler(transitionFactory{suite.uow}, engine)
	suite.complete = commands.NewCompleteProcessCommandHandler(transitionFactory{suite.uow}, engine)

	repo := suite.uow.Create().ProcessRepository()
	for i, target := range []**process.Process{&suite.cut, &suite.weld, &suite.paint} {
		p, err := process.NewProcess(kernel.NewUUID(), []string{"Cut", "Weld", "Paint"}[i], i+1)
		suite.Require().NoError(err)
		suite.Require().NoError(repo.Add(ctx, p))
		*target = p
	}
}

func (suite *TransitionIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TransitionIntegrationTestSuite) registerOrder(orderNo string) kernel.UUID {
	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterOrderCommand(id, orderNo, "Bracket", 10, time.Now().AddDate(0, 0, 7))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.register.Handle(context.Background(), cmd))
	return id
}

func (suite *TransitionIntegrationTestSuite) startCmd(orderID kernel.UUID, p *process.Process) commands.StartProcessCommand {
	cmd, err := commands.NewStartProcessCommand(orderID, p.ID(), nil)
	suite.Require().NoError(err)
	return cmd
}

func (suite *TransitionIntegrationTestSuite) completeCmd(orderID kernel.UUID, p *process.Process) commands.CompleteProcessCommand {
	cmd, err := commands.NewCompleteProcessCommand(orderID, p.ID())
	suite.Require().NoError(err)
	return cmd
}

func (suite *TransitionIntegrationTestSuite) TestFullLine() {
	ctx := context.Background()
	orderID := suite.registerOrder("O-1")

	_, err := suite.start.Handle(ctx, suite.startCmd(orderID, suite.weld))
	suite.Require().ErrorIs(err, services.ErrPrecedingProcessIncomplete)

	result, err := suite.start.Handle(ctx, suite.startCmd(orderID, suite.cut))
	suite.Require().NoError(err)
	suite.Equal(order.InProgress, result.Status)
	suite.Equal(0, result.ProgressPercentage)

	result, err = suite.complete.Handle(ctx, suite.completeCmd(orderID, suite.cut))
	suite.Require().NoError(err)
	suite.True(kernel.EqualPtr(result.CurrentProcessID, suite.weld.ID().Ptr()))
	suite.Equal(50, result.ProgressPercentage)

	_, err = suite.start.Handle(ctx, suite.startCmd(orderID, suite.weld))
	suite.Require().NoError(err)
	_, err = suite.complete.Handle(ctx, suite.completeCmd(orderID, suite.weld))
	suite.Require().NoError(err)
	_, err = suite.start.Handle(ctx, suite.startCmd(orderID, suite.paint))
	suite.Require().NoError(err)

	result, err = suite.complete.Handle(ctx, suite.completeCmd(orderID, suite.paint))
	suite.Require().NoError(err)
	suite.Equal(order.Completed, result.Status)
	suite.Equal(100, result.ProgressPercentage)

	entries, err := suite.uow.Create().ProgressLogRepository().ListByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 3)
	for _, e := range entries {
		suite.True(e.IsClosed())
	}
}

func (suite *TransitionIntegrationTestSuite) TestCompleteWithoutStart() {
	ctx := context.Background()
	orderID := suite.registerOrder("O-2")

	_, err := suite.complete.Handle(ctx, suite.completeCmd(orderID, suite.cut))
	suite.Require().ErrorIs(err, services.ErrNotStarted)

	o, err := suite.uow.Create().OrderRepository().Get(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(order.NotStarted, o.Status())
}

func (suite *TransitionIntegrationTestSuite) TestConcurrentStartsOfSamePair() {
	ctx := context.Background()
	orderID := suite.registerOrder("O-3")

	const racers = 2
	errsCh := make(chan error, racers)
	var wg sync.WaitGroup
	for range racers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := suite.start.Handle(ctx, suite.startCmd(orderID, suite.cut))
			errsCh <- err
		}()
	}
	wg.Wait()
	close(errsCh)

	var succeeded, rejected int
	for err := range errsCh {
		switch {
		case err == nil:
			succeeded++
		default:
			suite.Require().ErrorIs(err, services.ErrAlreadyInProgress)
			rejected++
		}
	}
	suite.Equal(1, succeeded)
	suite.Equal(1, rejected)

	entries, err := suite.uow.Create().ProgressLogRepository().ListByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Len(entries, 1)
}

func (suite *TransitionIntegrationTestSuite) TestConcurrentCompletesOfSamePair() {
	ctx := context.Background()
	orderID := suite.registerOrder("O-5")
	_, err := suite.start.Handle(ctx, suite.startCmd(orderID, suite.cut))
	suite.Require().NoError(err)

	const racers = 2
	errsCh := make(chan error, racers)
	var wg sync.WaitGroup
	for range racers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, completeErr := suite.complete.Handle(ctx, suite.completeCmd(orderID, suite.cut))
			errsCh <- completeErr
		}()
	}
	wg.Wait()
	close(errsCh)

	var succeeded, rejected int
	for completeErr := range errsCh {
		switch {
		case completeErr == nil:
			succeeded++
		default:
			suite.Require().ErrorIs(completeErr, services.ErrNotStarted)
			rejected++
		}
	}
	suite.Equal(1, succeeded)
	suite.Equal(1, rejected)

	uow := suite.uow.Create()
	entries, err := uow.ProgressLogRepository().ListByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.True(entries[0].IsClosed())

	o, err := uow.OrderRepository().Get(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(order.InProgress, o.Status())
	suite.True(kernel.EqualPtr(o.CurrentProcess(), suite.weld.ID().Ptr()), "advanced exactly once")
}

func (suite *TransitionIntegrationTestSuite) TestDeleteWorkerKeepsLog() {
	ctx := context.Background()
	orderID := suite.registerOrder("O-6")
	w, err := worker.NewWorker(kernel.NewUUID(), "E-1", "Aiko", "password1", worker.Profile{IsActive: true})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.uow.Create().WorkerRepository().Add(ctx, w))

	startCmd, err := commands.NewStartProcessCommand(orderID, suite.cut.ID(), w.ID().Ptr())
	suite.Require().NoError(err)
	_, err = suite.start.Handle(ctx, startCmd)
	suite.Require().NoError(err)

	deleteCmd, err := commands.NewDeleteWorkerCommand(w.ID())
	suite.Require().NoError(err)
	admin := commands.NewWorkerCommandHandler(workerFactory{suite.uow})
	suite.Require().NoError(admin.HandleDelete(ctx, deleteCmd))

	entries, err := suite.uow.Create().ProgressLogRepository().ListByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.Nil(entries[0].WorkerID())

	_, err = suite.complete.Handle(ctx, suite.completeCmd(orderID, suite.cut))
	suite.Require().NoError(err)
}

func (suite *TransitionIntegrationTestSuite) TestRestartAfterCompletion() {
	ctx := context.Background()
	orderID := suite.registerOrder("O-4")

	_, err := suite.start.Handle(ctx, suite.startCmd(orderID, suite.cut))
	suite.Require().NoError(err)
	_, err = suite.complete.Handle(ctx, suite.completeCmd(orderID, suite.cut))
	suite.Require().NoError(err)

	result, err := suite.start.Handle(ctx, suite.startCmd(orderID, suite.cut))
	suite.Require().NoError(err)
	suite.True(kernel.EqualPtr(result.CurrentProcessID, suite.cut.ID().Ptr()))
	suite.Equal(order.InProgress, result.Status)
}

func TestTransitionIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TransitionIntegrationTestSuite))
}
