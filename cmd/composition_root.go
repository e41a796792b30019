package cmd

import (
	"log/slog"

	httpin "progress/internal/adapters/in/http"
	"progress/internal/adapters/out/postgres"
	"progress/internal/core/application/usecases/commands"
	"progress/internal/core/application/usecases/queries"
	"progress/internal/core/domain/services"
	"progress/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	engine     services.TransitionEngine
}

// NewCompositionRoot wires the use cases. publisher may be nil, in which case
// transitions are not published.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, publisher ports.TransitionPublisher, logger *slog.Logger) CompositionRoot {
	var opts []services.Option
	if cfg.StrictCompletion {
		opts = append(opts, services.WithStrictCompletion())
	}

	if logger == nil {
		logger = slog.Default()
	}
	engine := services.NewTransitionEngine(opts...)
	logger.Info("Transition engine configured",
		"strict_completion", engine.IsStrict(),
		"publish_transitions", publisher != nil,
	)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		engine:     engine,
	}
}

func (c *CompositionRoot) CreateStartProcessCommandHandler() commands.StartProcessCommandHandler {
	var f commands.TransitionUoWFactory = FuncTransitionUoWFactory(func() commands.TransitionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartProcessCommandHandler(f, c.engine)
}

func (c *CompositionRoot) CreateCompleteProcessCommandHandler() commands.CompleteProcessCommandHandler {
	var f commands.TransitionUoWFactory = FuncTransitionUoWFactory(func() commands.TransitionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteProcessCommandHandler(f, c.engine)
}

func (c *CompositionRoot) CreateRegisterOrderCommandHandler() commands.RegisterOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateBulkRegisterOrdersCommandHandler() commands.BulkRegisterOrdersCommandHandler {
	register := c.CreateRegisterOrderCommandHandler()
	return commands.NewBulkRegisterOrdersCommandHandler(&register)
}

func (c *CompositionRoot) CreateProcessCommandHandler() commands.ProcessCommandHandler {
	return commands.NewProcessCommandHandler(c.processUoWFactory())
}

func (c *CompositionRoot) CreateSeedProcessesCommandHandler() commands.SeedProcessesCommandHandler {
	return commands.NewSeedProcessesCommandHandler(c.processUoWFactory())
}

func (c *CompositionRoot) CreateRegisterWorkerCommandHandler() commands.RegisterWorkerCommandHandler {
	return commands.NewRegisterWorkerCommandHandler(c.workerUoWFactory())
}

func (c *CompositionRoot) CreateWorkerCommandHandler() commands.WorkerCommandHandler {
	return commands.NewWorkerCommandHandler(c.workerUoWFactory())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderDetailQueryHandler() queries.GetOrderDetailQueryHandler {
	return queries.NewGetOrderDetailQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListProcessesQueryHandler() queries.ListProcessesQueryHandler {
	return queries.NewListProcessesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListWorkersQueryHandler() queries.ListWorkersQueryHandler {
	return queries.NewListWorkersQueryHandler(c.gormDB)
}

// CreateHTTPHandlers collects the use cases served by the HTTP adapter.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	start := c.CreateStartProcessCommandHandler()
	complete := c.CreateCompleteProcessCommandHandler()
	register := c.CreateRegisterOrderCommandHandler()
	bulk := c.CreateBulkRegisterOrdersCommandHandler()
	process := c.CreateProcessCommandHandler()
	registerWorker := c.CreateRegisterWorkerCommandHandler()
	workerAdmin := c.CreateWorkerCommandHandler()

	return httpin.Handlers{
		StartProcess:       &start,
		CompleteProcess:    &complete,
		RegisterOrder:      &register,
		BulkRegisterOrders: &bulk,
		Process:            &process,
		RegisterWorker:     &registerWorker,
		Worker:             &workerAdmin,

		ListOrders:     c.CreateListOrdersQueryHandler(),
		GetOrderDetail: c.CreateGetOrderDetailQueryHandler(),
		GetDashboard:   c.CreateGetDashboardQueryHandler(),
		ListProcesses:  c.CreateListProcessesQueryHandler(),
		ListWorkers:    c.CreateListWorkersQueryHandler(),
	}
}

func (c *CompositionRoot) workerUoWFactory() commands.WorkerUoWFactory {
	return FuncWorkerUoWFactory(func() commands.WorkerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) processUoWFactory() commands.ProcessUoWFactory {
	return FuncProcessUoWFactory(func() commands.ProcessUoW {
		return c.uowFactory.Create()
	})
}

type FuncTransitionUoWFactory func() commands.TransitionUoW

func (f FuncTransitionUoWFactory) Create() commands.TransitionUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProcessUoWFactory func() commands.ProcessUoW

func (f FuncProcessUoWFactory) Create() commands.ProcessUoW {
	return f()
}

type FuncWorkerUoWFactory func() commands.WorkerUoW

func (f FuncWorkerUoWFactory) Create() commands.WorkerUoW {
	return f()
}
