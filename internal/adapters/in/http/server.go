package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"progress/internal/adapters/in/fileimport"
	"progress/internal/core/application/usecases/commands"
	"progress/internal/core/application/usecases/queries"
	"progress/internal/core/domain/model/kernel"
	"progress/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type (
	StartProcessHandler interface {
		Handle(ctx context.Context, cmd commands.StartProcessCommand) (commands.TransitionResult, error)
	}
	CompleteProcessHandler interface {
		Handle(ctx context.Context, cmd commands.CompleteProcessCommand) (commands.TransitionResult, error)
	}
	RegisterOrderHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterOrderCommand) error
	}
	BulkRegisterOrdersHandler interface {
		Handle(ctx context.Context, cmd commands.BulkRegisterOrdersCommand) (commands.BulkRegisterResult, error)
	}
	ProcessHandler interface {
		HandleCreate(ctx context.Context, cmd commands.CreateProcessCommand) error
		HandleUpdate(ctx context.Context, cmd commands.UpdateProcessCommand) error
		HandleDelete(ctx context.Context, cmd commands.DeleteProcessCommand) error
	}
	RegisterWorkerHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterWorkerCommand) error
	}
	WorkerHandler interface {
		HandleUpdate(ctx context.Context, cmd commands.UpdateWorkerCommand) error
		HandleDelete(ctx context.Context, cmd commands.DeleteWorkerCommand) error
	}

	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderSummary, error)
	}
	GetOrderDetailHandler interface {
		Handle(ctx context.Context, query queries.GetOrderDetailQuery) (queries.OrderDetail, error)
	}
	GetDashboardHandler interface {
		Handle(ctx context.Context, query queries.GetDashboardQuery) (queries.Dashboard, error)
	}
	ListProcessesHandler interface {
		Handle(ctx context.Context, query queries.ListProcessesQuery) ([]queries.ProcessView, error)
	}
	ListWorkersHandler interface {
		Handle(ctx context.Context, query queries.ListWorkersQuery) ([]queries.WorkerView, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	StartProcess       StartProcessHandler
	CompleteProcess    CompleteProcessHandler
	RegisterOrder      RegisterOrderHandler
	BulkRegisterOrders BulkRegisterOrdersHandler
	Process            ProcessHandler
	RegisterWorker     RegisterWorkerHandler
	Worker             WorkerHandler

	// Query handlers
	ListOrders     ListOrdersHandler
	GetOrderDetail GetOrderDetailHandler
	GetDashboard   GetDashboardHandler
	ListProcesses  ListProcessesHandler
	ListWorkers    ListWorkersHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}

// WorkerHeader carries the worker performing a start.
const WorkerHeader = "X-Worker-ID"

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.ParseStatus(raw)
		if err != nil {
			return s.fail(ctx, err, "list orders")
		}
		status = &parsed
	}

	query, err := queries.NewListOrdersQuery(ctx.QueryParam("q"), status)
	if err != nil {
		return s.fail(ctx, err, "list orders")
	}

	orders, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "list orders")
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// RegisterOrder handles POST /api/v1/orders.
func (s *Server) RegisterOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewRegisterOrderCommand(orderID, body.OrderNo, body.ProductName, quantityOf(body), body.DueDate.Time)
	if err != nil {
		return s.fail(ctx, err, "register order")
	}

	if err = s.handlers.RegisterOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "register order")
	}
	return ctx.JSON(http.StatusCreated, Created{Id: orderID.Bytes()})
}

// BulkRegisterOrders handles POST /api/v1/orders/bulk. The body is either a
// JSON list of orders or a CSV file with an order_no,product_name,quantity,due_date header.
func (s *Server) BulkRegisterOrders(ctx echo.Context) error {
	var (
		rows          []commands.OrderRow
		parseFailures []commands.RowFailure
	)

	if strings.HasPrefix(ctx.Request().Header.Get(echo.HeaderContentType), "text/csv") {
		var err error
		rows, parseFailures, err = fileimport.ReadOrders(ctx.Request().Body)
		if err != nil {
			return badRequest(ctx, err.Error())
		}
	} else {
		var body NewOrders
		if err := ctx.Bind(&body); err != nil {
			return badRequest(ctx, "Invalid request body")
		}
		rows = make([]commands.OrderRow, len(body.Orders))
		for i, o := range body.Orders {
			rows[i] = commands.OrderRow{
				Row:         i + 1,
				OrderNo:     o.OrderNo,
				ProductName: o.ProductName,
				Quantity:    quantityOf(o),
				DueDate:     o.DueDate.Time,
			}
		}
	}

	result, err := s.handlers.BulkRegisterOrders.Handle(ctx.Request().Context(), commands.NewBulkRegisterOrdersCommand(rows))
	if err != nil {
		return s.fail(ctx, err, "register orders")
	}
	result = result.WithFailures(parseFailures)

	response := BulkResult{
		Succeeded: result.Succeeded,
		Failures:  make([]RowFailure, len(result.Failures)),
	}
	for i, f := range result.Failures {
		response.Failures[i] = RowFailure{Row: f.Row, OrderNo: f.OrderNo, Error: f.Err.Error()}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, errInvalidOrderID.Error())
	}

	query, err := queries.NewGetOrderDetailQuery(orderID)
	if err != nil {
		return s.fail(ctx, err, "get order")
	}

	detail, err := s.handlers.GetOrderDetail.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "get order")
	}

	response := OrderDetail{
		Order:     toOrder(detail.Order),
		Processes: toProcesses(detail.Processes),
		Log:       make([]LogLine, len(detail.Log)),
	}
	for i, line := range detail.Log {
		response.Log[i] = LogLine{
			Id:          line.ID.Bytes(),
			ProcessId:   line.ProcessID.Bytes(),
			ProcessName: line.ProcessName,
			WorkerId:    toUUIDPtr(line.WorkerID),
			WorkerName:  line.WorkerName,
			StartTime:   line.StartTime,
			EndTime:     line.EndTime,
		}
		if line.EndTime != nil {
			seconds := int64(line.Duration / time.Second)
			response.Log[i].DurationSeconds = &seconds
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// StartProcess handles POST /api/v1/orders/:id/processes/:pid/start.
func (s *Server) StartProcess(ctx echo.Context) error {
	orderID, processID, err := transitionIDs(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var actor *kernel.UUID
	if raw := ctx.Request().Header.Get(WorkerHeader); raw != "" {
		workerID, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return badRequest(ctx, "Invalid "+WorkerHeader+" header")
		}
		actor = &workerID
	}

	cmd, err := commands.NewStartProcessCommand(orderID, processID, actor)
	if err != nil {
		return s.fail(ctx, err, "start process")
	}

	result, err := s.handlers.StartProcess.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "start process")
	}
	return ctx.JSON(http.StatusOK, toTransition(result))
}

// CompleteProcess handles POST /api/v1/orders/:id/processes/:pid/complete.
func (s *Server) CompleteProcess(ctx echo.Context) error {
	orderID, processID, err := transitionIDs(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCompleteProcessCommand(orderID, processID)
	if err != nil {
		return s.fail(ctx, err, "complete process")
	}

	result, err := s.handlers.CompleteProcess.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "complete process")
	}
	return ctx.JSON(http.StatusOK, toTransition(result))
}

// GetDashboard handles GET /api/v1/dashboard.
func (s *Server) GetDashboard(ctx echo.Context) error {
	dashboard, err := s.handlers.GetDashboard.Handle(ctx.Request().Context(), queries.NewGetDashboardQuery())
	if err != nil {
		return s.fail(ctx, err, "get dashboard")
	}

	return ctx.JSON(http.StatusOK, Dashboard{
		Total:           dashboard.Total,
		Completed:       dashboard.Completed,
		InProgress:      dashboard.InProgress,
		NotStarted:      dashboard.NotStarted,
		AverageProgress: dashboard.AverageProgress,
	})
}

// ListProcesses handles GET /api/v1/processes.
func (s *Server) ListProcesses(ctx echo.Context) error {
	processes, err := s.handlers.ListProcesses.Handle(ctx.Request().Context(), queries.NewListProcessesQuery())
	if err != nil {
		return s.fail(ctx, err, "list processes")
	}
	return ctx.JSON(http.StatusOK, toProcesses(processes))
}

// CreateProcess handles POST /api/v1/processes.
func (s *Server) CreateProcess(ctx echo.Context) error {
	var body NewProcess
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	processID := kernel.NewUUID()
	cmd, err := commands.NewCreateProcessCommand(processID, body.Name, body.Order)
	if err != nil {
		return s.fail(ctx, err, "create process")
	}

	if err = s.handlers.Process.HandleCreate(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "create process")
	}
	return ctx.JSON(http.StatusCreated, Created{Id: processID.Bytes()})
}

// UpdateProcess handles PUT /api/v1/processes/:pid.
func (s *Server) UpdateProcess(ctx echo.Context) error {
	processID, err := kernel.UUIDFromString(ctx.Param("pid"))
	if err != nil {
		return badRequest(ctx, errInvalidProcessID.Error())
	}

	var body NewProcess
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateProcessCommand(processID, body.Name, body.Order)
	if err != nil {
		return s.fail(ctx, err, "update process")
	}

	if err = s.handlers.Process.HandleUpdate(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "update process")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeleteProcess handles DELETE /api/v1/processes/:pid.
func (s *Server) DeleteProcess(ctx echo.Context) error {
	processID, err := kernel.UUIDFromString(ctx.Param("pid"))
	if err != nil {
		return badRequest(ctx, errInvalidProcessID.Error())
	}

	cmd, err := commands.NewDeleteProcessCommand(processID)
	if err != nil {
		return s.fail(ctx, err, "delete process")
	}

	if err = s.handlers.Process.HandleDelete(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "delete process")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ListWorkers handles GET /api/v1/workers.
func (s *Server) ListWorkers(ctx echo.Context) error {
	workers, err := s.handlers.ListWorkers.Handle(ctx.Request().Context(), queries.NewListWorkersQuery())
	if err != nil {
		return s.fail(ctx, err, "list workers")
	}

	response := make([]Worker, len(workers))
	for i, w := range workers {
		response[i] = Worker{
			Id:         w.ID.Bytes(),
			EmployeeId: w.EmployeeID,
			Name:       w.Name,
			HireDate:   toDatePtr(w.HireDate),
			Department: w.Department,
			IsActive:   w.IsActive,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// RegisterWorker handles POST /api/v1/workers. Workers are active unless
// is_active is false.
func (s *Server) RegisterWorker(ctx echo.Context) error {
	var body NewWorker
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	workerID := kernel.NewUUID()
	details := workerDetails(body.HireDate, body.Department, body.IsActive)
	cmd, err := commands.NewRegisterWorkerCommand(workerID, body.EmployeeId, body.Name, body.Password, details)
	if err != nil {
		return s.fail(ctx, err, "register worker")
	}

	if err = s.handlers.RegisterWorker.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "register worker")
	}
	return ctx.JSON(http.StatusCreated, Created{Id: workerID.Bytes()})
}

// UpdateWorker handles PUT /api/v1/workers/:id. An empty password keeps the
// current one.
func (s *Server) UpdateWorker(ctx echo.Context) error {
	workerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, errInvalidWorkerID.Error())
	}

	var body WorkerUpdate
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	details := workerDetails(body.HireDate, body.Department, body.IsActive)
	cmd, err := commands.NewUpdateWorkerCommand(workerID, body.EmployeeId, body.Name, body.Password, details)
	if err != nil {
		return s.fail(ctx, err, "update worker")
	}

	if err = s.handlers.Worker.HandleUpdate(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "update worker")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeleteWorker handles DELETE /api/v1/workers/:id.
func (s *Server) DeleteWorker(ctx echo.Context) error {
	workerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, errInvalidWorkerID.Error())
	}

	cmd, err := commands.NewDeleteWorkerCommand(workerID)
	if err != nil {
		return s.fail(ctx, err, "delete worker")
	}

	if err = s.handlers.Worker.HandleDelete(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "delete worker")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func workerDetails(hireDate *openapi_types.Date, department string, isActive *bool) commands.WorkerDetails {
	details := commands.WorkerDetails{
		Department: department,
		IsActive:   isActive == nil || *isActive,
	}
	if hireDate != nil {
		hired := hireDate.Time
		details.HireDate = &hired
	}
	return details
}

func transitionIDs(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errInvalidOrderID
	}
	processID, err := kernel.UUIDFromString(ctx.Param("pid"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errInvalidProcessID
	}
	return orderID, processID, nil
}

func quantityOf(o NewOrder) int {
	if o.Quantity == nil {
		return 0
	}
	return *o.Quantity
}

func toOrder(o queries.OrderSummary) Order {
	return Order{
		Id:                 o.ID.Bytes(),
		OrderNo:            o.OrderNo,
		ProductName:        o.ProductName,
		Quantity:           o.Quantity,
		DueDate:            openapi_types.Date{Time: o.DueDate},
		Status:             o.Status.String(),
		CurrentProcessId:   toUUIDPtr(o.CurrentProcessID),
		CurrentProcessName: o.CurrentProcessName,
		ProgressPercentage: o.ProgressPercentage,
		CreatedAt:          o.CreatedAt,
	}
}

func toTransition(r commands.TransitionResult) Transition {
	return Transition{
		OrderId:            r.OrderID.Bytes(),
		OrderNo:            r.OrderNo,
		Status:             r.Status.String(),
		CurrentProcessId:   toUUIDPtr(r.CurrentProcessID),
		ProgressPercentage: r.ProgressPercentage,
	}
}

func toProcesses(views []queries.ProcessView) []Process {
	processes := make([]Process, len(views))
	for i, p := range views {
		processes[i] = Process{Id: p.ID.Bytes(), Name: p.Name, Order: p.Position}
	}
	return processes
}

func toUUIDPtr(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	u := id.Bytes()
	return &u
}

func toDatePtr(t *time.Time) *openapi_types.Date {
	if t == nil {
		return nil
	}
	return &openapi_types.Date{Time: *t}
}
