package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"progress/internal/core/domain/model/kernel"
	"progress/internal/core/domain/model/order"
	"progress/internal/core/domain/model/process"
	"progress/internal/core/domain/model/progress"
	"progress/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetOrderDetailQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderDetailQueryHandler(db *gorm.DB) GetOrderDetailQueryHandler {
	return GetOrderDetailQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound for an unknown order. Log lines are
// ordered by ascending start time.
func (h GetOrderDetailQueryHandler) Handle(ctx context.Context, query GetOrderDetailQuery) (OrderDetail, error) {
	if err := query.Validate(); err != nil {
		return OrderDetail{}, err
	}

	seq, err := loadSequence(ctx, h.db)
	if err != nil {
		return OrderDetail{}, err
	}

	summary, err := h.loadOrder(ctx, query.OrderID(), seq)
	if err != nil {
		return OrderDetail{}, err
	}

	log, err := h.loadLog(ctx, query.OrderID())
	if err != nil {
		return OrderDetail{}, err
	}

	return OrderDetail{
		Order:     summary,
		Processes: processViews(seq.Processes()),
		Log:       log,
	}, nil
}

func (h GetOrderDetailQueryHandler) loadOrder(ctx context.Context, orderID kernel.UUID, seq process.Sequence) (OrderSummary, error) {
	var (
		summary   OrderSummary
		status    int
		currentID uuid.NullUUID
		dueDate   time.Time
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.order_no,
			o.product_name,
			o.quantity,
			o.due_date,
			o.status,
			o.current_process_id,
			COALESCE(p.name, ''),
			o.created_at
		FROM orders o
		LEFT JOIN processes p ON p.id = o.current_process_id
		WHERE o.id = ?
	`, orderID.Bytes()).Row()
	err := row.Scan(
		&summary.OrderNo,
		&summary.ProductName,
		&summary.Quantity,
		&dueDate,
		&status,
		&currentID,
		&summary.CurrentProcessName,
		&summary.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderSummary{}, errs.NewObjectNotFoundError("order", orderID)
		}
		return OrderSummary{}, err
	}

	if summary.CurrentProcessID, err = nullableUUID(currentID); err != nil {
		return OrderSummary{}, err
	}
	summary.ID = orderID
	summary.DueDate = dueDate.UTC()
	summary.Status = order.Status(status)
	summary.ProgressPercentage = order.PositionPercentage(seq, summary.CurrentProcessID)
	return summary, nil
}

func (h GetOrderDetailQueryHandler) loadLog(ctx context.Context, orderID kernel.UUID) ([]LogLine, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			l.process_id,
			COALESCE(p.name, ''),
			l.worker_id,
			COALESCE(w.name, ''),
			l.start_time,
			l.end_time
		FROM progress_logs l
		LEFT JOIN processes p ON p.id = l.process_id
		LEFT JOIN workers w ON w.id = l.worker_id
		WHERE l.order_id = ?
		ORDER BY l.start_time, l.id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]LogLine, 0)
	for rows.Next() {
		var (
			line      LogLine
			id        uuid.UUID
			processID uuid.UUID
			workerID  uuid.NullUUID
			endTime   *time.Time
		)
		if err = rows.Scan(&id, &processID, &line.ProcessName, &workerID, &line.WorkerName, &line.StartTime, &endTime); err != nil {
			return nil, err
		}

		if line.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if line.ProcessID, err = kernel.UUIDFromBytes(processID[:]); err != nil {
			return nil, err
		}
		if line.WorkerID, err = nullableUUID(workerID); err != nil {
			return nil, err
		}
		entry, entryErr := progress.RestoreEntry(line.ID, orderID, line.ProcessID, line.WorkerID, line.StartTime, endTime)
		if entryErr != nil {
			return nil, entryErr
		}
		line.StartTime = entry.StartTime()
		line.EndTime = entry.EndTime()
		line.Duration = entry.Duration()
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
