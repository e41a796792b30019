package queries

import (
	"context"
	"strings"
	"time"

	"progress/internal/core/domain/model/kernel"
	"progress/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ListOrdersQueryHandler returns orders by ascending due date. The progress
// of each order is computed against the registry as it is at query time.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	seq, err := loadSequence(ctx, h.db)
	if err != nil {
		return nil, err
	}

	var (
		where []string
		args  []any
	)
	if search := query.Search(); search != "" {
		pattern := "%" + likeEscaper.Replace(search) + "%"
		where = append(where, "(o.order_no ILIKE ? OR o.product_name ILIKE ?)")
		args = append(args, pattern, pattern)
	}
	if status := query.Status(); status != nil {
		where = append(where, "o.status = ?")
		args = append(args, int(*status))
	}

	sql := `
		SELECT
			o.id,
			o.order_no,
			o.product_name,
			o.quantity,
			o.due_date,
			o.status,
			o.current_process_id,
			COALESCE(p.name, ''),
			o.created_at
		FROM orders o
		LEFT JOIN processes p ON p.id = o.current_process_id`
	if len(where) > 0 {
		sql += "\n\t\tWHERE " + strings.Join(where, " AND ")
	}
	sql += "\n\t\tORDER BY o.due_date, o.order_no"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderSummary, 0)
	for rows.Next() {
		var (
			summary   OrderSummary
			id        uuid.UUID
			status    int
			currentID uuid.NullUUID
			dueDate   time.Time
		)
		if err = rows.Scan(
			&id,
			&summary.OrderNo,
			&summary.ProductName,
			&summary.Quantity,
			&dueDate,
			&status,
			&currentID,
			&summary.CurrentProcessName,
			&summary.CreatedAt,
		); err != nil {
			return nil, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if summary.CurrentProcessID, err = nullableUUID(currentID); err != nil {
			return nil, err
		}
		summary.DueDate = dueDate.UTC()
		summary.Status = order.Status(status)
		summary.ProgressPercentage = order.PositionPercentage(seq, summary.CurrentProcessID)
		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
