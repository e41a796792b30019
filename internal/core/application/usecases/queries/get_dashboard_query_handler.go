package queries

import (
	"context"
	"math"

	"progress/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetDashboardQueryHandler struct {
	db *gorm.DB
}

func NewGetDashboardQueryHandler(db *gorm.DB) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{db: db}
}

func (h GetDashboardQueryHandler) Handle(ctx context.Context, query GetDashboardQuery) (Dashboard, error) {
	if err := query.Validate(); err != nil {
		return Dashboard{}, err
	}

	var d Dashboard
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?)
		FROM orders
	`, int(order.Completed), int(order.InProgress), int(order.NotStarted)).Row()
	if err := row.Scan(&d.Total, &d.Completed, &d.InProgress, &d.NotStarted); err != nil {
		return Dashboard{}, err
	}

	d.AverageProgress = averageProgress(d)
	return d, nil
}

func averageProgress(d Dashboard) float64 {
	if d.Total == 0 {
		return 0
	}
	avg := float64(d.Completed*100+d.InProgress*50) / float64(d.Total)
	return math.Round(avg*10) / 10
}
