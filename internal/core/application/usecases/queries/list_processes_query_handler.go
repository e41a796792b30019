package queries

import (
	"context"

	"progress/internal/core/domain/model/process"

	"gorm.io/gorm"
)

type ListProcessesQueryHandler struct {
	db *gorm.DB
}

func NewListProcessesQueryHandler(db *gorm.DB) ListProcessesQueryHandler {
	return ListProcessesQueryHandler{db: db}
}

func (h ListProcessesQueryHandler) Handle(ctx context.Context, query ListProcessesQuery) ([]ProcessView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	seq, err := loadSequence(ctx, h.db)
	if err != nil {
		return nil, err
	}

	return processViews(seq.Processes()), nil
}

func processViews(processes []*process.Process) []ProcessView {
	views := make([]ProcessView, 0, len(processes))
	for _, p := range processes {
		views = append(views, ProcessView{ID: p.ID(), Name: p.Name(), Position: p.Position()})
	}
	return views
}
