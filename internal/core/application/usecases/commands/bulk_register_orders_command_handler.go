package commands

import (
	"context"
	"slices"

	"progress/internal/core/domain/model/kernel"
)

// RowFailure describes a row that was not registered. Row is 1-based.
type RowFailure struct {
	Row     int
	OrderNo string
	Err     error
}

type BulkRegisterResult struct {
	Succeeded int
	Failures  []RowFailure
}

// WithFailures adds failures found before registration, such as unparsable
// CSV lines, keeping the report ordered by row.
func (r BulkRegisterResult) WithFailures(failures []RowFailure) BulkRegisterResult {
	merged := make([]RowFailure, 0, len(r.Failures)+len(failures))
	merged = append(merged, r.Failures...)
	merged = append(merged, failures...)
	slices.SortStableFunc(merged, func(a, b RowFailure) int { return a.Row - b.Row })
	return BulkRegisterResult{Succeeded: r.Succeeded, Failures: merged}
}

type orderRegistrar interface {
	Handle(ctx context.Context, cmd RegisterOrderCommand) error
}

// BulkRegisterOrdersCommandHandler applies RegisterOrder to each row. A failed
// row is recorded and the next row is attempted; earlier rows stay committed.
// Only a cancelled context stops the run early.
type BulkRegisterOrdersCommandHandler struct {
	register orderRegistrar
}

func NewBulkRegisterOrdersCommandHandler(register *RegisterOrderCommandHandler) BulkRegisterOrdersCommandHandler {
	return BulkRegisterOrdersCommandHandler{register: register}
}

func (h *BulkRegisterOrdersCommandHandler) Handle(ctx context.Context, cmd BulkRegisterOrdersCommand) (BulkRegisterResult, error) {
	if err := cmd.Validate(); err != nil {
		return BulkRegisterResult{}, err
	}

	result := BulkRegisterResult{Failures: make([]RowFailure, 0)}
	for i, row := range cmd.Rows() {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		regCmd, err := NewRegisterOrderCommand(kernel.NewUUID(), row.OrderNo, row.ProductName, row.Quantity, row.DueDate)
		if err == nil {
			err = h.register.Handle(ctx, regCmd)
		}

		if err != nil {
			rowNo := row.Row
			if rowNo == 0 {
				rowNo = i + 1
			}
			result.Failures = append(result.Failures, RowFailure{Row: rowNo, OrderNo: row.OrderNo, Err: err})
			continue
		}
		result.Succeeded++
	}

	return result, nil
}
