package commands

import (
	"errors"
	"time"

	"progress/internal/pkg/guard"
)

var ErrBulkRegisterOrdersCommandIsNotConstructed = errors.New(
	"BulkRegisterOrdersCommand must be created via NewBulkRegisterOrdersCommand constructor",
)

// OrderRow is one order of a bulk registration, typically one CSV line.
// Row is the 1-based position in the source and is used in failure reports;
// zero means the position within the command.
type OrderRow struct {
	Row         int
	OrderNo     string
	ProductName string
	Quantity    int
	DueDate     time.Time
}

// BulkRegisterOrdersCommand registers many orders, one transaction per row.
type BulkRegisterOrdersCommand struct {
	rows []OrderRow

	guard guard.ConstructorGuard
}

func NewBulkRegisterOrdersCommand(rows []OrderRow) BulkRegisterOrdersCommand {
	return BulkRegisterOrdersCommand{
		rows:  append([]OrderRow(nil), rows...),
		guard: guard.NewConstructorGuard(),
	}
}

func (c BulkRegisterOrdersCommand) Validate() error {
	return c.guard.Validate(ErrBulkRegisterOrdersCommandIsNotConstructed)
}

func (c BulkRegisterOrdersCommand) Rows() []OrderRow {
	return append([]OrderRow(nil), c.rows...)
}
