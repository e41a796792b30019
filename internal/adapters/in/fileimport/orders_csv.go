// Package fileimport reads the files accepted by the import commands: order
// lists as CSV and the process registry seed as YAML.
package fileimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"progress/internal/core/application/usecases/commands"
)

var (
	ErrMissingColumn = errors.New("csv header is missing a required column")
	ErrInvalidValue  = errors.New("csv value is invalid")
)

// DueDateLayouts are the accepted due_date formats, tried in order.
var DueDateLayouts = []string{"2006-01-02", "2006/01/02"}

var requiredColumns = []string{"order_no", "product_name", "due_date"}

// ReadOrders parses an order CSV with a header line naming the columns
// order_no, product_name, quantity and due_date, in any order. quantity may
// be absent or empty and then reads as 0.
//
// Structural problems fail the whole file. A line whose values cannot be
// parsed is reported in the returned failures and left out of the rows;
// both use the 1-based data row number, the header excluded.
func ReadOrders(r io.Reader) ([]commands.OrderRow, []commands.RowFailure, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
		}
		return nil, nil, err
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		columns[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	field := func(record []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	rows := make([]commands.OrderRow, 0)
	failures := make([]commands.RowFailure, 0)
	for rowNo := 1; ; rowNo++ {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, nil, readErr
		}
		if isBlank(record) {
			continue
		}

		row := commands.OrderRow{
			Row:         rowNo,
			OrderNo:     field(record, "order_no"),
			ProductName: field(record, "product_name"),
		}

		var problems []error
		if q := field(record, "quantity"); q != "" {
			if row.Quantity, err = strconv.Atoi(q); err != nil {
				problems = append(problems, fmt.Errorf("%w: quantity %q", ErrInvalidValue, q))
			}
		}
		if d := field(record, "due_date"); d != "" {
			if row.DueDate, err = parseDate(d); err != nil {
				problems = append(problems, err)
			}
		}

		if err = errors.Join(problems...); err != nil {
			failures = append(failures, commands.RowFailure{Row: rowNo, OrderNo: row.OrderNo, Err: err})
			continue
		}
		rows = append(rows, row)
	}

	return rows, failures, nil
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range DueDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: due_date %q, want YYYY-MM-DD", ErrInvalidValue, value)
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
