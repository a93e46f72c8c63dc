package writer

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/iancoleman/strcase"

	"github.com/jsontab/jsontab/pkg/flatten"
	"github.com/jsontab/jsontab/pkg/jsonvalue"
)

// writeCSV saves rows as CSV: the header holds the union of columns in
// first-seen order, absent and null cells are blank, and container cells
// hold compact JSON.
func writeCSV(path string, rows flatten.RowSet, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	columns := flatten.BuildColumnIndex(rows).Columns()

	header := make([]string, len(columns))
	for i, col := range columns {
		if opts.SnakeHeaders {
			header[i] = strcase.ToSnake(col)
		} else {
			header[i] = col
		}
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	record := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			record[i] = fileCell(row, col)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// fileCell renders a cell for file output. Unlike terminal cells it is
// never truncated.
func fileCell(row *flatten.Row, col string) string {
	v, ok := row.Get(col)
	if !ok || v.IsNull() {
		return ""
	}
	switch v.Kind() {
	case jsonvalue.Bool:
		if v.Bool() {
			return "true"
		}
		return "false"
	case jsonvalue.Int, jsonvalue.Float:
		return v.Raw()
	case jsonvalue.String:
		return v.Str()
	default:
		return v.String()
	}
}
