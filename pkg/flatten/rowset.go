// Package flatten converts nested JSON values into flat tabular row sets
// with dotted, index-bracketed column paths suitable for table display.
package flatten

import "github.com/jsontab/jsontab/pkg/jsonvalue"

// ValueColumn is the column name used for rows built from bare scalars and
// from elements of mixed or scalar arrays.
const ValueColumn = "Value"

// Cell is one column of a flat row.
type Cell struct {
	Column string
	Value  jsonvalue.Value
}

// Row is an ordered mapping from column path to value. Columns keep
// first-insertion order; setting an existing column overwrites in place
// (last write wins).
type Row struct {
	cells []Cell
	index map[string]int
}

// NewRow returns an empty row ready for Set calls.
func NewRow() *Row {
	return &Row{index: make(map[string]int)}
}

// Set stores a value under the given column, overwriting any earlier value.
func (r *Row) Set(column string, v jsonvalue.Value) {
	if i, ok := r.index[column]; ok {
		r.cells[i].Value = v
		return
	}
	r.index[column] = len(r.cells)
	r.cells = append(r.cells, Cell{Column: column, Value: v})
}

// Get returns the value stored under a column.
func (r *Row) Get(column string) (jsonvalue.Value, bool) {
	if i, ok := r.index[column]; ok {
		return r.cells[i].Value, true
	}
	return jsonvalue.Value{}, false
}

// Columns returns the column names in first-insertion order.
func (r *Row) Columns() []string {
	cols := make([]string, len(r.cells))
	for i, c := range r.cells {
		cols[i] = c.Column
	}
	return cols
}

// Cells returns the row's cells in column order.
func (r *Row) Cells() []Cell {
	return r.cells
}

// Len returns the number of columns in the row.
func (r *Row) Len() int {
	return len(r.cells)
}

// RowSet is an ordered sequence of rows. Rows are not guaranteed to share a
// column set; use a ColumnIndex to assemble the union for uniform display.
type RowSet []*Row
