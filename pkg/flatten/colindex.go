package flatten

import "github.com/RoaringBitmap/roaring/v2"

// ColumnIndex maps each column of a RowSet to the set of row ordinals that
// contain it, using Roaring bitmaps. It yields the union column list in
// first-seen order plus per-column presence counts, which is what table
// assembly and writers need for ragged row sets.
type ColumnIndex struct {
	columns []string
	rows    map[string]*roaring.Bitmap
	total   int
}

// BuildColumnIndex indexes every column of every row.
func BuildColumnIndex(rows RowSet) *ColumnIndex {
	ix := &ColumnIndex{
		rows:  make(map[string]*roaring.Bitmap),
		total: len(rows),
	}
	for i, row := range rows {
		for _, col := range row.Columns() {
			ix.add(col, uint32(i))
		}
	}
	return ix
}

func (ix *ColumnIndex) add(column string, rowID uint32) {
	bm, ok := ix.rows[column]
	if !ok {
		bm = roaring.New()
		ix.rows[column] = bm
		ix.columns = append(ix.columns, column)
	}
	bm.Add(rowID)
}

// Columns returns the union of all row columns in first-seen order.
func (ix *ColumnIndex) Columns() []string {
	return ix.columns
}

// RowCount returns the number of indexed rows.
func (ix *ColumnIndex) RowCount() int {
	return ix.total
}

// Fill returns how many rows contain the column.
func (ix *ColumnIndex) Fill(column string) int {
	bm, ok := ix.rows[column]
	if !ok {
		return 0
	}
	return int(bm.GetCardinality())
}

// FillRate returns the fraction of rows containing the column, 0 for an
// empty row set.
func (ix *ColumnIndex) FillRate(column string) float64 {
	if ix.total == 0 {
		return 0
	}
	return float64(ix.Fill(column)) / float64(ix.total)
}

// Has reports whether the given row contains the column.
func (ix *ColumnIndex) Has(column string, row int) bool {
	bm, ok := ix.rows[column]
	if !ok {
		return false
	}
	return bm.Contains(uint32(row))
}
