package render

import (
	"strings"

	"github.com/jsontab/jsontab/pkg/flatten"
	"github.com/jsontab/jsontab/pkg/jsonvalue"
)

// Summary renders the post-conversion information block: table shape,
// column list, and per-column value types.
func Summary(rows flatten.RowSet) string {
	columns := flatten.BuildColumnIndex(rows).Columns()

	var sb strings.Builder
	sb.WriteString("\nTable Info:\n")
	sb.WriteString(printer.Sprintf("  Shape: (%d rows, %d columns)\n", len(rows), len(columns)))
	if len(columns) == 0 {
		sb.WriteString("  Columns: (none)\n")
		return sb.String()
	}
	sb.WriteString("  Columns: " + strings.Join(columns, ", ") + "\n")

	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = col + ": " + columnType(rows, col)
	}
	sb.WriteString("  Column types: " + strings.Join(parts, ", ") + "\n")
	return sb.String()
}

// columnType names the value type of a column: a single kind name when the
// column is homogeneous, "number" for integer/float mixes, "mixed"
// otherwise. Absent and null cells are ignored; a column with no values at
// all is "null".
func columnType(rows flatten.RowSet, col string) string {
	var kinds []jsonvalue.Kind
	seen := make(map[jsonvalue.Kind]bool)
	for _, row := range rows {
		v, ok := row.Get(col)
		if !ok || v.IsNull() {
			continue
		}
		if !seen[v.Kind()] {
			seen[v.Kind()] = true
			kinds = append(kinds, v.Kind())
		}
	}

	switch len(kinds) {
	case 0:
		return "null"
	case 1:
		return kinds[0].String()
	case 2:
		if seen[jsonvalue.Int] && seen[jsonvalue.Float] {
			return "number"
		}
	}
	return "mixed"
}
