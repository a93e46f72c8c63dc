package render

import (
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jsontab/jsontab/pkg/flatten"
	"github.com/jsontab/jsontab/pkg/jsonvalue"
)

// printer renders row and column counts with grouped thousands.
var printer = message.NewPrinter(language.English)

// TableOptions control table rendering.
type TableOptions struct {
	Style        string // grid, plain, simple, github or fancy
	MaxWidth     int    // cell truncation threshold in runes, 0 disables
	ShowIndex    bool   // prepend a row-number column
	IndexTitle   string // header for the row-number column ("" for blank)
	SnakeHeaders bool   // convert column headers to snake_case
	Palette      Palette
}

// Table renders rows as an aligned table in the requested style. Columns
// appear in first-seen order across rows; cells missing from a row render
// empty, as do explicit nulls. Numeric columns are right-aligned.
func Table(rows flatten.RowSet, opts TableOptions) (string, error) {
	style, err := lookupStyle(opts.Style)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", nil
	}

	columns := flatten.BuildColumnIndex(rows).Columns()

	headers := make([]string, 0, len(columns)+1)
	numeric := make([]bool, 0, len(columns)+1)
	if opts.ShowIndex {
		headers = append(headers, opts.IndexTitle)
		numeric = append(numeric, true)
	}
	for _, col := range columns {
		name := col
		if opts.SnakeHeaders {
			name = strcase.ToSnake(name)
		}
		headers = append(headers, name)
		numeric = append(numeric, numericColumn(rows, col))
	}

	cells := make([][]string, len(rows))
	for i, row := range rows {
		line := make([]string, 0, len(headers))
		if opts.ShowIndex {
			line = append(line, strconv.Itoa(i))
		}
		for _, col := range columns {
			v, ok := row.Get(col)
			if !ok {
				line = append(line, "")
				continue
			}
			line = append(line, cellText(v, opts.MaxWidth))
		}
		cells[i] = line
	}

	// Columns reserve two cells beyond the header width.
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = displayWidth(h) + 2
	}
	for _, line := range cells {
		for i, c := range line {
			if w := displayWidth(c); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder
	writeRule(&sb, style.top, style, widths)
	writeRow(&sb, headers, style, widths, numeric, opts.Palette.Header, opts.Palette)
	writeRule(&sb, style.belowHeader, style, widths)
	for i, line := range cells {
		if i > 0 {
			writeRule(&sb, style.betweenRows, style, widths)
		}
		writeRow(&sb, line, style, widths, numeric, "", opts.Palette)
	}
	writeRule(&sb, style.bottom, style, widths)
	return sb.String(), nil
}

// DocumentTable renders the standard table view: a count line and the table
// framed by "=" rules. An empty row set renders a placeholder instead.
func DocumentTable(rows flatten.RowSet, opts TableOptions) (string, error) {
	if len(rows) == 0 {
		return "No data to display.\n", nil
	}

	opts.ShowIndex = true
	table, err := Table(rows, opts)
	if err != nil {
		return "", err
	}

	columns := flatten.BuildColumnIndex(rows).Columns()

	var sb strings.Builder
	sb.WriteString(printer.Sprintf("\nTable (%d rows, %d columns):\n", len(rows), len(columns)))
	sb.WriteString(strings.Repeat("=", 50) + "\n")
	sb.WriteString(table)
	sb.WriteString(strings.Repeat("=", 50) + "\n")
	return sb.String(), nil
}

// cellText renders one table cell. Nulls render empty like absent columns.
// Numeric and boolean cells are never truncated.
func cellText(v jsonvalue.Value, maxWidth int) string {
	if v.IsNull() {
		return ""
	}
	s := DisplayValue(v)
	switch v.Kind() {
	case jsonvalue.String, jsonvalue.Array, jsonvalue.Object:
		return Truncate(s, maxWidth)
	}
	return s
}

// numericColumn reports whether every present, non-null cell in the column
// is a number. Columns with no such cells are not numeric.
func numericColumn(rows flatten.RowSet, col string) bool {
	seen := false
	for _, row := range rows {
		v, ok := row.Get(col)
		if !ok || v.IsNull() {
			continue
		}
		switch v.Kind() {
		case jsonvalue.Int, jsonvalue.Float:
			seen = true
		default:
			return false
		}
	}
	return seen
}

func writeRow(sb *strings.Builder, cells []string, st tableStyle, widths []int, numeric []bool, colorCode string, p Palette) {
	pad := strings.Repeat(" ", st.padding)
	parts := make([]string, len(cells))
	for i, c := range cells {
		var s string
		if numeric[i] {
			s = padLeft(c, widths[i])
		} else {
			s = padRight(c, widths[i])
		}
		if colorCode != "" && strings.TrimSpace(c) != "" {
			s = p.paint(colorCode, s)
		}
		parts[i] = pad + s + pad
	}
	line := st.cellBegin + strings.Join(parts, st.cellSep) + st.cellEnd
	sb.WriteString(strings.TrimRight(line, " "))
	sb.WriteByte('\n')
}

func writeRule(sb *strings.Builder, r *rule, st tableStyle, widths []int) {
	if r == nil {
		return
	}
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat(r.fill, w+2*st.padding)
	}
	sb.WriteString(r.begin + strings.Join(parts, r.sep) + r.end)
	sb.WriteByte('\n')
}
