package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsontab/jsontab/pkg/flatten"
)

func TestSummary(t *testing.T) {
	rows := mustFlatten(t, `[
		{"name": "alpha", "qty": 10, "price": 1.5, "note": null},
		{"name": "beta", "qty": 2.5, "price": 3, "extra": true}
	]`)

	got := Summary(rows)

	want := strings.Join([]string{
		"",
		"Table Info:",
		"  Shape: (2 rows, 5 columns)",
		"  Columns: name, qty, price, note, extra",
		"  Column types: name: string, qty: number, price: number, note: null, extra: boolean",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestSummary_MixedColumn(t *testing.T) {
	rows := mustFlatten(t, `[{"v": 1}, {"v": "x"}]`)
	assert.Contains(t, Summary(rows), "v: mixed")
}

func TestSummary_Empty(t *testing.T) {
	got := Summary(flatten.RowSet{})

	want := strings.Join([]string{
		"",
		"Table Info:",
		"  Shape: (0 rows, 0 columns)",
		"  Columns: (none)",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}
