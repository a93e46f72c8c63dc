package writer

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsontab/jsontab/pkg/flatten"
	"github.com/jsontab/jsontab/pkg/jsonvalue"
)

func mustFlatten(t *testing.T, src string) flatten.RowSet {
	t.Helper()
	return flatten.Flatten(mustValue(t, src))
}

func mustValue(t *testing.T, src string) jsonvalue.Value {
	t.Helper()
	v, err := jsonvalue.Decode([]byte(src))
	require.NoError(t, err)
	return v
}

func outPath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestWriteRows_CSV(t *testing.T) {
	rows := mustFlatten(t, `[{"Name":"alpha","Qty":10},{"Name":"b","Qty":null}]`)
	path := outPath(t, "out.csv")

	require.NoError(t, WriteRows(context.Background(), path, rows, Options{}))

	assert.Equal(t, "Name,Qty\nalpha,10\nb,\n", readFile(t, path))
}

func TestWriteRows_CSV_SnakeHeaders(t *testing.T) {
	rows := mustFlatten(t, `[{"QtyReceived":10,"ExternReceiptKey":"A"}]`)
	path := outPath(t, "out.csv")

	require.NoError(t, WriteRows(context.Background(), path, rows, Options{SnakeHeaders: true}))

	assert.True(t, strings.HasPrefix(readFile(t, path), "qty_received,extern_receipt_key\n"))
}

func TestWriteRows_JSON(t *testing.T) {
	rows := mustFlatten(t, `[{"a":1},{"b":"x"}]`)
	path := outPath(t, "out.json")

	require.NoError(t, WriteRows(context.Background(), path, rows, Options{}))

	want := strings.Join([]string{
		"[",
		"  {",
		`    "a": 1,`,
		`    "b": null`,
		"  },",
		"  {",
		`    "a": null,`,
		`    "b": "x"`,
		"  }",
		"]",
		"",
	}, "\n")
	assert.Equal(t, want, readFile(t, path))
}

func TestWriteRows_YAML(t *testing.T) {
	rows := mustFlatten(t, `[{"a":1,"key":"000123"},{"a":null,"key":"x"}]`)
	path := outPath(t, "out.yaml")

	require.NoError(t, WriteRows(context.Background(), path, rows, Options{}))

	got := readFile(t, path)
	assert.Contains(t, got, "- a: 1\n")
	assert.Contains(t, got, `key: "000123"`) // stays a string on reparse
	assert.Contains(t, got, "a: null\n")
	assert.NotContains(t, got, "{") // block style, not flow
}

func TestWriteRows_Markdown(t *testing.T) {
	rows := mustFlatten(t, `[{"name":"alpha","qty":10}]`)
	path := outPath(t, "out.md")

	require.NoError(t, WriteRows(context.Background(), path, rows, Options{}))

	want := strings.Join([]string{
		"| name   |   qty |",
		"|--------|-------|",
		"| alpha  |    10 |",
		"",
	}, "\n")
	assert.Equal(t, want, readFile(t, path))
}

func TestWriteRows_SQLiteRoundTrip(t *testing.T) {
	rows := mustFlatten(t, `[
		{"Name":"alpha","Qty":10,"Price":1.5,"Meta":{"x":1}},
		{"Name":"beta","Qty":null,"Price":3,"Meta":null}
	]`)
	path := outPath(t, "out.db")

	require.NoError(t, WriteRows(context.Background(), path, rows, Options{Table: "items"}))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var affinity string
	err = db.QueryRow(`SELECT type FROM pragma_table_info('items') WHERE name = 'Price'`).Scan(&affinity)
	require.NoError(t, err)
	assert.Equal(t, "REAL", affinity)

	res, err := db.Query(`SELECT "Name", "Qty", "Meta" FROM "items" ORDER BY rowid`)
	require.NoError(t, err)
	defer res.Close()

	type record struct {
		name string
		qty  sql.NullInt64
		meta sql.NullString
	}
	var got []record
	for res.Next() {
		var r record
		require.NoError(t, res.Scan(&r.name, &r.qty, &r.meta))
		got = append(got, r)
	}
	require.NoError(t, res.Err())

	require.Len(t, got, 2)
	assert.Equal(t, "alpha", got[0].name)
	assert.Equal(t, int64(10), got[0].qty.Int64)
	assert.Equal(t, `{"x":1}`, got[0].meta.String)
	assert.False(t, got[1].qty.Valid)
	assert.False(t, got[1].meta.Valid)
}

func TestColumnAffinity(t *testing.T) {
	rows := mustFlatten(t, `[
		{"i":1,"f":1.5,"m":2,"b":true,"s":"x","n":null},
		{"i":2,"f":2.5,"m":2.5,"b":false,"s":"y","n":null}
	]`)

	assert.Equal(t, "INTEGER", columnAffinity(rows, "i"))
	assert.Equal(t, "REAL", columnAffinity(rows, "f"))
	assert.Equal(t, "REAL", columnAffinity(rows, "m"))
	assert.Equal(t, "INTEGER", columnAffinity(rows, "b"))
	assert.Equal(t, "TEXT", columnAffinity(rows, "s"))
	assert.Equal(t, "TEXT", columnAffinity(rows, "n"))
}

func TestWriteRows_UnsupportedExtension(t *testing.T) {
	rows := mustFlatten(t, `[{"a":1}]`)

	err := WriteRows(context.Background(), outPath(t, "out.xlsx"), rows, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")

	err = WriteRows(context.Background(), outPath(t, "out"), rows, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no extension")
}

func TestWriteSchema_JSON(t *testing.T) {
	path := outPath(t, "schema.json")

	require.NoError(t, WriteSchema(path, []byte(`{"type":"object"}`)))

	assert.Equal(t, "{\n  \"type\": \"object\"\n}\n", readFile(t, path))
}

func TestWriteSchema_YAML(t *testing.T) {
	path := outPath(t, "schema.yaml")

	require.NoError(t, WriteSchema(path, []byte(`{"type":"object","required":["a"]}`)))

	got := readFile(t, path)
	assert.Contains(t, got, "type: object\n")
	assert.Contains(t, got, "required:\n")
}

func TestWriteSchema_Markdown(t *testing.T) {
	path := outPath(t, "schema.md")

	require.NoError(t, WriteSchema(path, []byte(`{"type":"object"}`)))

	got := readFile(t, path)
	assert.True(t, strings.HasPrefix(got, "# Inferred JSON Schema\n"))
	assert.Contains(t, got, "```json\n")
}

func TestWriteSchema_RejectsTabularFormats(t *testing.T) {
	err := WriteSchema(outPath(t, "schema.csv"), []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema export supports")
}

func TestFileCell(t *testing.T) {
	row := flatten.NewRow()
	row.Set("b", mustValue(t, `true`))
	row.Set("f", mustValue(t, `1.50`))
	row.Set("s", mustValue(t, `"hi"`))
	row.Set("arr", mustValue(t, `[1,2]`))
	row.Set("z", mustValue(t, `null`))

	assert.Equal(t, "true", fileCell(row, "b"))
	assert.Equal(t, "1.50", fileCell(row, "f"))
	assert.Equal(t, "hi", fileCell(row, "s"))
	assert.Equal(t, "[1,2]", fileCell(row, "arr"))
	assert.Equal(t, "", fileCell(row, "z"))
	assert.Equal(t, "", fileCell(row, "missing"))
}
