package flatten

import (
	"testing"

	"github.com/jsontab/jsontab/pkg/jsonvalue"
)

func mustDecode(t *testing.T, src string) jsonvalue.Value {
	t.Helper()
	v, err := jsonvalue.Decode([]byte(src))
	if err != nil {
		t.Fatalf("decode %s: %v", src, err)
	}
	return v
}

func TestFlatten_Scalars(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"null", `null`},
		{"bool", `true`},
		{"integer", `202`},
		{"float", `2.5`},
		{"string", `"hello"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := mustDecode(t, tt.json)
			rows := Flatten(v)
			if len(rows) != 1 {
				t.Fatalf("row count = %d, want 1", len(rows))
			}
			got, ok := rows[0].Get(ValueColumn)
			if !ok {
				t.Fatal("missing Value column")
			}
			if got.String() != tt.json {
				t.Errorf("Value = %s, want %s", got.String(), tt.json)
			}
		})
	}
}

func TestFlatten_EmptyArray(t *testing.T) {
	rows := Flatten(mustDecode(t, `[]`))
	if len(rows) != 0 {
		t.Errorf("row count = %d, want 0", len(rows))
	}
}

func TestFlatten_ArrayOfObjects(t *testing.T) {
	v := mustDecode(t, `[
		{"QtyReceived":"1.00000","StorerKey":"AUS_FUSION","Sku":"EX-PP129","ExternLineno":"1","ExternReceiptKey":"WO-81699"},
		{"QtyReceived":"3.00000","StorerKey":"AUS_FUSION","Sku":"ML3PL-PP129","ExternLineno":"2","ExternReceiptKey":"WO-81699"}
	]`)

	rows := Flatten(v)
	if len(rows) != 2 {
		t.Fatalf("row count = %d, want 2", len(rows))
	}

	want := []string{"QtyReceived", "StorerKey", "Sku", "ExternLineno", "ExternReceiptKey"}
	got := rows[0].Columns()
	if len(got) != len(want) {
		t.Fatalf("column count = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("column[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	sku, _ := rows[1].Get("Sku")
	if sku.Str() != "ML3PL-PP129" {
		t.Errorf("row 1 Sku = %q, want ML3PL-PP129", sku.Str())
	}
}

func TestFlatten_RowCountMatchesArrayLength(t *testing.T) {
	v := mustDecode(t, `[{"a":1},{"a":2},{"a":3},{"b":{"c":4}}]`)
	rows := Flatten(v)
	if len(rows) != v.Len() {
		t.Errorf("row count = %d, want %d", len(rows), v.Len())
	}
}

func TestFlatten_MixedArray(t *testing.T) {
	v := mustDecode(t, `[1, "two", {"a":3}, null]`)

	rows := Flatten(v)
	if len(rows) != 4 {
		t.Fatalf("row count = %d, want 4", len(rows))
	}
	for i, row := range rows {
		if row.Len() != 1 {
			t.Errorf("row %d has %d columns, want 1", i, row.Len())
		}
		if _, ok := row.Get(ValueColumn); !ok {
			t.Errorf("row %d missing Value column", i)
		}
	}

	obj, _ := rows[2].Get(ValueColumn)
	if obj.Kind() != jsonvalue.Object {
		t.Errorf("row 2 Value kind = %v, want object kept whole", obj.Kind())
	}
}

func TestFlatten_FlatObjectKeepsKeys(t *testing.T) {
	v := mustDecode(t, `{"name":"widget","qty":3,"active":true}`)

	rows := Flatten(v)
	if len(rows) != 1 {
		t.Fatalf("row count = %d, want 1", len(rows))
	}
	cols := rows[0].Columns()
	want := []string{"name", "qty", "active"}
	if len(cols) != len(want) {
		t.Fatalf("column count = %d, want %d", len(cols), len(want))
	}
	for i := range want {
		if cols[i] != want[i] {
			t.Errorf("column[%d] = %q, want %q", i, cols[i], want[i])
		}
	}
}

func TestFlatten_NestedObjectPaths(t *testing.T) {
	v := mustDecode(t, `{"parent":{"child":[{"field":"a"},{"field":"b"},{"field":"c"}]},"top":1}`)

	rows := Flatten(v)
	if len(rows) != 1 {
		t.Fatalf("row count = %d, want 1", len(rows))
	}

	got, ok := rows[0].Get("parent.child[2].field")
	if !ok {
		t.Fatalf("missing parent.child[2].field; columns = %v", rows[0].Columns())
	}
	if got.Str() != "c" {
		t.Errorf("parent.child[2].field = %q, want c", got.Str())
	}
}

func TestFlatten_NestedScalarArray(t *testing.T) {
	v := mustDecode(t, `{"name":"kit","tags":["red","blue"]}`)

	rows := Flatten(v)
	cols := rows[0].Columns()
	want := []string{"name", "tags[0]", "tags[1]"}
	if len(cols) != len(want) {
		t.Fatalf("columns = %v, want %v", cols, want)
	}
	for i := range want {
		if cols[i] != want[i] {
			t.Errorf("column[%d] = %q, want %q", i, cols[i], want[i])
		}
	}
}

func TestFlatten_SameKeyCountKeepsDirectValues(t *testing.T) {
	// One nested single-field object: flattening does not change the key
	// count, so the direct members are kept and the container stays in its
	// cell.
	v := mustDecode(t, `{"a":{"b":1},"d":3}`)

	rows := Flatten(v)
	a, ok := rows[0].Get("a")
	if !ok {
		t.Fatalf("missing column a; columns = %v", rows[0].Columns())
	}
	if a.Kind() != jsonvalue.Object {
		t.Errorf("a kind = %v, want object kept whole", a.Kind())
	}
}

func TestFlatten_PathCollisionLastWriteWins(t *testing.T) {
	v := mustDecode(t, `{"a.b":1,"a":{"b":2}}`)

	rows := Flatten(v)
	if len(rows) != 1 {
		t.Fatalf("row count = %d, want 1", len(rows))
	}
	got, ok := rows[0].Get("a.b")
	if !ok {
		t.Fatal("missing collided column a.b")
	}
	if got.Int64() != 2 {
		t.Errorf("a.b = %d, want 2 (later source position wins)", got.Int64())
	}
	if rows[0].Len() != 1 {
		t.Errorf("column count = %d, want 1 after collision", rows[0].Len())
	}
}

func TestFlatten_EmptyContainersStayWhole(t *testing.T) {
	v := mustDecode(t, `{"meta":{},"items":[],"n":1}`)

	rows := Flatten(v)
	if len(rows) != 1 {
		t.Fatalf("row count = %d, want 1", len(rows))
	}
	meta, ok := rows[0].Get("meta")
	if !ok || meta.Kind() != jsonvalue.Object {
		t.Errorf("meta = %v %v, want empty object leaf", meta.Kind(), ok)
	}
	items, ok := rows[0].Get("items")
	if !ok || items.Kind() != jsonvalue.Array {
		t.Errorf("items = %v %v, want empty array leaf", items.Kind(), ok)
	}
}

func TestFlatten_RaggedArrayOfObjects(t *testing.T) {
	v := mustDecode(t, `[{"a":1,"b":2},{"a":3},{"c":4}]`)

	rows := Flatten(v)
	if len(rows) != 3 {
		t.Fatalf("row count = %d, want 3", len(rows))
	}
	if _, ok := rows[1].Get("b"); ok {
		t.Error("row 1 should not contain column b")
	}
	if _, ok := rows[2].Get("c"); !ok {
		t.Error("row 2 should contain column c")
	}
}

func TestRow_SetOverwritesInPlace(t *testing.T) {
	r := NewRow()
	r.Set("x", jsonvalue.NewInt(1))
	r.Set("y", jsonvalue.NewInt(2))
	r.Set("x", jsonvalue.NewInt(9))

	if r.Len() != 2 {
		t.Fatalf("Len = %d, want 2", r.Len())
	}
	cols := r.Columns()
	if cols[0] != "x" || cols[1] != "y" {
		t.Errorf("columns = %v, want [x y]", cols)
	}
	x, _ := r.Get("x")
	if x.Int64() != 9 {
		t.Errorf("x = %d, want 9", x.Int64())
	}
}
