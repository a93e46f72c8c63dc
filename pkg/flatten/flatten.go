package flatten

import (
	"strconv"

	"github.com/jsontab/jsontab/pkg/jsonvalue"
)

// Flatten converts any JSON value into a RowSet. It is total: every value
// has a defined flattening and no errors are possible.
//
// Dispatch, in priority order:
//  1. Empty array: empty RowSet.
//  2. Array of objects only: one row per element, each fully flattened.
//  3. Array with any non-object element: one row per element under the
//     single column "Value", elements kept as-is.
//  4. Object: one flattened row when nesting changed the key count,
//     otherwise one row of the direct keys unmodified.
//  5. Scalar (including null): one row {Value: v}.
func Flatten(v jsonvalue.Value) RowSet {
	switch v.Kind() {
	case jsonvalue.Array:
		items := v.Items()
		if len(items) == 0 {
			return RowSet{}
		}
		if allObjects(items) {
			rows := make(RowSet, 0, len(items))
			for _, item := range items {
				rows = append(rows, flattenObject(item))
			}
			return rows
		}
		rows := make(RowSet, 0, len(items))
		for _, item := range items {
			r := NewRow()
			r.Set(ValueColumn, item)
			rows = append(rows, r)
		}
		return rows
	case jsonvalue.Object:
		return RowSet{flattenObject(v)}
	default:
		r := NewRow()
		r.Set(ValueColumn, v)
		return RowSet{r}
	}
}

func allObjects(items []jsonvalue.Value) bool {
	for _, item := range items {
		if item.Kind() != jsonvalue.Object {
			return false
		}
	}
	return true
}

// flattenObject emits one row for an object. When the flattened column count
// equals the direct member count no nesting was found, and the direct members
// are emitted unmodified (container values stay whole in their cells).
func flattenObject(obj jsonvalue.Value) *Row {
	flat := NewRow()
	for _, m := range obj.Members() {
		walk(flat, m.Key, m.Value)
	}
	if flat.Len() == obj.Len() {
		direct := NewRow()
		for _, m := range obj.Members() {
			direct.Set(m.Key, m.Value)
		}
		return direct
	}
	return flat
}

// walk collapses a value into row cells under path. Object members extend
// the path with ".key", array elements with "[i]". Empty containers are kept
// whole as leaf cells.
func walk(row *Row, path string, v jsonvalue.Value) {
	switch v.Kind() {
	case jsonvalue.Object:
		if v.Len() == 0 {
			row.Set(path, v)
			return
		}
		for _, m := range v.Members() {
			walk(row, path+"."+m.Key, m.Value)
		}
	case jsonvalue.Array:
		if v.Len() == 0 {
			row.Set(path, v)
			return
		}
		for i, item := range v.Items() {
			walk(row, path+"["+strconv.Itoa(i)+"]", item)
		}
	default:
		row.Set(path, v)
	}
}
