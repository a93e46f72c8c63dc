package writer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jsontab/jsontab/pkg/flatten"
	"github.com/jsontab/jsontab/pkg/jsonvalue"
)

// rowsValue rebuilds a row set as a JSON array of objects. Every record
// carries the full column union in first-seen order, with null standing in
// for absent cells.
func rowsValue(rows flatten.RowSet) jsonvalue.Value {
	columns := flatten.BuildColumnIndex(rows).Columns()

	records := make([]jsonvalue.Value, 0, len(rows))
	for _, row := range rows {
		members := make([]jsonvalue.Member, 0, len(columns))
		for _, col := range columns {
			v, ok := row.Get(col)
			if !ok {
				v = jsonvalue.NewNull()
			}
			members = append(members, jsonvalue.Member{Key: col, Value: v})
		}
		records = append(records, jsonvalue.NewObject(members...))
	}
	return jsonvalue.NewArray(records...)
}

func writeJSONRows(path string, rows flatten.RowSet) error {
	raw, err := json.Marshal(rowsValue(rows))
	if err != nil {
		return fmt.Errorf("encoding rows: %w", err)
	}
	return writeIndentedJSON(path, raw)
}

func writeJSONSchema(path string, doc []byte) error {
	return writeIndentedJSON(path, doc)
}

// writeIndentedJSON reformats compact JSON with two-space indentation and
// saves it. json.Indent keeps the original key order.
func writeIndentedJSON(path string, raw []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("formatting JSON: %w", err)
	}
	buf.WriteByte('\n')

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
