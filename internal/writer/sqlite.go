package writer

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
	_ "modernc.org/sqlite"

	"github.com/jsontab/jsontab/pkg/flatten"
	"github.com/jsontab/jsontab/pkg/jsonvalue"
)

// maxBindParams bounds the variables in one INSERT statement, staying well
// under SQLite's limit.
const maxBindParams = 900

// writeSQLite saves rows into one table of a SQLite database file. Column
// affinity follows the cell kinds and rows go in as chunked multi-row
// inserts inside a single transaction.
func writeSQLite(ctx context.Context, path string, rows flatten.RowSet, opts Options) error {
	columns := flatten.BuildColumnIndex(rows).Columns()
	if len(columns) == 0 {
		return fmt.Errorf("no columns to save to %s", path)
	}

	name := opts.Table
	if name == "" {
		name = "data"
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}

	colNames := make([]string, len(columns))
	colDefs := make([]string, len(columns))
	for i, col := range columns {
		n := col
		if opts.SnakeHeaders {
			n = strcase.ToSnake(n)
		}
		colNames[i] = sqlIdent(n)
		colDefs[i] = colNames[i] + " " + columnAffinity(rows, col)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("saving to %s: %w", path, err)
	}
	defer tx.Rollback()

	table := sqlIdent(name)
	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
		return fmt.Errorf("replacing table %s: %w", name, err)
	}
	create := "CREATE TABLE " + table + " (" + strings.Join(colDefs, ", ") + ")"
	if _, err := tx.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("creating table %s: %w", name, err)
	}

	if err := insertRows(ctx, tx, table, colNames, columns, rows); err != nil {
		return fmt.Errorf("saving to %s: %w", path, err)
	}
	return tx.Commit()
}

func insertRows(ctx context.Context, tx *sql.Tx, table string, colNames, columns []string, rows flatten.RowSet) error {
	if len(rows) == 0 {
		return nil
	}

	batch := maxBindParams / len(columns)
	if batch < 1 {
		batch = 1
	}
	placeholders := "(" + strings.TrimRight(strings.Repeat("?,", len(columns)), ",") + ")"
	prefix := "INSERT INTO " + table + " (" + strings.Join(colNames, ", ") + ") VALUES "

	for start := 0; start < len(rows); start += batch {
		end := start + batch
		if end > len(rows) {
			end = len(rows)
		}
		chunk := rows[start:end]

		var b strings.Builder
		b.WriteString(prefix)
		args := make([]any, 0, len(chunk)*len(columns))
		for i, row := range chunk {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(placeholders)
			for _, col := range columns {
				v, ok := row.Get(col)
				if !ok {
					args = append(args, nil)
					continue
				}
				args = append(args, sqliteValue(v))
			}
		}
		if _, err := tx.ExecContext(ctx, b.String(), args...); err != nil {
			return err
		}
	}
	return nil
}

// columnAffinity picks the SQLite type for a column from its cell kinds.
func columnAffinity(rows flatten.RowSet, col string) string {
	hasInt, hasFloat := false, false
	for _, row := range rows {
		v, ok := row.Get(col)
		if !ok || v.IsNull() {
			continue
		}
		switch v.Kind() {
		case jsonvalue.Int, jsonvalue.Bool:
			hasInt = true
		case jsonvalue.Float:
			hasFloat = true
		default:
			return "TEXT"
		}
	}
	switch {
	case hasFloat:
		return "REAL"
	case hasInt:
		return "INTEGER"
	default:
		return "TEXT"
	}
}

func sqliteValue(v jsonvalue.Value) any {
	switch v.Kind() {
	case jsonvalue.Null:
		return nil
	case jsonvalue.Bool:
		return v.Bool()
	case jsonvalue.Int:
		return v.Int64()
	case jsonvalue.Float:
		return v.Float64()
	case jsonvalue.String:
		return v.Str()
	default:
		return v.String()
	}
}

func sqlIdent(id string) string {
	return `"` + strings.ReplaceAll(id, `"`, `""`) + `"`
}
