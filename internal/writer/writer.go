// Package writer saves row sets and schema documents to files, with the
// format chosen by the output path's extension.
package writer

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jsontab/jsontab/pkg/flatten"
)

// Options control file output.
type Options struct {
	SnakeHeaders bool   // convert column headers to snake_case
	Table        string // SQLite table name, derived from the input file stem
}

// supportedExtensions lists every extension the dispatchers accept.
const supportedExtensions = ".csv, .json, .yaml, .yml, .md, .db, .sqlite"

// WriteRows saves a row set to path in the format matching its extension.
func WriteRows(ctx context.Context, path string, rows flatten.RowSet, opts Options) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return writeCSV(path, rows, opts)
	case ".json":
		return writeJSONRows(path, rows)
	case ".yaml", ".yml":
		return writeYAMLRows(path, rows)
	case ".md":
		return writeMarkdownRows(path, rows, opts)
	case ".db", ".sqlite":
		return writeSQLite(ctx, path, rows, opts)
	default:
		return unsupportedExt(path)
	}
}

// WriteSchema saves a JSON Schema document to path. Tabular formats cannot
// hold a schema document.
func WriteSchema(path string, doc []byte) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return writeJSONSchema(path, doc)
	case ".yaml", ".yml":
		return writeYAMLSchema(path, doc)
	case ".md":
		return writeMarkdownSchema(path, doc)
	case ".csv", ".db", ".sqlite":
		return fmt.Errorf("schema export supports .json, .yaml, .yml and .md, not %q", filepath.Ext(path))
	default:
		return unsupportedExt(path)
	}
}

func unsupportedExt(path string) error {
	ext := filepath.Ext(path)
	if ext == "" {
		return fmt.Errorf("output path %q has no extension (supported: %s)", path, supportedExtensions)
	}
	return fmt.Errorf("unsupported output format %q (supported: %s)", ext, supportedExtensions)
}
