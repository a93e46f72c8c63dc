package writer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jsontab/jsontab/internal/render"
	"github.com/jsontab/jsontab/pkg/flatten"
)

// writeMarkdownRows saves rows as a GitHub-flavored Markdown table, never
// truncated.
func writeMarkdownRows(path string, rows flatten.RowSet, opts Options) error {
	table, err := render.Table(rows, render.TableOptions{
		Style:        render.StyleGithub,
		SnakeHeaders: opts.SnakeHeaders,
	})
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(table), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// writeMarkdownSchema saves a schema document as a Markdown page with the
// schema in a fenced JSON block.
func writeMarkdownSchema(path string, doc []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, doc, "", "  "); err != nil {
		return fmt.Errorf("formatting JSON: %w", err)
	}

	var page bytes.Buffer
	page.WriteString("# Inferred JSON Schema\n\n```json\n")
	page.Write(buf.Bytes())
	page.WriteString("\n```\n")

	if err := os.WriteFile(path, page.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
