package render

import (
	"fmt"
	"strings"

	"github.com/jsontab/jsontab/pkg/flatten"
	"github.com/jsontab/jsontab/pkg/jsonvalue"
)

// TreeDocument renders the hierarchical document view with its label and
// framing rules.
func TreeDocument(v jsonvalue.Value, opts TableOptions) (string, error) {
	body, err := Tree(v, opts)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("\nJSON Structure Display:\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(body)
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	return sb.String(), nil
}

// Tree renders a document as an indented hierarchy. Objects list their
// members with branch connectors, arrays of objects become embedded tables
// with an Index column, and other arrays list their elements by position.
func Tree(v jsonvalue.Value, opts TableOptions) (string, error) {
	var sb strings.Builder
	if err := writeTree(&sb, v, 0, opts); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writeTree(sb *strings.Builder, v jsonvalue.Value, indent int, opts TableOptions) error {
	prefix := strings.Repeat("  ", indent)
	p := opts.Palette

	switch v.Kind() {
	case jsonvalue.Object:
		members := v.Members()
		fmt.Fprintf(sb, "%s┌─ %s\n", prefix, p.typeName(printer.Sprintf("Object (%d keys)", len(members))))
		for i, m := range members {
			connector := "├─"
			if i == len(members)-1 {
				connector = "└─"
			}
			switch m.Value.Kind() {
			case jsonvalue.Object:
				fmt.Fprintf(sb, "%s%s %s: %s\n", prefix, connector, p.key(m.Key),
					p.typeName(printer.Sprintf("Object (%d keys)", m.Value.Len())))
				if err := writeTree(sb, m.Value, indent+2, opts); err != nil {
					return err
				}
			case jsonvalue.Array:
				fmt.Fprintf(sb, "%s%s %s: %s\n", prefix, connector, p.key(m.Key),
					p.typeName(printer.Sprintf("Array (%d items)", m.Value.Len())))
				if err := writeTree(sb, m.Value, indent+2, opts); err != nil {
					return err
				}
			default:
				fmt.Fprintf(sb, "%s%s %s: %s\n", prefix, connector, p.key(m.Key), scalarTreeText(m.Value, p))
			}
		}

	case jsonvalue.Array:
		items := v.Items()
		if len(items) > 0 && allObjectItems(items) {
			return writeTreeTable(sb, items, prefix, opts)
		}
		fmt.Fprintf(sb, "%s└─ %s\n", prefix, p.typeName(printer.Sprintf("Array (%d items)", len(items))))
		for i, item := range items {
			connector := "├─"
			if i == len(items)-1 {
				connector = "└─"
			}
			fmt.Fprintf(sb, "%s   %s [%d]: %s\n", prefix, connector, i, scalarTreeText(item, p))
		}

	default:
		fmt.Fprintf(sb, "%s└─ %s\n", prefix, scalarTreeText(v, p))
	}
	return nil
}

// writeTreeTable renders an array of objects as an embedded table. Rows keep
// the objects' direct members, so nested containers display as compact JSON
// in their cells rather than expanding into path columns.
func writeTreeTable(sb *strings.Builder, items []jsonvalue.Value, prefix string, opts TableOptions) error {
	rows := make(flatten.RowSet, 0, len(items))
	for _, item := range items {
		row := flatten.NewRow()
		for _, m := range item.Members() {
			row.Set(m.Key, m.Value)
		}
		rows = append(rows, row)
	}

	opts.ShowIndex = true
	opts.IndexTitle = "Index"
	table, err := Table(rows, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(sb, "%s└─ Table:\n", prefix)
	for _, line := range strings.Split(strings.TrimRight(table, "\n"), "\n") {
		fmt.Fprintf(sb, "%s   %s\n", prefix, line)
	}
	return nil
}

func scalarTreeText(v jsonvalue.Value, p Palette) string {
	if v.IsNull() {
		return p.null("null")
	}
	return DisplayValue(v)
}

func allObjectItems(items []jsonvalue.Value) bool {
	for _, item := range items {
		if item.Kind() != jsonvalue.Object {
			return false
		}
	}
	return true
}
