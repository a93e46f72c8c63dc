package render

import (
	"fmt"
	"strings"

	"github.com/jsontab/jsontab/pkg/jsonvalue"
)

// maxStructureDepth bounds how far the structure analysis descends into
// nested containers.
const maxStructureDepth = 2

// StructureDocument renders the structure analysis view with its label.
func StructureDocument(v jsonvalue.Value, p Palette) string {
	var sb strings.Builder
	sb.WriteString("\nJSON Structure Analysis:\n")
	sb.WriteString(strings.Repeat("-", 30) + "\n")
	writeStructure(&sb, v, 0, p)
	return sb.String()
}

// Structure renders a depth-limited summary of a document: key and element
// counts, member type names, and a sample element structure for arrays.
func Structure(v jsonvalue.Value, p Palette) string {
	var sb strings.Builder
	writeStructure(&sb, v, 0, p)
	return sb.String()
}

func writeStructure(sb *strings.Builder, v jsonvalue.Value, indent int, p Palette) {
	prefix := strings.Repeat("  ", indent)

	switch v.Kind() {
	case jsonvalue.Object:
		fmt.Fprintf(sb, "%s%s\n", prefix, printer.Sprintf("Object (%d keys):", v.Len()))
		for _, m := range v.Members() {
			fmt.Fprintf(sb, "%s  - %s: %s\n", prefix, p.key(m.Key), p.typeName(m.Value.Kind().String()))
			if !m.Value.IsScalar() && indent < maxStructureDepth {
				writeStructure(sb, m.Value, indent+2, p)
			}
		}

	case jsonvalue.Array:
		items := v.Items()
		fmt.Fprintf(sb, "%s%s\n", prefix, printer.Sprintf("Array (%d items):", len(items)))
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(sb, "%s  Item types: %s\n", prefix, p.typeName(strings.Join(itemTypes(items), ", ")))
		if !items[0].IsScalar() && indent < maxStructureDepth {
			fmt.Fprintf(sb, "%s  Sample item structure:\n", prefix)
			writeStructure(sb, items[0], indent+2, p)
		}

	default:
		fmt.Fprintf(sb, "%sValue: %s\n", prefix, p.typeName(v.Kind().String()))
	}
}

// itemTypes returns the distinct element type names in first-seen order.
func itemTypes(items []jsonvalue.Value) []string {
	seen := make(map[string]bool)
	var names []string
	for _, item := range items {
		name := item.Kind().String()
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}
