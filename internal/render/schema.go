package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsontab/jsontab/pkg/schema"
)

// SchemaOptions control the schema tree view.
type SchemaOptions struct {
	Detailed bool
	Palette  Palette
}

// SchemaDocument renders the inferred-schema view with its label and
// framing rules.
func SchemaDocument(node *schema.Node, opts SchemaOptions) string {
	var sb strings.Builder
	sb.WriteString("\nInferred Schema:\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	writeSchema(&sb, node, 0, opts)
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	return sb.String()
}

// SchemaTree renders a schema node tree without the document framing.
func SchemaTree(node *schema.Node, opts SchemaOptions) string {
	var sb strings.Builder
	writeSchema(&sb, node, 0, opts)
	return sb.String()
}

func writeSchema(sb *strings.Builder, node *schema.Node, indent int, opts SchemaOptions) {
	prefix := strings.Repeat("  ", indent)
	p := opts.Palette

	switch node.Kind {
	case schema.NodeObject:
		fmt.Fprintf(sb, "%s┌─ %s\n", prefix, p.typeName(printer.Sprintf("Object (%d fields)", len(node.Fields))))
		required := make(map[string]bool, len(node.Required))
		for _, name := range node.Required {
			required[name] = true
		}
		for i, f := range node.Fields {
			connector := "├─"
			if i == len(node.Fields)-1 {
				connector = "└─"
			}
			mark := requiredMark(required[f.Name], p)

			switch f.Node.Kind {
			case schema.NodeObject:
				fmt.Fprintf(sb, "%s%s %s: %s%s\n", prefix, connector, p.key(f.Name),
					p.typeName(printer.Sprintf("Object (%d fields)", len(f.Node.Fields))), mark)
				writeSchema(sb, f.Node, indent+2, opts)
			case schema.NodeArray:
				fmt.Fprintf(sb, "%s%s %s: %s%s\n", prefix, connector, p.key(f.Name), arrayLabel(f.Node, p), mark)
				if !f.Node.Empty {
					writeSchema(sb, f.Node.Items, indent+2, opts)
				}
			default:
				fmt.Fprintf(sb, "%s%s %s: %s%s\n", prefix, connector, p.key(f.Name), patternText(f.Node.Pattern, p), mark)
				if opts.Detailed && f.Node.Stats != nil {
					writeStats(sb, f.Node.Stats, prefix+"     ")
				}
			}
		}

	case schema.NodeArray:
		fmt.Fprintf(sb, "%s└─ %s\n", prefix, arrayLabel(node, p))
		if !node.Empty {
			writeSchema(sb, node.Items, indent+2, opts)
		}

	default:
		fmt.Fprintf(sb, "%s└─ %s\n", prefix, patternText(node.Pattern, p))
		if opts.Detailed && node.Stats != nil {
			writeStats(sb, node.Stats, prefix+"   ")
		}
	}
}

func arrayLabel(node *schema.Node, p Palette) string {
	if node.Empty {
		return p.typeName("Array (empty)")
	}
	return p.typeName(printer.Sprintf("Array (%d items)", node.ItemCount))
}

// patternText renders a leaf's classification: the human-readable
// description plus a representative example when one was captured.
func patternText(pat *schema.Pattern, p Palette) string {
	if pat == nil {
		return "unknown"
	}
	s := p.typeName(pat.Description)
	if pat.Example != "" {
		s += " e.g. " + pat.Example
	}
	return s
}

func requiredMark(required bool, p Palette) string {
	if required {
		return ""
	}
	return " " + p.required("(optional)")
}

// writeStats emits the detailed statistics lines beneath a field.
func writeStats(sb *strings.Builder, st *schema.FieldStats, prefix string) {
	line := fmt.Sprintf("count: %d, nulls: %d (%.1f%%)", st.Count, st.NullCount, st.NullRate*100)
	if len(st.Types) > 0 {
		line += ", types: " + strings.Join(st.Types, ", ")
	}
	fmt.Fprintf(sb, "%s%s\n", prefix, line)

	if st.Numeric {
		fmt.Fprintf(sb, "%smin: %s, max: %s, avg: %s\n", prefix, formatNum(st.Min), formatNum(st.Max), formatNum(st.Avg))
	}
	if st.Strings {
		fmt.Fprintf(sb, "%slength: min %d, max %d, avg %.1f; unique: %d (%.1f%%)\n",
			prefix, st.MinLen, st.MaxLen, st.AvgLen, st.UniqueCount, st.UniquenessRate*100)
		if len(st.TopValues) > 0 {
			parts := make([]string, len(st.TopValues))
			for i, tv := range st.TopValues {
				parts[i] = fmt.Sprintf("%q (%d)", tv.Value, tv.Count)
			}
			fmt.Fprintf(sb, "%stop: %s\n", prefix, strings.Join(parts, ", "))
		}
	}
}

func formatNum(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
