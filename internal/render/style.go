package render

import "fmt"

// Table style names accepted by the -f flag.
const (
	StyleGrid   = "grid"
	StylePlain  = "plain"
	StyleSimple = "simple"
	StyleGithub = "github"
	StyleFancy  = "fancy"
)

// rule describes one horizontal line of a table: the left edge, the fill
// character, the junction between columns and the right edge.
type rule struct {
	begin string
	fill  string
	sep   string
	end   string
}

// tableStyle describes a table format in terms of its rules and cell
// delimiters. A nil rule is omitted.
type tableStyle struct {
	top         *rule
	belowHeader *rule
	betweenRows *rule
	bottom      *rule
	cellBegin   string
	cellSep     string
	cellEnd     string
	padding     int // spaces inside each cell delimiter
}

var tableStyles = map[string]tableStyle{
	StyleGrid: {
		top:         &rule{"+", "-", "+", "+"},
		belowHeader: &rule{"+", "=", "+", "+"},
		betweenRows: &rule{"+", "-", "+", "+"},
		bottom:      &rule{"+", "-", "+", "+"},
		cellBegin:   "|",
		cellSep:     "|",
		cellEnd:     "|",
		padding:     1,
	},
	StyleFancy: {
		top:         &rule{"╒", "═", "╤", "╕"},
		belowHeader: &rule{"╞", "═", "╪", "╡"},
		betweenRows: &rule{"├", "─", "┼", "┤"},
		bottom:      &rule{"╘", "═", "╧", "╛"},
		cellBegin:   "│",
		cellSep:     "│",
		cellEnd:     "│",
		padding:     1,
	},
	StyleGithub: {
		belowHeader: &rule{"|", "-", "|", "|"},
		cellBegin:   "|",
		cellSep:     "|",
		cellEnd:     "|",
		padding:     1,
	},
	StyleSimple: {
		belowHeader: &rule{"", "-", "  ", ""},
		cellSep:     "  ",
	},
	StylePlain: {
		cellSep: "  ",
	},
}

// lookupStyle resolves a style name, accepting "fancy_grid" as an alias for
// fancy to match the original flag spelling.
func lookupStyle(name string) (tableStyle, error) {
	if name == "fancy_grid" {
		name = StyleFancy
	}
	s, ok := tableStyles[name]
	if !ok {
		return tableStyle{}, fmt.Errorf("unknown table format: %q (valid: grid, plain, simple, github, fancy)", name)
	}
	return s, nil
}
