// Package render turns row sets, documents and inferred schemas into
// aligned terminal text.
package render

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"

	"github.com/jsontab/jsontab/pkg/jsonvalue"
)

// DisplayValue renders a value for terminal output: bare text for scalars,
// compact JSON for containers. Number literals print exactly as written in
// the source document.
func DisplayValue(v jsonvalue.Value) string {
	switch v.Kind() {
	case jsonvalue.Null:
		return "null"
	case jsonvalue.Bool:
		if v.Bool() {
			return "true"
		}
		return "false"
	case jsonvalue.Int, jsonvalue.Float:
		return v.Raw()
	case jsonvalue.String:
		return v.Str()
	default:
		return v.String()
	}
}

// Truncate shortens s to at most max runes, appending "..." when it was
// cut. max <= 0 disables truncation.
func Truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max]) + "..."
}

// displayWidth returns the number of terminal cells s occupies. East Asian
// wide and fullwidth runes count as two cells so multi-byte text aligns.
func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += 2
		default:
			w++
		}
	}
	return w
}

// padRight left-aligns s within w terminal cells.
func padRight(s string, w int) string {
	if d := w - displayWidth(s); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}

// padLeft right-aligns s within w terminal cells.
func padLeft(s string, w int) string {
	if d := w - displayWidth(s); d > 0 {
		return strings.Repeat(" ", d) + s
	}
	return s
}
