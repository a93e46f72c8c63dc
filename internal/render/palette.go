package render

import "os"

// Color mode names accepted by the --color flag.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Palette holds the ANSI sequences used by the renderers, one per display
// role. The zero Palette renders plain text. Renderers receive a Palette
// explicitly; there is no global color state.
type Palette struct {
	Header   string // table headers
	Key      string // object keys and column names in trees
	Type     string // type and pattern names
	Required string // required/optional field markers
	Null     string // null and empty markers
	Reset    string
}

// Colors returns the default ANSI palette when enabled is true, the zero
// palette otherwise.
func Colors(enabled bool) Palette {
	if !enabled {
		return Palette{}
	}
	return Palette{
		Header:   "\x1b[1m",  // bold
		Key:      "\x1b[36m", // cyan
		Type:     "\x1b[33m", // yellow
		Required: "\x1b[32m", // green
		Null:     "\x1b[90m", // gray
		Reset:    "\x1b[0m",
	}
}

// ColorEnabled resolves a color mode against the output stream: "always"
// and "never" are unconditional, "auto" enables color only when out is a
// terminal.
func ColorEnabled(mode string, out *os.File) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		info, err := out.Stat()
		if err != nil {
			return false
		}
		return info.Mode()&os.ModeCharDevice != 0
	}
}

func (p Palette) paint(code, s string) string {
	if code == "" || s == "" {
		return s
	}
	return code + s + p.Reset
}

func (p Palette) key(s string) string      { return p.paint(p.Key, s) }
func (p Palette) typeName(s string) string { return p.paint(p.Type, s) }
func (p Palette) required(s string) string { return p.paint(p.Required, s) }
func (p Palette) null(s string) string     { return p.paint(p.Null, s) }
