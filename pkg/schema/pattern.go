// Package schema infers structure, scalar patterns, and per-field statistics
// from JSON values. Inference is a pure bottom-up pass: it never fails, and
// unexpected shapes degrade to an "other" classification instead of erroring.
package schema

import (
	"regexp"
	"strconv"

	"github.com/jsontab/jsontab/pkg/jsonvalue"
)

// PatternType tags the classification of a single scalar value.
type PatternType string

const (
	TypeNull       PatternType = "null"
	TypeBoolean    PatternType = "boolean"
	TypeInteger    PatternType = "integer"
	TypeNumber     PatternType = "number"
	TypeDatetime   PatternType = "datetime"
	TypeDate       PatternType = "date"
	TypeEmail      PatternType = "email"
	TypeIdentifier PatternType = "identifier"
	TypeNumericStr PatternType = "numeric_string"
	TypeEmptyStr   PatternType = "empty_string"
	TypeText       PatternType = "text"
	TypeOther      PatternType = "other"
)

// maxExampleLen caps representative examples for free-text values.
const maxExampleLen = 50

var (
	datetimeRegex   = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4} \d{1,2}:\d{2}:\d{2}$`)
	dateRegex       = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`)
	emailRegex      = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	identifierRegex = regexp.MustCompile(`^[A-Z0-9_-]+$`)
	numericStrRegex = regexp.MustCompile(`^[0-9]+$`)
)

// Pattern describes the detected shape of one scalar value.
type Pattern struct {
	Type        PatternType `json:"type"`
	Regex       string      `json:"pattern,omitempty"` // regex that matched, when any
	Description string      `json:"description"`
	Example     string      `json:"example,omitempty"`
}

// DetectPattern classifies a scalar value, first match wins. Strings run
// through the pattern chain in order: datetime, date, email, identifier,
// digits-only, empty, free text. Containers fall through to "other" with the
// kind name as the label.
func DetectPattern(v jsonvalue.Value) Pattern {
	switch v.Kind() {
	case jsonvalue.Null:
		return Pattern{Type: TypeNull, Description: "null value"}
	case jsonvalue.Bool:
		return Pattern{Type: TypeBoolean, Description: "boolean", Example: strconv.FormatBool(v.Bool())}
	case jsonvalue.Int:
		return Pattern{Type: TypeInteger, Description: "integer", Example: v.Raw()}
	case jsonvalue.Float:
		return Pattern{Type: TypeNumber, Description: "number", Example: v.Raw()}
	case jsonvalue.String:
		return detectStringPattern(v.Str())
	default:
		return Pattern{Type: TypeOther, Description: v.Kind().String()}
	}
}

func detectStringPattern(s string) Pattern {
	switch {
	case datetimeRegex.MatchString(s):
		return Pattern{Type: TypeDatetime, Regex: datetimeRegex.String(), Description: "datetime (MM/DD/YYYY HH:MM:SS)", Example: s}
	case dateRegex.MatchString(s):
		return Pattern{Type: TypeDate, Regex: dateRegex.String(), Description: "date (MM/DD/YYYY)", Example: s}
	case emailRegex.MatchString(s):
		return Pattern{Type: TypeEmail, Regex: emailRegex.String(), Description: "email address", Example: s}
	case identifierRegex.MatchString(s):
		return Pattern{Type: TypeIdentifier, Regex: identifierRegex.String(), Description: "uppercase identifier", Example: s}
	case numericStrRegex.MatchString(s):
		return Pattern{Type: TypeNumericStr, Regex: numericStrRegex.String(), Description: "digits-only string", Example: s}
	case s == "":
		return Pattern{Type: TypeEmptyStr, Description: "empty string"}
	default:
		return Pattern{Type: TypeText, Description: "free text", Example: truncateExample(s)}
	}
}

// truncateExample shortens long free-text examples to maxExampleLen
// characters plus an ellipsis marker. Counted in runes, not bytes.
func truncateExample(s string) string {
	r := []rune(s)
	if len(r) <= maxExampleLen {
		return s
	}
	return string(r[:maxExampleLen]) + "..."
}
