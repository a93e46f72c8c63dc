package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	validator "github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jsontab/jsontab/pkg/jsonvalue"
)

// printer localizes validation messages.
var printer = message.NewPrinter(language.English)

// Check compiles a JSON Schema document and reports any compilation error.
// Every document produced by Build must pass.
func Check(doc []byte) error {
	_, err := compile(doc)
	return err
}

// Validate checks a document against a JSON Schema document and returns an
// error naming each mismatched location.
func Validate(schemaDoc []byte, v jsonvalue.Value) error {
	compiled, err := compile(schemaDoc)
	if err != nil {
		return err
	}

	// Round-trip through encoding/json so the validator sees plain
	// decoded values.
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	var instance any
	if err := json.Unmarshal(raw, &instance); err != nil {
		return fmt.Errorf("decoding document: %w", err)
	}

	err = compiled.Validate(instance)
	if err == nil {
		return nil
	}

	var ve *validator.ValidationError
	if errors.As(err, &ve) {
		return fmt.Errorf("document does not match schema: %s", strings.Join(validationMessages(ve), "; "))
	}
	return err
}

func compile(doc []byte) (*validator.Schema, error) {
	var value any
	if err := json.Unmarshal(doc, &value); err != nil {
		return nil, fmt.Errorf("parsing schema document: %w", err)
	}

	compiler := validator.NewCompiler()
	if err := compiler.AddResource("schema.json", value); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}
	return compiled, nil
}

// validationMessages flattens a validation error into deduplicated
// "location: message" lines in traversal order.
func validationMessages(err *validator.ValidationError) []string {
	seen := make(map[string]bool)
	var msgs []string
	collectMessages(err, seen, &msgs)
	if len(msgs) == 0 {
		msgs = append(msgs, err.Error())
	}
	return msgs
}

// collectMessages recursively collects leaf errors, skipping $ref and
// schema reference messages.
func collectMessages(err *validator.ValidationError, seen map[string]bool, msgs *[]string) {
	if err.ErrorKind != nil && len(err.Causes) == 0 {
		msg := err.ErrorKind.LocalizedString(printer)
		if !strings.HasPrefix(msg, "$ref ") && !strings.HasPrefix(msg, "doesn't validate with") {
			line := msg
			if len(err.InstanceLocation) > 0 {
				line = "/" + strings.Join(err.InstanceLocation, "/") + ": " + msg
			}
			if !seen[line] {
				seen[line] = true
				*msgs = append(*msgs, line)
			}
		}
	}
	for _, cause := range err.Causes {
		collectMessages(cause, seen, msgs)
	}
}
