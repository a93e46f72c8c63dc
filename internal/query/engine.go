// Package query applies jq expressions to parsed documents before they are
// flattened or inferred.
package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/itchyny/gojq"

	"github.com/jsontab/jsontab/pkg/jsonvalue"
)

// Engine holds a compiled jq expression that can run against any number of
// documents. Compile once, apply per document.
type Engine struct {
	expr string
	code *gojq.Code
}

// New parses and compiles a jq expression.
func New(expr string) (*Engine, error) {
	q, err := gojq.Parse(expr)
	if err != nil {
		var parseErr *gojq.ParseError
		if errors.As(err, &parseErr) {
			return nil, fmt.Errorf("invalid jq expression at position %d: %w", parseErr.Offset, err)
		}
		return nil, fmt.Errorf("invalid jq expression: %w", err)
	}

	code, err := gojq.Compile(q)
	if err != nil {
		return nil, fmt.Errorf("failed to compile jq expression: %w", err)
	}

	return &Engine{expr: expr, code: code}, nil
}

// Apply runs the expression against root. A single output becomes the new
// document root; multiple outputs are collected into an array, matching how
// jq streams results. An expression that produces no output at all is an
// error, since there would be nothing to convert.
func (e *Engine) Apply(root jsonvalue.Value) (jsonvalue.Value, error) {
	iter := e.code.Run(root.ToAny())

	var outputs []any
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			return jsonvalue.Value{}, runError(err)
		}
		outputs = append(outputs, v)
	}

	switch len(outputs) {
	case 0:
		return jsonvalue.Value{}, fmt.Errorf("expression %q produced no output", e.expr)
	case 1:
		return jsonvalue.FromAny(outputs[0]), nil
	default:
		return jsonvalue.FromAny(outputs), nil
	}
}

// ValidateExpression checks a jq expression without executing it.
func ValidateExpression(expr string) error {
	_, err := New(expr)
	return err
}

// runError decorates jq runtime failures with hints for common mistakes.
//
// Note: runtime errors (like "cannot iterate over: null") are plain errors
// without typed wrappers in gojq, so string matching is used for the
// user-facing hints. This only decorates display messages, it makes no
// control flow decisions.
func runError(err error) error {
	var haltErr *gojq.HaltError
	if errors.As(err, &haltErr) {
		if haltErr.Value() == nil {
			return errors.New("jq: query halted")
		}
		return fmt.Errorf("jq: query halted with: %v", haltErr.Value())
	}

	errStr := err.Error()

	var hint string
	switch {
	case strings.Contains(errStr, "cannot iterate over: null"):
		hint = " (the path may not exist in this document)"
	case strings.Contains(errStr, "cannot index") && strings.Contains(errStr, "with"):
		hint = " (field not found or wrong type)"
	case strings.Contains(errStr, "object") && strings.Contains(errStr, "cannot be iterated"):
		hint = " (expected array but got object, try removing '[]')"
	case strings.Contains(errStr, "array") && strings.Contains(errStr, "cannot be indexed"):
		hint = " (expected object but got array, try adding '[]')"
	}

	return fmt.Errorf("jq: %s%s", errStr, hint)
}
