// Package export maps inferred schema trees onto JSON Schema documents
// (Draft 2020-12) and validates documents against them.
package export

import (
	"github.com/invopop/jsonschema"

	"github.com/jsontab/jsontab/pkg/schema"
)

// Build converts an inferred schema tree into a JSON Schema document. The
// document summarizes what inference observed: detected string patterns
// become pattern/description annotations and the required lists carry over
// from the null-rate analysis. Nested containers sampled inside merged
// array fields keep their bare container type.
func Build(node *schema.Node) *jsonschema.Schema {
	s := build(node)
	s.Version = jsonschema.Version
	return s
}

func build(node *schema.Node) *jsonschema.Schema {
	switch node.Kind {
	case schema.NodeObject:
		s := &jsonschema.Schema{
			Type:       "object",
			Properties: jsonschema.NewProperties(),
		}
		for _, f := range node.Fields {
			s.Properties.Set(f.Name, build(f.Node))
		}
		if len(node.Required) > 0 {
			s.Required = node.Required
		}
		return s

	case schema.NodeArray:
		s := &jsonschema.Schema{Type: "array"}
		if !node.Empty {
			s.Items = build(node.Items)
		}
		return s

	default:
		return buildLeaf(node.Pattern)
	}
}

func buildLeaf(pat *schema.Pattern) *jsonschema.Schema {
	if pat == nil {
		return &jsonschema.Schema{}
	}

	s := &jsonschema.Schema{}
	switch pat.Type {
	case schema.TypeNull:
		s.Type = "null"
	case schema.TypeBoolean:
		s.Type = "boolean"
	case schema.TypeInteger:
		s.Type = "integer"
	case schema.TypeNumber:
		s.Type = "number"
	case schema.TypeOther:
		// A container sampled inside a merged array field. Its inner
		// shape was not traversed, so only the type constrains it.
		if pat.Description == "object" || pat.Description == "array" {
			s.Type = pat.Description
		}
	default:
		s.Type = "string"
		s.Description = pat.Description
		if pat.Regex != "" {
			s.Pattern = pat.Regex
		}
		if pat.Type == schema.TypeEmail {
			s.Format = "email"
		}
		if pat.Example != "" {
			s.Examples = []any{pat.Example}
		}
	}
	return s
}
