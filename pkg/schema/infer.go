package schema

import "github.com/jsontab/jsontab/pkg/jsonvalue"

// requiredNullRateMax is the exclusive bound on a field's null rate below
// which it is marked required in a merged array schema. A rate of exactly
// 0.5 leaves the field optional.
const requiredNullRateMax = 0.5

// NodeKind identifies the shape a Node describes.
type NodeKind string

const (
	NodeObject NodeKind = "object"
	NodeArray  NodeKind = "array"
	NodeLeaf   NodeKind = "leaf"
)

// Field is one named member of an object node, in source order.
type Field struct {
	Name string `json:"name"`
	Node *Node  `json:"node"`
}

// Node is a recursive description of a JSON value's structure. Object nodes
// carry ordered fields and a required list; array nodes carry a merged item
// node and an item count, with Empty set for arrays that had no elements;
// leaf nodes carry the detected pattern and, in detailed mode, statistics.
type Node struct {
	Kind NodeKind `json:"kind"`

	Fields   []Field  `json:"fields,omitempty"`
	Required []string `json:"required,omitempty"`

	Items     *Node `json:"items,omitempty"`
	ItemCount int   `json:"item_count,omitempty"`
	Empty     bool  `json:"empty,omitempty"`

	Pattern *Pattern    `json:"pattern,omitempty"`
	Stats   *FieldStats `json:"stats,omitempty"`
}

// Infer builds a schema tree for any JSON value. With detailed set, merged
// array schemas carry per-field statistics. Infer is total and
// deterministic: the same input always yields a structurally identical tree.
func Infer(v jsonvalue.Value, detailed bool) *Node {
	switch v.Kind() {
	case jsonvalue.Object:
		return inferObject(v, detailed)
	case jsonvalue.Array:
		return inferArray(v, detailed)
	default:
		p := DetectPattern(v)
		return &Node{Kind: NodeLeaf, Pattern: &p}
	}
}

// inferObject describes a single object: every present field recurses and is
// marked required, since only this one object is being inspected.
func inferObject(v jsonvalue.Value, detailed bool) *Node {
	members := v.Members()
	node := &Node{
		Kind:     NodeObject,
		Fields:   make([]Field, 0, len(members)),
		Required: make([]string, 0, len(members)),
	}
	for _, m := range members {
		node.Fields = append(node.Fields, Field{Name: m.Key, Node: Infer(m.Value, detailed)})
		node.Required = append(node.Required, m.Key)
	}
	return node
}

func inferArray(v jsonvalue.Value, detailed bool) *Node {
	items := v.Items()
	if len(items) == 0 {
		return &Node{Kind: NodeArray, Empty: true}
	}

	if allObjectItems(items) {
		return &Node{
			Kind:      NodeArray,
			ItemCount: len(items),
			Items:     mergeObjectItems(items, detailed),
		}
	}

	// Non-object elements: the first element stands in for the item schema.
	p := DetectPattern(items[0])
	return &Node{
		Kind:      NodeArray,
		ItemCount: len(items),
		Items:     &Node{Kind: NodeLeaf, Pattern: &p},
	}
}

func allObjectItems(items []jsonvalue.Value) bool {
	for _, item := range items {
		if item.Kind() != jsonvalue.Object {
			return false
		}
	}
	return true
}

// mergeObjectItems unions the keys of every element in first-seen order and
// summarizes each field across all elements: statistics over the gathered
// values (null where absent), the pattern of the first non-null sample, and
// required status from the null rate.
func mergeObjectItems(items []jsonvalue.Value, detailed bool) *Node {
	var keys []string
	seen := make(map[string]bool)
	for _, item := range items {
		for _, m := range item.Members() {
			if !seen[m.Key] {
				seen[m.Key] = true
				keys = append(keys, m.Key)
			}
		}
	}

	node := &Node{
		Kind:   NodeObject,
		Fields: make([]Field, 0, len(keys)),
	}

	for _, key := range keys {
		values := gatherField(items, key)
		stats := AnalyzeField(values)

		sample := jsonvalue.NewNull()
		for _, v := range values {
			if !v.IsNull() {
				sample = v
				break
			}
		}
		p := DetectPattern(sample)

		leaf := &Node{Kind: NodeLeaf, Pattern: &p}
		if detailed {
			s := stats
			leaf.Stats = &s
		}
		node.Fields = append(node.Fields, Field{Name: key, Node: leaf})

		if stats.NullRate < requiredNullRateMax {
			node.Required = append(node.Required, key)
		}
	}
	return node
}

// gatherField collects a field's value from every element, contributing null
// where the field is absent.
func gatherField(items []jsonvalue.Value, key string) []jsonvalue.Value {
	values := make([]jsonvalue.Value, 0, len(items))
	for _, item := range items {
		if v, ok := item.Field(key); ok {
			values = append(values, v)
		} else {
			values = append(values, jsonvalue.NewNull())
		}
	}
	return values
}
