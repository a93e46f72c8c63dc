// Package jsonvalue defines the parsed JSON document model shared by the
// flattener and the schema inferencer: a tagged union over the seven JSON
// kinds that preserves object member order and raw number literals from the
// source document.
package jsonvalue

import (
	"encoding/json"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	Null Kind = iota
	Bool
	Int
	Float
	String
	Array
	Object
)

// String returns the JSON-facing type name for the kind.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Int:
		return "integer"
	case Float:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// Member is a single object member. Objects are stored as member slices, not
// maps, so document key order survives decoding.
type Member struct {
	Key   string
	Value Value
}

// Value is an immutable JSON value. The zero Value is JSON null.
type Value struct {
	kind Kind
	boo  bool
	raw  string // number literal as written in the source
	i    int64
	f    float64
	str  string
	arr  []Value
	obj  []Member
}

// NewNull returns the JSON null value.
func NewNull() Value {
	return Value{kind: Null}
}

// NewBool returns a boolean value.
func NewBool(b bool) Value {
	return Value{kind: Bool, boo: b}
}

// NewInt returns an integer value.
func NewInt(i int64) Value {
	return Value{kind: Int, raw: strconv.FormatInt(i, 10), i: i, f: float64(i)}
}

// NewFloat returns a floating-point value.
func NewFloat(f float64) Value {
	return Value{kind: Float, raw: strconv.FormatFloat(f, 'g', -1, 64), f: f}
}

// NewNumber builds a numeric value from a JSON number literal, classifying it
// as Int when the literal has no fraction or exponent and fits int64, Float
// otherwise. The literal is kept verbatim for display.
func NewNumber(raw string) Value {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return Value{kind: Int, raw: raw, i: i, f: float64(i)}
	}
	f, _ := strconv.ParseFloat(raw, 64)
	return Value{kind: Float, raw: raw, f: f}
}

// NewString returns a string value.
func NewString(s string) Value {
	return Value{kind: String, str: s}
}

// NewArray returns an array value holding the given elements.
func NewArray(items ...Value) Value {
	return Value{kind: Array, arr: items}
}

// NewObject returns an object value holding the given members in order.
func NewObject(members ...Member) Value {
	return Value{kind: Object, obj: members}
}

// Kind reports which variant the value holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is JSON null.
func (v Value) IsNull() bool { return v.kind == Null }

// IsScalar reports whether the value is a leaf (not array or object).
func (v Value) IsScalar() bool { return v.kind != Array && v.kind != Object }

// Bool returns the boolean payload. Valid only for Bool values.
func (v Value) Bool() bool { return v.boo }

// Int64 returns the integer payload. Valid only for Int values.
func (v Value) Int64() int64 { return v.i }

// Float64 returns the numeric payload as a float. Valid for Int and Float.
func (v Value) Float64() float64 { return v.f }

// Raw returns the number literal as written in the source document.
// Valid only for Int and Float values.
func (v Value) Raw() string { return v.raw }

// Str returns the string payload. Valid only for String values.
func (v Value) Str() string { return v.str }

// Items returns the array elements. Nil for non-arrays.
func (v Value) Items() []Value { return v.arr }

// Members returns the object members in document order. Nil for non-objects.
func (v Value) Members() []Member { return v.obj }

// Field looks up an object member by key.
func (v Value) Field(key string) (Value, bool) {
	for _, m := range v.obj {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Len returns the element count for arrays and the member count for objects,
// 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.arr)
	case Object:
		return len(v.obj)
	default:
		return 0
	}
}

// MarshalJSON encodes the value as compact JSON, preserving object member
// order and number literals.
func (v Value) MarshalJSON() ([]byte, error) {
	return v.appendJSON(nil), nil
}

func (v Value) appendJSON(dst []byte) []byte {
	switch v.kind {
	case Null:
		return append(dst, "null"...)
	case Bool:
		if v.boo {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case Int, Float:
		return append(dst, v.raw...)
	case String:
		b, _ := json.Marshal(v.str)
		return append(dst, b...)
	case Array:
		dst = append(dst, '[')
		for i, item := range v.arr {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = item.appendJSON(dst)
		}
		return append(dst, ']')
	case Object:
		dst = append(dst, '{')
		for i, m := range v.obj {
			if i > 0 {
				dst = append(dst, ',')
			}
			b, _ := json.Marshal(m.Key)
			dst = append(dst, b...)
			dst = append(dst, ':')
			dst = m.Value.appendJSON(dst)
		}
		return append(dst, '}')
	default:
		return append(dst, "null"...)
	}
}

// String returns the compact JSON encoding of the value.
func (v Value) String() string {
	return string(v.appendJSON(nil))
}
