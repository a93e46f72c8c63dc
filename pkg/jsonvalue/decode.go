package jsonvalue

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

// Decode parses a single JSON document into a Value. Object member order and
// number literals are preserved exactly as written. Trailing non-whitespace
// after the top-level value is an error.
func Decode(data []byte) (Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Value{}, errors.New("empty input")
	}

	iter := jsoniter.ParseBytes(jsoniter.ConfigDefault, data)
	v := decodeValue(iter)
	if iter.Error != nil && iter.Error != io.EOF {
		return Value{}, syntaxDetail(data, iter.Error)
	}
	if t := iter.WhatIsNext(); t != jsoniter.InvalidValue || iter.Error != io.EOF {
		return Value{}, errors.New("trailing data after top-level value")
	}
	return v, nil
}

func decodeValue(iter *jsoniter.Iterator) Value {
	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		iter.ReadNil()
		return NewNull()
	case jsoniter.BoolValue:
		return NewBool(iter.ReadBool())
	case jsoniter.NumberValue:
		return NewNumber(string(iter.ReadNumber()))
	case jsoniter.StringValue:
		return NewString(iter.ReadString())
	case jsoniter.ArrayValue:
		var items []Value
		iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			items = append(items, decodeValue(it))
			return true
		})
		return NewArray(items...)
	case jsoniter.ObjectValue:
		var members []Member
		iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
			members = append(members, Member{Key: key, Value: decodeValue(it)})
			return true
		})
		return NewObject(members...)
	default:
		iter.ReportError("decodeValue", "invalid JSON value")
		return Value{}
	}
}

// syntaxDetail re-parses the input with encoding/json to recover the byte
// offset and line of the first syntax error, which jsoniter does not expose.
func syntaxDetail(data []byte, fallback error) error {
	var probe any
	err := json.Unmarshal(data, &probe)
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		line := 1 + bytes.Count(data[:syn.Offset], []byte{'\n'})
		return fmt.Errorf("invalid JSON at line %d (offset %d): %s", line, syn.Offset, syn.Error())
	}
	return fmt.Errorf("invalid JSON: %w", fallback)
}
