package jsonvalue

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"sort"
)

// maxExactFloatInt bounds the float64 range inside which every integer is
// exactly representable, so conversion to int64 cannot drift.
const maxExactFloatInt = 1 << 53

// FromAny converts a generic decoded value (map[string]any, []any, scalars)
// into a Value. Object keys are sorted so the result is deterministic; use
// Decode when source order matters.
func FromAny(v any) Value {
	switch val := v.(type) {
	case nil:
		return NewNull()
	case bool:
		return NewBool(val)
	case int:
		return NewInt(int64(val))
	case int64:
		return NewInt(val)
	case *big.Int:
		if val.IsInt64() {
			return NewInt(val.Int64())
		}
		return NewNumber(val.String())
	case float64:
		// Whole numbers come back from generic decoding as float64.
		if math.Trunc(val) == val && !math.IsInf(val, 0) && !math.IsNaN(val) && math.Abs(val) < maxExactFloatInt {
			return NewInt(int64(val))
		}
		return NewFloat(val)
	case float32:
		return FromAny(float64(val))
	case json.Number:
		return NewNumber(string(val))
	case string:
		return NewString(val)
	case []any:
		items := make([]Value, 0, len(val))
		for _, item := range val {
			items = append(items, FromAny(item))
		}
		return NewArray(items...)
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		members := make([]Member, 0, len(keys))
		for _, k := range keys {
			members = append(members, Member{Key: k, Value: FromAny(val[k])})
		}
		return NewObject(members...)
	default:
		return NewString(fmt.Sprint(val))
	}
}

// ToAny converts the value into the generic representation expected by
// query engines: nil, bool, int, *big.Int, float64, string, []any,
// map[string]any. Object member order is lost.
func (v Value) ToAny() any {
	switch v.kind {
	case Null:
		return nil
	case Bool:
		return v.boo
	case Int:
		if int64(int(v.i)) == v.i {
			return int(v.i)
		}
		return big.NewInt(v.i)
	case Float:
		return v.f
	case String:
		return v.str
	case Array:
		items := make([]any, 0, len(v.arr))
		for _, item := range v.arr {
			items = append(items, item.ToAny())
		}
		return items
	case Object:
		obj := make(map[string]any, len(v.obj))
		for _, m := range v.obj {
			obj[m.Key] = m.Value.ToAny()
		}
		return obj
	default:
		return nil
	}
}
