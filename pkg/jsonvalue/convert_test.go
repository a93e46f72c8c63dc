package jsonvalue

import (
	"math/big"
	"testing"
)

func TestFromAny_SortsObjectKeys(t *testing.T) {
	v := FromAny(map[string]any{"zeta": 1, "alpha": 2, "mid": 3})

	members := v.Members()
	want := []string{"alpha", "mid", "zeta"}
	if len(members) != len(want) {
		t.Fatalf("member count = %d, want %d", len(members), len(want))
	}
	for i, m := range members {
		if m.Key != want[i] {
			t.Errorf("member[%d] = %q, want %q", i, m.Key, want[i])
		}
	}
}

func TestFromAny_NumberClassification(t *testing.T) {
	tests := []struct {
		name string
		in   any
		kind Kind
	}{
		{"whole_float", float64(30), Int},
		{"fractional_float", 3.5, Float},
		{"int", 7, Int},
		{"int64", int64(9), Int},
		{"big_int_in_range", big.NewInt(12), Int},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromAny(tt.in).Kind(); got != tt.kind {
				t.Errorf("FromAny(%v) kind = %v, want %v", tt.in, got, tt.kind)
			}
		})
	}
}

func TestFromAny_BigIntBeyondInt64(t *testing.T) {
	huge, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	if !ok {
		t.Fatal("SetString failed")
	}

	v := FromAny(huge)
	if v.Raw() != "123456789012345678901234567890" {
		t.Errorf("Raw() = %q, want full literal", v.Raw())
	}
}

func TestToAny_Scalars(t *testing.T) {
	if got := NewNull().ToAny(); got != nil {
		t.Errorf("null ToAny = %v, want nil", got)
	}
	if got := NewBool(true).ToAny(); got != true {
		t.Errorf("bool ToAny = %v, want true", got)
	}
	if got := NewInt(5).ToAny(); got != 5 {
		t.Errorf("int ToAny = %v (%T), want int 5", got, got)
	}
	if got := NewFloat(2.5).ToAny(); got != 2.5 {
		t.Errorf("float ToAny = %v, want 2.5", got)
	}
	if got := NewString("x").ToAny(); got != "x" {
		t.Errorf("string ToAny = %v, want x", got)
	}
}

func TestToAny_Containers(t *testing.T) {
	v := NewObject(
		Member{Key: "items", Value: NewArray(NewInt(1), NewString("two"))},
	)

	obj, ok := v.ToAny().(map[string]any)
	if !ok {
		t.Fatalf("ToAny() = %T, want map", v.ToAny())
	}
	items, ok := obj["items"].([]any)
	if !ok || len(items) != 2 {
		t.Fatalf("items = %v, want 2-element slice", obj["items"])
	}
	if items[0] != 1 || items[1] != "two" {
		t.Errorf("items = %v, want [1 two]", items)
	}
}

func TestRoundTripThroughAny(t *testing.T) {
	src := `{"a":{"b":[1,2.5,"x",null,true]},"c":"done"}`
	v, err := Decode([]byte(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	back := FromAny(v.ToAny())
	if back.String() != src {
		t.Errorf("round trip = %s, want %s", back.String(), src)
	}
}
