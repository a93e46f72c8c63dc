package jsonvalue

import "testing"

func TestZeroValueIsNull(t *testing.T) {
	var v Value
	if !v.IsNull() || v.Kind() != Null {
		t.Errorf("zero Value kind = %v, want Null", v.Kind())
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Null, "null"},
		{Bool, "boolean"},
		{Int, "integer"},
		{Float, "number"},
		{String, "string"},
		{Array, "array"},
		{Object, "object"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestNewNumberClassification(t *testing.T) {
	tests := []struct {
		raw  string
		kind Kind
	}{
		{"0", Int},
		{"42", Int},
		{"-1", Int},
		{"1.0", Float},
		{"3.14", Float},
		{"1e3", Float},
		{"123456789012345678901234567890", Float},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v := NewNumber(tt.raw)
			if v.Kind() != tt.kind {
				t.Errorf("NewNumber(%q) kind = %v, want %v", tt.raw, v.Kind(), tt.kind)
			}
			if v.Raw() != tt.raw {
				t.Errorf("NewNumber(%q) raw = %q", tt.raw, v.Raw())
			}
		})
	}
}

func TestMarshalPreservesOrder(t *testing.T) {
	v := NewObject(
		Member{Key: "z", Value: NewInt(1)},
		Member{Key: "a", Value: NewString("two")},
		Member{Key: "m", Value: NewArray(NewBool(true), NewNull())},
	)

	got := v.String()
	want := `{"z":1,"a":"two","m":[true,null]}`
	if got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
}

func TestMarshalEscapesKeysAndStrings(t *testing.T) {
	v := NewObject(
		Member{Key: `qu"ote`, Value: NewString("line\nbreak")},
	)

	got := v.String()
	want := `{"qu\"ote":"line\nbreak"}`
	if got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
}

func TestFieldLookup(t *testing.T) {
	v := NewObject(
		Member{Key: "a", Value: NewInt(1)},
		Member{Key: "b", Value: NewInt(2)},
	)

	b, ok := v.Field("b")
	if !ok || b.Int64() != 2 {
		t.Errorf("Field(b) = %v %v, want 2 true", b, ok)
	}
	if _, ok := v.Field("missing"); ok {
		t.Error("Field(missing) should not be found")
	}
}

func TestLen(t *testing.T) {
	if got := NewArray(NewInt(1), NewInt(2)).Len(); got != 2 {
		t.Errorf("array Len() = %d, want 2", got)
	}
	if got := NewObject(Member{Key: "a", Value: NewNull()}).Len(); got != 1 {
		t.Errorf("object Len() = %d, want 1", got)
	}
	if got := NewString("abc").Len(); got != 0 {
		t.Errorf("scalar Len() = %d, want 0", got)
	}
}

func TestIsScalar(t *testing.T) {
	scalars := []Value{NewNull(), NewBool(true), NewInt(1), NewFloat(0.5), NewString("s")}
	for _, v := range scalars {
		if !v.IsScalar() {
			t.Errorf("%v should be scalar", v.Kind())
		}
	}
	if NewArray().IsScalar() || NewObject().IsScalar() {
		t.Error("containers should not be scalar")
	}
}
