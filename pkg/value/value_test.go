package value

import (
	"testing"
)

// TestKindString tests the Kind display names
func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindString, "string"},
		{KindBool, "bool"},
		{KindInt64, "int64"},
		{KindFloat64, "float64"},
		{KindList, "list"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind.String() = %v, want %v", got, tt.want)
		}
	}
}

// TestAccessors tests that each accessor only matches its own kind
func TestAccessors(t *testing.T) {
	v := NewInt64("test", 42)

	if i, ok := v.AsInt64(); !ok || i != 42 {
		t.Errorf("AsInt64() = %v, %v, want 42, true", i, ok)
	}
	if _, ok := v.AsBool(); ok {
		t.Error("AsBool() should not match an int64 value")
	}
	if _, ok := v.AsString(); ok {
		t.Error("AsString() should not match an int64 value")
	}
	if _, ok := v.AsFloat64(); ok {
		t.Error("AsFloat64() should not match an int64 value")
	}
	if _, ok := v.AsList(); ok {
		t.Error("AsList() should not match an int64 value")
	}
}

// TestEqual tests value equality across kinds, payloads and origins
func TestEqual(t *testing.T) {
	list := func(origin string, elems ...string) Value {
		vs := make([]Value, len(elems))
		for i, e := range elems {
			vs[i] = NewString(origin, e)
		}
		return NewList(origin, vs)
	}

	tests := []struct {
		name string
		a    Value
		b    Value
		want bool
	}{
		{"equal bools", NewBool("e", true), NewBool("e", true), true},
		{"different bools", NewBool("e", true), NewBool("e", false), false},
		{"equal ints", NewInt64("e", 7), NewInt64("e", 7), true},
		{"different kinds", NewInt64("e", 1), NewFloat64("e", 1), false},
		{"different origins", NewString("a", "x"), NewString("b", "x"), false},
		{"equal lists", list("e", "a", "b"), list("e", "a", "b"), true},
		{"different list lengths", list("e", "a"), list("e", "a", "b"), false},
		{"different list elements", list("e", "a"), list("e", "b"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestInterface tests conversion to plain Go values
func TestInterface(t *testing.T) {
	elems := []Value{NewString("e", "a"), NewString("e", "b")}

	tests := []struct {
		name string
		v    Value
		want any
	}{
		{"bool", NewBool("e", true), true},
		{"int64", NewInt64("e", 42), int64(42)},
		{"float64", NewFloat64("e", 0.5), 0.5},
		{"string", NewString("e", "x"), "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Interface(); got != tt.want {
				t.Errorf("Interface() = %v, want %v", got, tt.want)
			}
		})
	}

	got, ok := NewList("e", elems).Interface().([]any)
	if !ok || len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Interface() on list = %v, want [a b]", got)
	}
}

// TestListCopies tests that list payloads do not alias caller slices
func TestListCopies(t *testing.T) {
	elems := []Value{NewString("e", "a")}
	v := NewList("e", elems)

	elems[0] = NewString("e", "mutated")
	out, _ := v.AsList()
	if s, _ := out[0].AsString(); s != "a" {
		t.Errorf("list element = %q, want %q", s, "a")
	}

	out[0] = NewString("e", "mutated")
	again, _ := v.AsList()
	if s, _ := again[0].AsString(); s != "a" {
		t.Error("AsList() result should be a copy")
	}
}

// TestString tests the diagnostic rendering
func TestString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{NewBool("e", true), "true"},
		{NewInt64("e", 42), "42"},
		{NewString("e", "hello"), "hello"},
		{NewList("e", []Value{NewString("e", "a"), NewInt64("e", 1)}), "[a, 1]"},
	}

	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
