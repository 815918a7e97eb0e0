package value

import (
	"fmt"
	"strings"
)

// Kind identifies the type of a configuration value
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindInt64
	KindFloat64
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt64:
		return "int64"
	case KindFloat64:
		return "float64"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Value is a typed configuration value tagged with the origin it was
// collected from. Values are immutable after construction.
type Value struct {
	kind   Kind
	origin string

	b    bool
	i    int64
	f    float64
	s    string
	list []Value
}

// NewString creates a string Value
func NewString(origin, v string) Value {
	return Value{kind: KindString, origin: origin, s: v}
}

// NewBool creates a boolean Value
func NewBool(origin string, v bool) Value {
	return Value{kind: KindBool, origin: origin, b: v}
}

// NewInt64 creates an integer Value
func NewInt64(origin string, v int64) Value {
	return Value{kind: KindInt64, origin: origin, i: v}
}

// NewFloat64 creates a float Value
func NewFloat64(origin string, v float64) Value {
	return Value{kind: KindFloat64, origin: origin, f: v}
}

// NewList creates a list Value from the given elements. The slice is
// copied so later mutation by the caller cannot reach the Value.
func NewList(origin string, elems []Value) Value {
	cp := make([]Value, len(elems))
	copy(cp, elems)
	return Value{kind: KindList, origin: origin, list: cp}
}

// Kind returns the kind tag of the value
func (v Value) Kind() Kind {
	return v.kind
}

// Origin returns the provenance tag identifying where the value came from
func (v Value) Origin() string {
	return v.origin
}

// AsString returns the string payload. The second return is false when
// the value is not a string.
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

// AsBool returns the boolean payload
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsInt64 returns the integer payload
func (v Value) AsInt64() (int64, bool) {
	return v.i, v.kind == KindInt64
}

// AsFloat64 returns the float payload
func (v Value) AsFloat64() (float64, bool) {
	return v.f, v.kind == KindFloat64
}

// AsList returns a copy of the list payload
func (v Value) AsList() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}
	cp := make([]Value, len(v.list))
	copy(cp, v.list)
	return cp, true
}

// Interface returns the payload as a plain Go value (bool, int64,
// float64, string, or []any for lists). Useful when handing values to
// encoders or decoders that expect untyped data.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt64:
		return v.i
	case KindFloat64:
		return v.f
	case KindList:
		out := make([]any, len(v.list))
		for i, e := range v.list {
			out[i] = e.Interface()
		}
		return out
	default:
		return v.s
	}
}

// Equal reports whether two values have the same kind, origin and payload
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind || v.origin != o.origin {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == o.b
	case KindInt64:
		return v.i == o.i
	case KindFloat64:
		return v.f == o.f
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	default:
		return v.s == o.s
	}
}

// String renders the payload for diagnostics and log output
func (v Value) String() string {
	switch v.kind {
	case KindList:
		parts := make([]string, len(v.list))
		for i, e := range v.list {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}
