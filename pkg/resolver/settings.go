package resolver

import (
	"sort"
	"strconv"

	"github.com/strataconf/strata/pkg/source"
	"github.com/strataconf/strata/pkg/value"
)

// Settings is the merged, read-only result of a Resolve call. Getters
// coerce leniently from strings at the access boundary only; the stored
// values keep the kinds their sources produced.
type Settings struct {
	values source.Map
}

// Len returns the number of resolved keys
func (s *Settings) Len() int {
	return len(s.values)
}

// Keys returns all resolved key paths in sorted order
func (s *Settings) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Value returns the raw typed value for a key
func (s *Settings) Value(key string) (value.Value, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Origin returns the provenance tag of the layer that supplied the key,
// or "" when the key is absent.
func (s *Settings) Origin(key string) string {
	if v, ok := s.values[key]; ok {
		return v.Origin()
	}
	return ""
}

// GetString returns the value rendered as a string. Scalar kinds render
// via their display form; lists do not coerce.
func (s *Settings) GetString(key string) (string, bool) {
	v, ok := s.values[key]
	if !ok || v.Kind() == value.KindList {
		return "", false
	}
	return v.String(), true
}

// GetBool returns a boolean value, coercing strings equal to
// "true"/"false"
func (s *Settings) GetBool(key string) (bool, bool) {
	v, ok := s.values[key]
	if !ok {
		return false, false
	}
	if b, ok := v.AsBool(); ok {
		return b, true
	}
	if str, ok := v.AsString(); ok {
		switch str {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

// GetInt64 returns an integer value, coercing decimal strings
func (s *Settings) GetInt64(key string) (int64, bool) {
	v, ok := s.values[key]
	if !ok {
		return 0, false
	}
	if i, ok := v.AsInt64(); ok {
		return i, true
	}
	if str, ok := v.AsString(); ok {
		if i, err := strconv.ParseInt(str, 10, 64); err == nil {
			return i, true
		}
	}
	return 0, false
}

// GetFloat64 returns a float value, widening integers and coercing
// numeric strings
func (s *Settings) GetFloat64(key string) (float64, bool) {
	v, ok := s.values[key]
	if !ok {
		return 0, false
	}
	if f, ok := v.AsFloat64(); ok {
		return f, true
	}
	if i, ok := v.AsInt64(); ok {
		return float64(i), true
	}
	if str, ok := v.AsString(); ok {
		if f, err := strconv.ParseFloat(str, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

// GetStringSlice returns list elements rendered as strings. A scalar
// string wraps into a single-element slice.
func (s *Settings) GetStringSlice(key string) ([]string, bool) {
	v, ok := s.values[key]
	if !ok {
		return nil, false
	}
	if elems, ok := v.AsList(); ok {
		out := make([]string, len(elems))
		for i, e := range elems {
			out[i] = e.String()
		}
		return out, true
	}
	if str, ok := v.AsString(); ok {
		return []string{str}, true
	}
	return nil, false
}

// Interface returns the settings as a nested map of plain Go values,
// with dotted key paths expanded into nested maps. Suitable for encoders
// and decoders that expect untyped data.
func (s *Settings) Interface() map[string]any {
	root := make(map[string]any)
	for k, v := range s.values {
		insertPath(root, k, v.Interface())
	}
	return root
}

// insertPath expands "a.b.c" into nested maps. A scalar already present
// at an intermediate path is replaced by a map; the more specific key
// wins.
func insertPath(root map[string]any, key string, val any) {
	cur := root
	for {
		head, rest, ok := cutPath(key)
		if !ok {
			cur[head] = val
			return
		}
		next, isMap := cur[head].(map[string]any)
		if !isMap {
			next = make(map[string]any)
			cur[head] = next
		}
		cur = next
		key = rest
	}
}

func cutPath(key string) (head, rest string, ok bool) {
	for i := 0; i < len(key); i++ {
		if key[i] == '.' {
			return key[:i], key[i+1:], true
		}
	}
	return key, "", false
}
