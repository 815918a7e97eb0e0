package source

import (
	"fmt"

	"github.com/strataconf/strata/pkg/value"
)

// DefaultStaticOrigin is the provenance tag used by Static sources when
// the caller does not supply one.
const DefaultStaticOrigin = "defaults"

// Static is an in-memory source, typically used as the bottom layer of a
// resolver to supply application defaults. The input map is converted to
// typed values once at construction time.
type Static struct {
	origin string
	values Map
}

// NewStatic builds a Static source from plain Go values. Supported value
// types are bool, int, int64, float64, string, and []string; anything
// else is stored via its fmt.Sprint rendering.
func NewStatic(origin string, values map[string]any) *Static {
	if origin == "" {
		origin = DefaultStaticOrigin
	}
	m := make(Map, len(values))
	for k, v := range values {
		m[k] = convert(origin, v)
	}
	return &Static{origin: origin, values: m}
}

func convert(origin string, v any) value.Value {
	switch t := v.(type) {
	case bool:
		return value.NewBool(origin, t)
	case int:
		return value.NewInt64(origin, int64(t))
	case int64:
		return value.NewInt64(origin, t)
	case float64:
		return value.NewFloat64(origin, t)
	case string:
		return value.NewString(origin, t)
	case []string:
		elems := make([]value.Value, len(t))
		for i, s := range t {
			elems[i] = value.NewString(origin, s)
		}
		return value.NewList(origin, elems)
	default:
		return value.NewString(origin, fmt.Sprint(t))
	}
}

// Clone returns an independent copy of the source
func (s *Static) Clone() Source {
	return &Static{origin: s.origin, values: s.values.Clone()}
}

// Collect returns the stored values. It never fails.
func (s *Static) Collect() (Map, error) {
	return s.values.Clone(), nil
}
