package file

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/strataconf/strata/pkg/source"
	"github.com/strataconf/strata/pkg/value"
)

// Source reads configuration from a YAML file. Unlike the environment
// source, a named file that cannot be read or parsed is a hard error:
// the caller asked for that specific file, so silence would hide a
// misconfiguration.
type Source struct {
	path string
}

// New creates a file source for the given path. The file is read at
// Collect time, not at construction.
func New(path string) *Source {
	return &Source{path: path}
}

// Clone returns an independent copy of the source
func (s *Source) Clone() source.Source {
	cp := *s
	return &cp
}

// Collect reads and parses the file, flattening nested mappings into
// lower-case dotted key paths. The file path is the provenance origin.
func (s *Source) Collect() (source.Map, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &source.Error{Op: "read config file", Origin: s.path, Err: err}
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &source.Error{Op: "parse config file", Origin: s.path, Err: err}
	}

	m := make(source.Map)
	flatten("", doc, s.path, m)
	return m, nil
}

func flatten(prefix string, doc map[string]any, origin string, out source.Map) {
	for k, v := range doc {
		key := strings.ToLower(k)
		if prefix != "" {
			key = prefix + "." + key
		}
		if nested, ok := v.(map[string]any); ok {
			flatten(key, nested, origin, out)
			continue
		}
		out[key] = convertScalar(origin, v)
	}
}

// convertScalar maps a decoded YAML node to a typed value. YAML null
// becomes an empty string; there is no null kind in the value alphabet.
func convertScalar(origin string, v any) value.Value {
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
	case []any:
		elems := make([]value.Value, len(t))
		for i, e := range t {
			elems[i] = convertScalar(origin, e)
		}
		return value.NewList(origin, elems)
	case nil:
		return value.NewString(origin, "")
	default:
		return value.NewString(origin, fmt.Sprint(t))
	}
}
