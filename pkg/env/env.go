package env

import (
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/strataconf/strata/pkg/source"
	"github.com/strataconf/strata/pkg/value"
)

// Origin is the provenance tag attached to every value this source
// produces.
const Origin = "the environment"

const (
	defaultKeySeparator    = "__"
	defaultPrefixSeparator = "_"
	defaultListSeparator   = ","
)

// AcceptFunc decides whether an environment variable survives the
// snapshot filter. It receives the key suffix after the "<PREFIX>_"
// prefix has been stripped.
type AcceptFunc func(suffix string) bool

// Source reads configuration from process environment variables.
//
// The environment is captured exactly once, at construction time, as a
// single atomic snapshot. Collect operates on that snapshot only:
// variables set or unset after construction are never observed, and
// repeated Collect calls return the same logical view. Callers that need
// a fresh read construct a new Source.
//
// Entries whose key or value is not valid UTF-8 are dropped during the
// snapshot, silently. Shared process environments routinely carry foreign
// non-UTF-8 noise, and failing on it would keep the host from starting.
type Source struct {
	prefix          string
	keySeparator    string
	prefixSeparator string
	tryParsing      bool
	listSeparator   string
	listParseKeys   map[string]struct{}

	// filtered original-case key/value pairs from the snapshot
	snapshot map[string]string
}

// New captures a snapshot of the process environment filtered to
// variables named "<prefix>_<suffix>" whose suffix passes accept. A nil
// accept keeps every suffix.
//
// The error return is reserved for the source contract; the current
// implementation has no failing paths.
func New(prefix string, accept AcceptFunc) (*Source, error) {
	return NewFromEnviron(prefix, accept, os.Environ())
}

// NewFromEnviron is New with an explicit environment in os.Environ
// format ("KEY=value"). It exists so tests can feed arbitrary byte
// strings, including invalid UTF-8, without mutating the real process
// environment.
func NewFromEnviron(prefix string, accept AcceptFunc, environ []string) (*Source, error) {
	s := &Source{
		prefix:          prefix,
		keySeparator:    defaultKeySeparator,
		prefixSeparator: defaultPrefixSeparator,
		tryParsing:      true,
		listSeparator:   defaultListSeparator,
		snapshot:        snapshotEnviron(prefix, accept, environ),
	}
	return s, nil
}

// snapshotEnviron filters one pass over the captured environment.
// Anything that is not valid UTF-8, lacks the prefix, or fails the
// predicate is dropped without error.
func snapshotEnviron(prefix string, accept AcceptFunc, environ []string) map[string]string {
	want := prefix + "_"
	snap := make(map[string]string)
	for _, entry := range environ {
		key, val, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if !utf8.ValidString(key) {
			continue
		}
		suffix, ok := strings.CutPrefix(key, want)
		if !ok {
			continue
		}
		if accept != nil && !accept(suffix) {
			continue
		}
		if !utf8.ValidString(val) {
			continue
		}
		snap[key] = val
	}
	return snap
}

// WithKeySeparator sets the substring rewritten to "." in processed keys
// (default "__"). Empty disables the rewrite.
func (s *Source) WithKeySeparator(sep string) *Source {
	s.keySeparator = sep
	return s
}

// WithPrefixSeparator sets the separator stripped together with the
// prefix from processed keys (default "_")
func (s *Source) WithPrefixSeparator(sep string) *Source {
	s.prefixSeparator = sep
	return s
}

// WithTryParsing enables or disables typed value inference (default
// enabled). When disabled every value is kept as a string.
func (s *Source) WithTryParsing(enabled bool) *Source {
	s.tryParsing = enabled
	return s
}

// WithListSeparator sets the separator used to split list values
// (default ","). Empty disables list parsing entirely.
func (s *Source) WithListSeparator(sep string) *Source {
	s.listSeparator = sep
	return s
}

// WithListParseKey registers a processed key (lower-case, dot-delimited,
// prefix stripped) whose value should be split into a list. Keys not
// registered keep separator characters verbatim in a single string.
func (s *Source) WithListParseKey(key string) *Source {
	if s.listParseKeys == nil {
		s.listParseKeys = make(map[string]struct{})
	}
	s.listParseKeys[key] = struct{}{}
	return s
}

// Clone returns an independent copy of the source
func (s *Source) Clone() source.Source {
	cp := *s
	cp.snapshot = make(map[string]string, len(s.snapshot))
	for k, v := range s.snapshot {
		cp.snapshot[k] = v
	}
	if s.listParseKeys != nil {
		cp.listParseKeys = make(map[string]struct{}, len(s.listParseKeys))
		for k := range s.listParseKeys {
			cp.listParseKeys[k] = struct{}{}
		}
	}
	return &cp
}

// Collect transforms the snapshot into the final key-path to typed value
// mapping. It is pure: the snapshot and settings are not mutated, and
// repeated calls yield equal maps.
func (s *Source) Collect() (source.Map, error) {
	m := make(source.Map, len(s.snapshot))
	prefixPattern := strings.ToLower(s.prefix) + s.prefixSeparator

	for rawKey, rawValue := range s.snapshot {
		key := strings.TrimPrefix(strings.ToLower(rawKey), prefixPattern)
		if s.keySeparator != "" {
			key = strings.ReplaceAll(key, s.keySeparator, ".")
		}
		m[key] = s.parseValue(key, rawValue)
	}
	return m, nil
}

// parseValue infers the typed value for raw. Inference runs in strict
// priority order: bool, int64, float64, list (opt-in per key), string.
// Integers are tried before floats so whole numbers are never widened,
// and bool matching is restricted to the literals "true"/"false" so that
// "1" stays an integer. A value matching no stricter rule degrades to a
// string; inference never fails.
func (s *Source) parseValue(key, raw string) value.Value {
	if !s.tryParsing {
		return value.NewString(Origin, raw)
	}

	switch strings.ToLower(raw) {
	case "true":
		return value.NewBool(Origin, true)
	case "false":
		return value.NewBool(Origin, false)
	}

	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return value.NewInt64(Origin, i)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return value.NewFloat64(Origin, f)
	}

	if s.listSeparator != "" && s.listParseKeys != nil {
		if _, ok := s.listParseKeys[key]; ok {
			parts := strings.Split(raw, s.listSeparator)
			elems := make([]value.Value, len(parts))
			for i, p := range parts {
				elems[i] = value.NewString(Origin, p)
			}
			return value.NewList(Origin, elems)
		}
	}

	return value.NewString(Origin, raw)
}
