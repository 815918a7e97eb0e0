package source

import (
	"fmt"

	"github.com/strataconf/strata/pkg/value"
)

// Map is the string-keyed mapping of typed values a source contributes.
// Keys are normalized, lower-case, dot-delimited configuration paths.
type Map map[string]value.Value

// Clone returns a shallow copy of the map. Values are immutable so
// copying the entries is sufficient.
func (m Map) Clone() Map {
	cp := make(Map, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}

// Source is a named provider of configuration values. Implementations
// must be safe to Collect repeatedly: Collect is read-only and returns a
// fresh map each call.
type Source interface {
	// Clone returns an independent copy of the source.
	Clone() Source

	// Collect produces the source's contribution as a key-path to typed
	// value mapping. Implementations that cannot fail still keep the
	// error return so the resolver contract stays uniform.
	Collect() (Map, error)
}

// Error is the typed error sources report through Collect. Op names the
// failing operation, Origin identifies the source, and Err holds the
// underlying cause.
type Error struct {
	Op     string
	Origin string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Op, e.Origin, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
