// Package value defines the typed values that configuration sources produce.
//
// # Overview
//
// Every setting collected by a source is represented as a Value: a tagged
// union of kind (bool, int64, float64, string, or list-of-values) plus a
// provenance origin string identifying where the value came from (for
// example "the environment" or a file path). The origin is carried for
// diagnostics only; it does not participate in merging decisions.
//
// # Usage Example
//
// Construct and inspect a value:
//
//	v := value.NewInt64("defaults", 8080)
//	if port, ok := v.AsInt64(); ok {
//		fmt.Printf("port %d (from %s)\n", port, v.Origin())
//	}
//
// # Related Packages
//
//   - pkg/source: the Source interface producing maps of Values
//   - pkg/resolver: layers sources and exposes typed getters over Values
package value
