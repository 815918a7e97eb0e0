// Package source defines the contract configuration sources implement.
//
// # Overview
//
// A Source is a narrow two-operation capability: it can duplicate itself
// (Clone) and produce its contribution as a string-keyed mapping of typed
// values (Collect). The resolver layers any number of sources without
// knowing what backs them — the environment, a file, or an in-memory map.
//
// Collect keeps a fallible signature even for sources that cannot fail
// today, so new source kinds with real failure modes slot in without a
// contract change. Failures surface as *source.Error.
//
// # Usage Example
//
// Supply application defaults as the bottom layer:
//
//	defaults := source.NewStatic("defaults", map[string]any{
//		"server.port": 8080,
//		"debug":       false,
//	})
//
// # Related Packages
//
//   - pkg/env: environment variable source
//   - pkg/file: YAML file source
//   - pkg/resolver: merges sources in layer order
package source
