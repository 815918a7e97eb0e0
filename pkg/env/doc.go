// Package env provides a safe, snapshot-once environment variable source.
//
// # Overview
//
// The source captures the entire process environment in a single atomic
// read at construction time and never re-reads it. That one-pass capture
// is what eliminates races with concurrent environment mutation: nothing
// added or removed mid-iteration can produce a torn view. The snapshot is
// immutable afterwards and safe to share across goroutines without
// synchronization.
//
// Environment variables are an uncontrolled, shared namespace, so the
// filter never fails on foreign input. Entries with non-UTF-8 keys or
// values, entries missing the "<PREFIX>_" name prefix, and entries whose
// suffix is rejected by the caller's predicate are all dropped silently.
//
// # Key and Value Processing
//
// Collect lower-cases each surviving key, strips the prefix and prefix
// separator, and rewrites the key separator (default "__") to dots:
//
//	APP_SERVER__PORT=8080   ->  server.port
//
// Values are inferred in strict priority order: boolean ("true"/"false",
// case-insensitive), int64, float64, opt-in list, string. Inference never
// fails; unmatched values stay strings.
//
//	APP_DEBUG=true          ->  bool(true)
//	APP_SERVER__PORT=8080   ->  int64(8080)
//	APP_RATIO=0.5           ->  float64(0.5)
//	APP_TAGS=a,b,c          ->  [a, b, c]   (only with WithListParseKey("tags"))
//
// # Snapshot-Once Contract
//
// Repeated Collect calls observe the construction-time snapshot, never a
// fresh read. Callers wanting current values must build a new Source.
// This is deliberate: it keeps Collect deterministic and idempotent.
//
// # Usage Example
//
//	src, err := env.New("APP", nil)
//	if err != nil {
//		return err
//	}
//	src.WithListParseKey("tags")
//	settings, err := src.Collect()
//
// # Related Packages
//
//   - pkg/source: the Source contract this package implements
//   - pkg/resolver: layers this source over defaults and files
package env
