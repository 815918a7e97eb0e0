package resolver

import (
	"log/slog"

	"github.com/strataconf/strata/pkg/source"
)

// Resolver layers configuration sources. Sources are collected in the
// order they were added; later layers override earlier ones per key.
type Resolver struct {
	sources []source.Source
	logger  *slog.Logger
}

// New creates a resolver over the given sources, bottom layer first
func New(sources ...source.Source) *Resolver {
	return &Resolver{sources: sources}
}

// Append adds a source as the new top layer
func (r *Resolver) Append(s source.Source) *Resolver {
	r.sources = append(r.sources, s)
	return r
}

// WithLogger sets a logger for per-layer collection diagnostics.
// Without one the resolver is silent.
func (r *Resolver) WithLogger(logger *slog.Logger) *Resolver {
	r.logger = logger
	return r
}

// Resolve collects every source once and merges the results. The first
// source error aborts resolution.
func (r *Resolver) Resolve() (*Settings, error) {
	merged := make(source.Map)
	for i, src := range r.sources {
		m, err := src.Collect()
		if err != nil {
			return nil, err
		}
		if r.logger != nil {
			r.logger.Debug("collected configuration layer",
				"layer", i, "entries", len(m))
		}
		for k, v := range m {
			merged[k] = v
		}
	}
	return &Settings{values: merged}, nil
}
