// Package resolver merges configuration sources into one settings view.
//
// # Overview
//
// A Resolver holds an ordered list of sources — defaults first, then
// files, then the environment is the usual arrangement — and collects
// each once. Later layers override earlier ones per key. The result is
// an immutable Settings value with typed getters, provenance lookup,
// and struct decoding.
//
// # Usage Example
//
//	defaults := source.NewStatic("defaults", map[string]any{
//		"server.port": 8080,
//	})
//	envSrc, err := env.New("APP", nil)
//	if err != nil {
//		return err
//	}
//
//	settings, err := resolver.New(defaults, file.New("app.yaml"), envSrc).Resolve()
//	if err != nil {
//		return err
//	}
//
//	var cfg struct {
//		Server struct {
//			Port int `mapstructure:"port" validate:"min=1,max=65535"`
//		} `mapstructure:"server"`
//	}
//	if err := settings.DecodeValidated(&cfg); err != nil {
//		return err
//	}
//
// # Related Packages
//
//   - pkg/source: the Source contract and the static defaults source
//   - pkg/env: environment variable source
//   - pkg/file: YAML file source
package resolver
