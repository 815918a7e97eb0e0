// Package file provides a YAML file configuration source.
//
// Nested mappings flatten into lower-case dotted key paths, so
//
//	server:
//	  port: 8080
//
// contributes "server.port" -> int64(8080), mergeable with the same key
// coming from the environment source. Scalars keep their YAML types
// (bool, integer, float, string); sequences become lists; null becomes
// the empty string. The file path serves as the provenance origin.
package file
