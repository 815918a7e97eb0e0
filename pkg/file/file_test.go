package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strataconf/strata/pkg/source"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCollect_FlattensNestedKeys(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8080
  host: localhost
debug: true
ratio: 0.5
tags:
  - a
  - b
empty:
`)

	m, err := New(path).Collect()
	require.NoError(t, err)

	port, ok := m["server.port"].AsInt64()
	require.True(t, ok, "server.port should be int64, got %s", m["server.port"].Kind())
	assert.Equal(t, int64(8080), port)

	host, ok := m["server.host"].AsString()
	require.True(t, ok)
	assert.Equal(t, "localhost", host)

	debug, ok := m["debug"].AsBool()
	require.True(t, ok)
	assert.True(t, debug)

	ratio, ok := m["ratio"].AsFloat64()
	require.True(t, ok)
	assert.Equal(t, 0.5, ratio)

	tags, ok := m["tags"].AsList()
	require.True(t, ok)
	require.Len(t, tags, 2)

	// YAML null degrades to the empty string
	empty, ok := m["empty"].AsString()
	require.True(t, ok)
	assert.Equal(t, "", empty)
}

func TestCollect_LowercasesKeys(t *testing.T) {
	path := writeConfig(t, "Server:\n  PORT: 1\n")

	m, err := New(path).Collect()
	require.NoError(t, err)

	_, ok := m["server.port"]
	assert.True(t, ok, "got keys %v", m)
}

func TestCollect_OriginIsPath(t *testing.T) {
	path := writeConfig(t, "k: v\n")

	m, err := New(path).Collect()
	require.NoError(t, err)
	assert.Equal(t, path, m["k"].Origin())
}

func TestCollect_MissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "absent.yaml")).Collect()
	require.Error(t, err)

	var srcErr *source.Error
	require.ErrorAs(t, err, &srcErr)
	assert.Equal(t, "read config file", srcErr.Op)
}

func TestCollect_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "k: [unterminated\n")

	_, err := New(path).Collect()
	require.Error(t, err)

	var srcErr *source.Error
	require.ErrorAs(t, err, &srcErr)
	assert.Equal(t, "parse config file", srcErr.Op)
}

func TestClone(t *testing.T) {
	path := writeConfig(t, "k: v\n")
	s := New(path)

	m, err := s.Clone().Collect()
	require.NoError(t, err)
	got, ok := m["k"].AsString()
	require.True(t, ok)
	assert.Equal(t, "v", got)
}
