// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "seqscan.yaml")
	require.NoError(t, os.WriteFile(fn, []byte(content), 0o644))
	return fn
}

func TestLoad(t *testing.T) {
	fn := writeConfig(t, `
threads: 8
chunk_size: 100000
output: jsonl
algorithm: fuzzy
rmdup:
  expected_items: 500000
  false_positive_rate: 0.01
`)
	f, err := Load(fn)
	require.NoError(t, err)
	assert.Equal(t, 8, f.Threads)
	assert.Equal(t, 100000, f.ChunkSize)
	assert.Equal(t, "jsonl", f.Output)
	assert.Equal(t, "fuzzy", f.Algorithm)
	assert.Equal(t, 500000, f.Rmdup.ExpectedItems)
	assert.InDelta(t, 0.01, f.Rmdup.FalsePositiveRate, 1e-12)
}

func TestLoadPartial(t *testing.T) {
	f, err := Load(writeConfig(t, "threads: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, f.Threads)
	assert.Zero(t, f.ChunkSize)
	assert.Empty(t, f.Output)
}

func TestLoadEmpty(t *testing.T) {
	_, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
}

func TestLoadUnknownKey(t *testing.T) {
	_, err := Load(writeConfig(t, "thread_count: 4\n"))
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
