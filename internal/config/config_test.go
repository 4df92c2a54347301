// ABOUTME: Tests for configuration loading.
// ABOUTME: Covers defaults, file overlay, and validation.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 0.3, cfg.Similarity.Threshold)
	assert.Equal(t, 5, cfg.Similarity.TopK)
	assert.Equal(t, 10, cfg.Export.TopMachines)
	assert.NotEmpty(t, cfg.DatabasePath)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
database_path: /tmp/custom.db
similarity:
  threshold: 0.5
  top_k: 3
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.db", cfg.DatabasePath)
	assert.Equal(t, 0.5, cfg.Similarity.Threshold)
	assert.Equal(t, 3, cfg.Similarity.TopK)
	// Untouched section keeps its default.
	assert.Equal(t, 10, cfg.Export.TopMachines)
}

func TestLoadRejectsBadThreshold(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("similarity:\n  threshold: 1.5\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsBadTopK(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("similarity:\n  top_k: 0\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("similarity: ["), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
