package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:3000", cfg.Listen)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "concierge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen: 0.0.0.0:8080\nlog_level: debug\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8080", cfg.Listen)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "concierge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestNormalizeFillsGaps(t *testing.T) {
	cfg := &Config{LogLevel: "verbose"}
	cfg.Normalize()

	assert.Equal(t, "127.0.0.1:3000", cfg.Listen)
	assert.Equal(t, "info", cfg.LogLevel)
}
