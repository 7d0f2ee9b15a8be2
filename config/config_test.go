package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	Reset()
	defer Reset()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "ts-pilot", cfg.Server.Name)
	assert.Equal(t, "Generated", cfg.Generate.DefaultName)
	assert.True(t, cfg.Generate.Strict)
	assert.False(t, cfg.Generate.Readonly)
	assert.Equal(t, 0, cfg.Log.Verbosity)
}

func TestLoadCached(t *testing.T) {
	Reset()
	defer Reset()

	first, err := Load()
	require.NoError(t, err)
	second, err := Load()
	require.NoError(t, err)

	assert.Same(t, first, second, "Load should return the cached config")
}

func TestEnvOverride(t *testing.T) {
	Reset()
	defer Reset()

	t.Setenv("TSPILOT_GENERATE_DEFAULT_NAME", "FromEnv")
	t.Setenv("TSPILOT_LOG_VERBOSITY", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "FromEnv", cfg.Generate.DefaultName)
	assert.Equal(t, 2, cfg.Log.Verbosity)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ts-pilot.toml")

	content := `
[server]
name = "custom-server"

[generate]
default_name = "Root"
strict = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "custom-server", cfg.Server.Name)
	assert.Equal(t, "Root", cfg.Generate.DefaultName)
	assert.False(t, cfg.Generate.Strict)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
