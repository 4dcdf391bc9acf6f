package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.True(t, cfg.InteractiveEnabled())
	assert.Contains(t, cfg.WatchExtensions, ".script")
	assert.Contains(t, cfg.TranspiledExtensions, ".ts")
	assert.Equal(t, 1500*time.Millisecond, cfg.ProbeTimeout())
	assert.Equal(t, 2*time.Second, cfg.DispatchTimeout())
	assert.Equal(t, 1500*time.Millisecond, cfg.ReloadDelay())
}

func TestLoad_ProjectConfigOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	content := `
editor-path "/opt/Defold/Defold"
no-prompt true
reload-delay-ms 500
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ProjectConfigFile), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "/opt/Defold/Defold", cfg.EditorPath)
	assert.False(t, cfg.InteractiveEnabled())
	assert.Equal(t, 500*time.Millisecond, cfg.ReloadDelay())
	// Untouched keys keep their defaults.
	assert.Contains(t, cfg.WatchExtensions, ".script")
}

func TestLoad_MissingConfigUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.True(t, cfg.InteractiveEnabled())
}

func TestFindProjectConfig_WalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "main", "scripts")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	configPath := filepath.Join(root, ProjectConfigFile)
	require.NoError(t, os.WriteFile(configPath, []byte(""), 0o644))

	found := FindProjectConfig(nested)
	assert.Equal(t, configPath, found)
}

func TestFindProjectConfig_NoneFound(t *testing.T) {
	assert.Empty(t, FindProjectConfig(t.TempDir()))
}
