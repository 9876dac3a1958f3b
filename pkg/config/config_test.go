package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/penstock/pkg/connector"
	"github.com/chazu/penstock/pkg/network"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[log]
level = "debug"

[render]
curvature = 0.4
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 0.4, cfg.Render.Curvature)
	assert.Equal(t, network.DefaultColor, cfg.Render.DefaultStroke)
	assert.Equal(t, 1280, cfg.Window.Width)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log\nlevel="), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: parse")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.Window.Title = "Plant A"
	cfg.Log.Format = "json"

	require.NoError(t, Save(path, cfg))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDirHonoursXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "penstock"), Dir())
	assert.Equal(t, filepath.Join("/tmp/xdg", "penstock", "config.toml"), Path())
}

func TestRenderer(t *testing.T) {
	cfg := Default()
	r := cfg.Renderer()
	assert.Equal(t, connector.DefaultCurvature, r.Curvature)

	cfg.Render.DefaultStroke = "#000000"
	cfg.Render.Curvature = 0
	r = cfg.Renderer()
	assert.Equal(t, "#000000", r.DefaultStroke)
	assert.Equal(t, connector.DefaultCurvature, r.Curvature)
}

func TestEnsureExistsWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "penstock", "config.toml")

	require.NoError(t, EnsureExists(path))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestEnsureExistsKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := []byte("[window]\ntitle = \"Mine\"\n")
	require.NoError(t, os.WriteFile(path, body, 0o644))

	require.NoError(t, EnsureExists(path))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, body, got)
}
