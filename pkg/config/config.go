// Package config loads the editor's TOML settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/chazu/penstock/pkg/connector"
	"github.com/chazu/penstock/pkg/network"
)

// Config holds penstock settings.
type Config struct {
	Log    LogConfig    `toml:"log"`
	Window WindowConfig `toml:"window"`
	Render RenderConfig `toml:"render"`
}

// LogConfig controls the application logger.
type LogConfig struct {
	Level  string `toml:"level"`  // "debug", "info", "warn", "error"
	Format string `toml:"format"` // "text", "json"
}

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// RenderConfig controls connector drawing.
type RenderConfig struct {
	Curvature     float64 `toml:"curvature"`
	DefaultStroke string  `toml:"default_stroke"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "info", Format: "text"},
		Window: WindowConfig{Title: "Penstock", Width: 1280, Height: 800},
		Render: RenderConfig{Curvature: connector.DefaultCurvature, DefaultStroke: network.DefaultColor},
	}
}

// Dir returns the penstock config directory.
func Dir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "penstock")
}

// Path returns the default config file path.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file at path over the defaults. A missing file is
// not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating the parent directory.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return nil
}

// EnsureExists writes the default settings to path unless a file is already
// there, so users have a file to edit.
func EnsureExists(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: stat %s: %w", path, err)
	}
	return Save(path, Default())
}

// Renderer builds a connector renderer from the render settings.
func (c *Config) Renderer() *connector.Renderer {
	r := connector.NewRenderer()
	if c.Render.Curvature > 0 {
		r.Curvature = c.Render.Curvature
	}
	if c.Render.DefaultStroke != "" {
		r.DefaultStroke = c.Render.DefaultStroke
	}
	return r
}
