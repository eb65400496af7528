// Package config loads the application configuration from YAML files.
package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the application config file
const FileName = "app.yaml"

// Loader loads configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// FS returns the filesystem the loader reads from, for resolving asset paths
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// Load loads app.yaml on top of Defaults.
// Fields missing from the file keep their default value.
func (l *Loader) Load() (*AppConfig, error) {
	data, err := fs.ReadFile(l.fsys, FileName)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/%s: %w", l.basePath, FileName, err)
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s/%s: %w", l.basePath, FileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s/%s: %w", l.basePath, FileName, err)
	}

	return cfg, nil
}

// Validate checks the values the window cannot work without
func (c *AppConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}
