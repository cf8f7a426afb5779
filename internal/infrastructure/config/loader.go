package config

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultFile is the configuration file name looked up by the loader
const DefaultFile = "pong.toml"

// Loader loads game configuration from TOML files using fs.FS interface
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

// Load reads name on top of the defaults. Keys missing from the file keep
// their default values.
func (l *Loader) Load(name string) (*Config, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read config %s/%s: %w", l.basePath, name, err)
	}

	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s/%s: %w", l.basePath, name, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s/%s: %w", l.basePath, name, err)
	}

	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Display.Scale < 1 {
		return fmt.Errorf("display.scale must be >= 1, got %d", c.Display.Scale)
	}
	if c.Assets.Dir == "" {
		return fmt.Errorf("assets.dir must not be empty")
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be within [0, 1], got %g", c.Audio.Volume)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
