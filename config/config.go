// Package config loads runtime settings from an optional file and the environment.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	BackendTcell = "tcell"
	BackendANSI  = "ansi"
)

type Config struct {
	Backend     string            `toml:"backend" yaml:"backend" json:"backend" env:"VI_CHECKERS_BACKEND" env-description:"Terminal backend: tcell or ansi (default tcell)"`
	Sound       bool              `toml:"sound" yaml:"sound" json:"sound" env:"VI_CHECKERS_SOUND" env-default:"false"`
	Volume      int               `toml:"volume" yaml:"volume" json:"volume" env:"VI_CHECKERS_VOLUME" env-description:"Sound volume 0-100 (default 60)"`
	StrictMoves bool              `toml:"strict_moves" yaml:"strict_moves" json:"strict_moves" env:"VI_CHECKERS_STRICT_MOVES" env-default:"false"`
	Debug       bool              `toml:"debug" yaml:"debug" json:"debug" env:"VI_CHECKERS_DEBUG" env-default:"false"`
	Keys        map[string]string `toml:"keys" yaml:"keys" json:"keys"`
}

const (
	DefaultBackend = BackendTcell
	DefaultVolume  = 60
)

// Default returns the settings used when neither file nor environment sets a field
func Default() *Config {
	return &Config{
		Backend: DefaultBackend,
		Volume:  DefaultVolume,
	}
}

// Load reads path (format by extension) then applies the environment.
// An empty path reads the environment only. Fields neither source sets keep
// their Default value, so an explicit zero in the file is preserved.
// The result is not validated; callers apply their overrides then Validate.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Backend {
	case BackendTcell, BackendANSI:
	default:
		return fmt.Errorf("config: unknown backend %q (want %q or %q)", c.Backend, BackendTcell, BackendANSI)
	}
	if c.Volume < 0 || c.Volume > 100 {
		return fmt.Errorf("config: volume %d outside 0-100", c.Volume)
	}
	return nil
}

// VolumeLevel returns the volume scaled to [0, 1]
func (c *Config) VolumeLevel() float64 {
	return float64(c.Volume) / 100
}

// Usage describes the environment variables
func Usage() string {
	desc, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return desc
}
