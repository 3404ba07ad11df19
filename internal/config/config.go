// Package config loads the daemon configuration from a YAML file with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the daemon's runtime settings.
type Config struct {
	// Listen is the HTTP listen address, e.g. "127.0.0.1:8787".
	Listen string `yaml:"listen"`
	// DataDir is where core-config records are stored.
	DataDir string `yaml:"data_dir"`
	// AllowedOrigins restricts WebSocket origins; empty allows any.
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Listen:  "127.0.0.1:8787",
		DataDir: defaultDataDir(),
	}
}

// Load reads path and applies environment overrides. An empty path or a
// missing file yields the defaults; a malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// fall through to defaults
		case err != nil:
			return Config{}, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if v := os.Getenv("KEYMINT_LISTEN"); v != "" {
		cfg.Listen = v
	}
	if v := os.Getenv("KEYMINT_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if cfg.Listen == "" {
		cfg.Listen = Default().Listen
	}
	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir()
	}
	return cfg, nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".keymint"
	}
	return filepath.Join(home, ".keymint")
}
