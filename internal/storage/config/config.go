// Package config provides application settings parsing and validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds global application settings. Environment variables override
// the file values.
type Config struct {
	Locale      string `yaml:"locale" env:"LPM_LOCALE"`
	BackendAddr string `yaml:"backend_addr" env:"LPM_BACKEND_ADDR"`
	Keybindings string `yaml:"keybindings" env:"LPM_KEYBINDINGS"`
	DataDir     string `yaml:"data_dir" env:"LPM_DATA_DIR"`
}

// Load reads configuration from the given directory, applying defaults and
// then environment overrides. A missing file yields the defaults.
func Load(configDir string) (*Config, error) {
	cfg := &Config{
		Locale:      "en-US",
		BackendAddr: "http://127.0.0.1:7745",
		Keybindings: "vim",
	}

	configPath := filepath.Join(configDir, "config.yaml")
	data, err := os.ReadFile(configPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config environment: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to the given directory.
func (c *Config) Save(configDir string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
