package main

import (
	"fmt"
	"os"
	"path/filepath"

	"lpm/internal/backend"
	"lpm/internal/profile"
	"lpm/internal/storage/config"
	"lpm/internal/storage/db"
)

// loadProfileFile reads and decodes a profile JSON file.
func loadProfileFile(path string) (profile.GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return profile.GameConfig{}, fmt.Errorf("reading profile: %w", err)
	}
	cfg, err := profile.DecodeJSON(data)
	if err != nil {
		return profile.GameConfig{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// writeProfileFile encodes and writes a profile JSON file.
func writeProfileFile(path string, cfg profile.GameConfig) error {
	data, err := cfg.EncodeJSON()
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}
	return nil
}

// resolveDataDir returns the data directory from settings or the default
// under the user's home.
func resolveDataDir(cfg *config.Config) (string, error) {
	if cfg.DataDir != "" {
		return cfg.DataDir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", "lpm"), nil
}

// openLibrary opens the local profile library database, creating the data
// directory when missing.
func openLibrary(cfg *config.Config) (*db.DB, error) {
	dataDir, err := resolveDataDir(cfg)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return db.New(filepath.Join(dataDir, "library.db"))
}

// newBackendClient builds the backend client from settings.
func newBackendClient(cfg *config.Config) *backend.Client {
	return backend.New(cfg.BackendAddr, nil, newLogger())
}
