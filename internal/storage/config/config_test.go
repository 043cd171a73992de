package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"lpm/internal/storage/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "en-US", cfg.Locale)
	assert.Equal(t, "http://127.0.0.1:7745", cfg.BackendAddr)
	assert.Equal(t, "vim", cfg.Keybindings)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	content := `
locale: pt-BR
backend_addr: http://127.0.0.1:9000
keybindings: standard
`
	err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "pt-BR", cfg.Locale)
	assert.Equal(t, "http://127.0.0.1:9000", cfg.BackendAddr)
	assert.Equal(t, "standard", cfg.Keybindings)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("locale: en-US\n"), 0644)
	require.NoError(t, err)

	t.Setenv("LPM_LOCALE", "pt-BR")
	t.Setenv("LPM_BACKEND_ADDR", "http://127.0.0.1:8123")

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "pt-BR", cfg.Locale)
	assert.Equal(t, "http://127.0.0.1:8123", cfg.BackendAddr)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("locale: [unclosed"), 0644)
	require.NoError(t, err)

	_, err = config.Load(dir)
	assert.Error(t, err)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		Locale:      "pt-BR",
		BackendAddr: "http://127.0.0.1:7745",
		Keybindings: "vim",
		DataDir:     "/tmp/lpm-data",
	}
	require.NoError(t, cfg.Save(dir))

	got, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
