package main

import (
	"path/filepath"
	"testing"

	"lpm/internal/profile"
	"lpm/internal/storage/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")

	cfg := profile.NewDefault()
	cfg.GameName = "Stellar Drift"
	cfg.RelativeExePath = "bin/game.exe"

	require.NoError(t, writeProfileFile(path, cfg))

	loaded, err := loadProfileFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Stellar Drift", loaded.GameName)
	assert.Equal(t, "bin/game.exe", loaded.RelativeExePath)
}

func TestLoadProfileFile_MissingFile(t *testing.T) {
	_, err := loadProfileFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestOpenLibrary_CreatesDataDir(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "nested", "lpm")
	library, err := openLibrary(&config.Config{DataDir: dataDir})
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, library.Close()) })

	require.NoError(t, library.SaveProfile("test", profile.NewDefault()))
	profiles, err := library.ListProfiles()
	require.NoError(t, err)
	assert.Len(t, profiles, 1)
}
