package db_test

import (
	"testing"

	"lpm/internal/profile"
	"lpm/internal/storage/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveGetProfile_RoundTrip(t *testing.T) {
	database := newTestDB(t)

	cfg := profile.NewDefault()
	cfg.GameName = "Example Game"
	cfg.RelativeExePath = "bin/game.exe"
	cfg = cfg.WithGamescopeSize("1920", "1080")

	require.NoError(t, database.SaveProfile("example", cfg))

	got, err := database.GetProfile("example")
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestSaveProfile_Upserts(t *testing.T) {
	database := newTestDB(t)

	cfg := profile.NewDefault()
	cfg.GameName = "v1"
	require.NoError(t, database.SaveProfile("example", cfg))

	cfg.GameName = "v2"
	require.NoError(t, database.SaveProfile("example", cfg))

	got, err := database.GetProfile("example")
	require.NoError(t, err)
	assert.Equal(t, "v2", got.GameName)

	profiles, err := database.ListProfiles()
	require.NoError(t, err)
	assert.Len(t, profiles, 1)
}

func TestGetProfile_NotFound(t *testing.T) {
	database := newTestDB(t)

	_, err := database.GetProfile("missing")
	assert.ErrorIs(t, err, db.ErrProfileNotFound)
}

func TestListProfiles(t *testing.T) {
	database := newTestDB(t)

	a := profile.NewDefault()
	a.GameName = "Game A"
	require.NoError(t, database.SaveProfile("a", a))

	b := profile.NewDefault()
	b.GameName = "Game B"
	require.NoError(t, database.SaveProfile("b", b))

	profiles, err := database.ListProfiles()
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	names := []string{profiles[0].Name, profiles[1].Name}
	assert.ElementsMatch(t, []string{"a", "b"}, names)
}

func TestDeleteProfile(t *testing.T) {
	database := newTestDB(t)

	require.NoError(t, database.SaveProfile("a", profile.NewDefault()))
	require.NoError(t, database.DeleteProfile("a"))

	_, err := database.GetProfile("a")
	assert.ErrorIs(t, err, db.ErrProfileNotFound)

	assert.ErrorIs(t, database.DeleteProfile("a"), db.ErrProfileNotFound)
}
