package store_test

import (
	"testing"

	"lpm/internal/profile"
	"lpm/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetReturnsCopy(t *testing.T) {
	s := store.New(profile.NewDefault())

	got := s.Get()
	got.GameName = "mutated"
	got.Winecfg.Drives[0].Label = "mutated"

	assert.Equal(t, profile.NewDefault(), s.Get())
}

func TestStore_PatchReplacesWholeValue(t *testing.T) {
	s := store.New(profile.NewDefault())

	s.Patch(func(c profile.GameConfig) profile.GameConfig {
		c.GameName = "Example"
		return c.WithGamescopeSize("1920", "1080")
	})

	got := s.Get()
	assert.Equal(t, "Example", got.GameName)
	require.NotNil(t, got.Environment.Gamescope.Resolution)
	assert.Equal(t, "1920x1080", *got.Environment.Gamescope.Resolution)
}

func TestStore_SubscribersNotified(t *testing.T) {
	s := store.New(profile.NewDefault())

	var seen []string
	s.Subscribe(func(c profile.GameConfig) {
		seen = append(seen, c.GameName)
	})

	s.Patch(func(c profile.GameConfig) profile.GameConfig {
		c.GameName = "one"
		return c
	})
	s.Patch(func(c profile.GameConfig) profile.GameConfig {
		c.GameName = "two"
		return c
	})

	assert.Equal(t, []string{"one", "two"}, seen)
}

func TestStore_PatchErrLeavesValueOnError(t *testing.T) {
	s := store.New(profile.NewDefault())

	notified := 0
	s.Subscribe(func(profile.GameConfig) { notified++ })

	err := s.PatchErr(func(c profile.GameConfig) (profile.GameConfig, error) {
		return c.WithCustomVar("WINEPREFIX", "/tmp/x")
	})
	require.ErrorIs(t, err, profile.ErrReservedEnvVar)
	assert.Zero(t, notified)
	assert.Equal(t, profile.NewDefault(), s.Get())

	err = s.PatchErr(func(c profile.GameConfig) (profile.GameConfig, error) {
		return c.WithCustomVar("DXVK_HUD", "fps")
	})
	require.NoError(t, err)
	assert.Equal(t, 1, notified)
	assert.Equal(t, "fps", s.Get().Environment.CustomVars["DXVK_HUD"])
}
