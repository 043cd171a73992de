package views_test

import (
	"context"
	"testing"

	"lpm/internal/locale"
	"lpm/internal/profile"
	"lpm/internal/tui/views"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLauncher struct {
	launched []profile.GameConfig
	created  []profile.GameConfig
	err      error
}

func (f *fakeLauncher) TestLaunch(_ context.Context, cfg profile.GameConfig) error {
	f.launched = append(f.launched, cfg)
	return f.err
}

func (f *fakeLauncher) CreateProfile(_ context.Context, cfg profile.GameConfig) error {
	f.created = append(f.created, cfg)
	return f.err
}

func reviewProfile() profile.GameConfig {
	cfg := profile.NewDefault()
	cfg.GameName = "Stellar Drift"
	cfg.ExeHash = "deadbeef"
	return cfg
}

func TestReview_RendersEncodedProfile(t *testing.T) {
	cfg := reviewProfile()
	model := views.NewReview(func() profile.GameConfig { return cfg }, nil, locale.EnUS, "/data")
	model = model.Refresh()

	newModel, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	review := newModel.(views.Review)

	view := review.View()
	assert.Contains(t, view, "Stellar Drift")
	assert.Contains(t, view, "/data/prefixes/deadbeef")
}

func TestReview_TestLaunchSendsProfile(t *testing.T) {
	cfg := reviewProfile()
	launcher := &fakeLauncher{}
	model := views.NewReview(func() profile.GameConfig { return cfg }, launcher, locale.EnUS, "/data")

	newModel, cmd := model.Update(keyRunes("t"))
	_ = newModel.(views.Review)
	require.NotNil(t, cmd)

	msg := cmd()
	status, ok := msg.(views.StatusMsg)
	require.True(t, ok)
	assert.Equal(t, "test launch finished", status.Text)
	require.Len(t, launcher.launched, 1)
	assert.Equal(t, "Stellar Drift", launcher.launched[0].GameName)
	assert.Empty(t, launcher.created)
}

func TestReview_CreateProfileSendsProfile(t *testing.T) {
	cfg := reviewProfile()
	launcher := &fakeLauncher{}
	model := views.NewReview(func() profile.GameConfig { return cfg }, launcher, locale.EnUS, "/data")

	_, cmd := model.Update(keyRunes("c"))
	require.NotNil(t, cmd)

	msg := cmd()
	status, ok := msg.(views.StatusMsg)
	require.True(t, ok)
	assert.Equal(t, "profile created", status.Text)
	require.Len(t, launcher.created, 1)
}

func TestReview_BackendErrorSurfaces(t *testing.T) {
	cfg := reviewProfile()
	launcher := &fakeLauncher{err: assert.AnError}
	model := views.NewReview(func() profile.GameConfig { return cfg }, launcher, locale.EnUS, "/data")

	_, cmd := model.Update(keyRunes("t"))
	require.NotNil(t, cmd)

	status := cmd().(views.StatusMsg)
	assert.Contains(t, status.Text, "backend call failed")
}

func TestReview_NoLauncherConfigured(t *testing.T) {
	cfg := reviewProfile()
	model := views.NewReview(func() profile.GameConfig { return cfg }, nil, locale.EnUS, "/data")

	_, cmd := model.Update(keyRunes("t"))
	require.NotNil(t, cmd)

	status := cmd().(views.StatusMsg)
	assert.Contains(t, status.Text, "no backend configured")
}

func TestReview_BusyBlocksSecondLaunch(t *testing.T) {
	cfg := reviewProfile()
	launcher := &fakeLauncher{}
	model := views.NewReview(func() profile.GameConfig { return cfg }, launcher, locale.EnUS, "/data")

	newModel, cmd := model.Update(keyRunes("t"))
	review := newModel.(views.Review)
	require.NotNil(t, cmd)

	_, second := review.Update(keyRunes("t"))
	assert.Nil(t, second, "launch in flight, key ignored")
}
