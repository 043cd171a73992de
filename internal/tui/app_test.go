package tui_test

import (
	"testing"

	"lpm/internal/locale"
	"lpm/internal/profile"
	"lpm/internal/store"
	"lpm/internal/tui"
	"lpm/internal/tui/views"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() tui.App {
	return tui.NewApp(tui.Deps{
		Store:   store.New(profile.NewDefault()),
		Locale:  locale.EnUS,
		DataDir: "/data",
	})
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewApp_InitialState(t *testing.T) {
	app := newTestApp()

	assert.Equal(t, tui.TabIdentity, app.CurrentTab())
	assert.NotEmpty(t, app.View())
}

func TestApp_TabNavigation(t *testing.T) {
	app := newTestApp()

	newModel, _ := app.Update(tea.KeyMsg{Type: tea.KeyTab})
	updated := newModel.(tui.App)
	assert.Equal(t, tui.TabRunner, updated.CurrentTab())

	newModel, _ = updated.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	updated = newModel.(tui.App)
	assert.Equal(t, tui.TabIdentity, updated.CurrentTab())

	// Previous from the first tab wraps to the last
	newModel, _ = updated.Update(keyRunes("["))
	updated = newModel.(tui.App)
	assert.Equal(t, tui.TabReview, updated.CurrentTab())
}

func TestApp_QuitOnQ(t *testing.T) {
	app := newTestApp()

	_, cmd := app.Update(keyRunes("q"))
	require.NotNil(t, cmd)

	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit)
}

func TestApp_EditingSuspendsGlobalKeys(t *testing.T) {
	app := newTestApp()

	// Enter edit mode on the first identity field
	newModel, _ := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = newModel.(tui.App)

	// "q" is now text, not quit
	newModel, cmd := app.Update(keyRunes("q"))
	app = newModel.(tui.App)
	if cmd != nil {
		_, isQuit := cmd().(tea.QuitMsg)
		assert.False(t, isQuit)
	}
	assert.Equal(t, tui.TabIdentity, app.CurrentTab())
}

func TestApp_EditFieldUpdatesStore(t *testing.T) {
	st := store.New(profile.NewDefault())
	app := tui.NewApp(tui.Deps{Store: st, Locale: locale.EnUS, DataDir: "/data"})

	steps := []tea.Msg{
		tea.KeyMsg{Type: tea.KeyEnter},
		keyRunes("Stellar Drift"),
		tea.KeyMsg{Type: tea.KeyEnter},
	}
	var model tea.Model = app
	for _, msg := range steps {
		model, _ = model.Update(msg)
	}

	assert.Equal(t, "Stellar Drift", st.Get().GameName)
}

func TestApp_StatusMessageShown(t *testing.T) {
	app := newTestApp()

	newModel, _ := app.Update(views.StatusMsg{Text: "profile created"})
	updated := newModel.(tui.App)

	assert.Equal(t, "profile created", updated.Status())
	assert.Contains(t, updated.View(), "profile created")
}

func TestApp_WindowSizePropagates(t *testing.T) {
	app := newTestApp()

	newModel, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	updated := newModel.(tui.App)

	// Review tab renders through its viewport once sized
	newModel, _ = updated.Update(keyRunes("["))
	updated = newModel.(tui.App)
	assert.Equal(t, tui.TabReview, updated.CurrentTab())
	assert.NotEmpty(t, updated.View())
}

func TestApp_ViewRendersEveryTab(t *testing.T) {
	app := newTestApp()

	var model tea.Model = app
	for i := 0; i < 10; i++ {
		assert.NotEmpty(t, model.View())
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
}
