// Package tui implements the profile wizard: a tabbed bubbletea application
// over a shared profile store. Each tab is a self-contained view; the app
// routes keys, window sizes and status messages between them.
package tui

import (
	"fmt"
	"strings"

	"lpm/internal/locale"
	"lpm/internal/store"
	"lpm/internal/tui/views"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Tab identifies one wizard tab.
type Tab int

const (
	TabIdentity Tab = iota
	TabRunner
	TabEnvironment
	TabCompatibility
	TabWinecfg
	TabDependencies
	TabRegistry
	TabMounts
	TabScripts
	TabReview
)

var tabLabels = []string{
	"Identity",
	"Runner",
	"Environment",
	"Compatibility",
	"Winecfg",
	"Dependencies",
	"Registry",
	"Mounts",
	"Scripts",
	"Review",
}

// editingView is implemented by every tab model; while a tab edits, global
// keybindings are suspended.
type editingView interface {
	tea.Model
	Editing() bool
}

// Deps carries everything the wizard needs at construction time.
type Deps struct {
	Store    *store.Store
	Locale   locale.Locale
	Launcher views.Launcher
	DataDir  string
	KeyMode  string
}

// App is the wizard's root model.
type App struct {
	keys    *KeyMap
	tabs    []editingView
	session store.Session
	width   int
	height  int
}

// NewApp builds the wizard with one view per tab, all bound to the same
// store.
func NewApp(deps Deps) App {
	return App{
		keys:    NewKeyMap(deps.KeyMode),
		tabs:    buildTabs(deps),
		session: store.NewSession(),
		width:   80,
		height:  24,
	}
}

// CurrentTab returns the active tab.
func (a App) CurrentTab() Tab {
	return Tab(a.session.ActiveTab)
}

// Status returns the status-bar text.
func (a App) Status() string {
	return a.session.Status
}

// Init implements tea.Model
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// All tabs track the size so switching never renders stale layouts
		for i, tab := range a.tabs {
			updated, _ := tab.Update(msg)
			a.tabs[i] = updated.(editingView)
		}
		return a, nil

	case views.StatusMsg:
		a.session.Status = msg.Text
		// The review tab clears its in-flight marker on the same message
		updated, _ := a.tabs[TabReview].Update(msg)
		a.tabs[TabReview] = updated.(editingView)
		return a, nil
	}

	return a.updateCurrentTab(msg)
}

func (a App) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A tab mid-edit owns every key, including quit
	if a.tabs[a.CurrentTab()].Editing() {
		return a.updateCurrentTab(msg)
	}

	switch {
	case a.keys.IsQuit(msg):
		return a, tea.Quit

	case a.keys.IsNextTab(msg):
		return a.switchTab(Tab((a.session.ActiveTab + 1) % len(a.tabs))), nil

	case a.keys.IsPrevTab(msg):
		return a.switchTab(Tab((a.session.ActiveTab - 1 + len(a.tabs)) % len(a.tabs))), nil
	}

	return a.updateCurrentTab(msg)
}

// switchTab changes the active tab and refreshes the review preview when it
// gains focus.
func (a App) switchTab(tab Tab) App {
	a.session.ActiveTab = int(tab)
	a.session.Status = ""
	if tab == TabReview {
		if review, ok := a.tabs[TabReview].(views.Review); ok {
			a.tabs[TabReview] = review.Refresh()
		}
	}
	return a
}

func (a App) updateCurrentTab(msg tea.Msg) (tea.Model, tea.Cmd) {
	tab := a.CurrentTab()
	updated, cmd := a.tabs[tab].Update(msg)
	a.tabs[tab] = updated.(editingView)
	return a, cmd
}

// View implements tea.Model
func (a App) View() string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")).
		MarginBottom(1)

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	activeTabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	header := headerStyle.Render("lpm - Launch Profile Manager")

	var tabBar strings.Builder
	for i, label := range tabLabels {
		if i == a.session.ActiveTab {
			tabBar.WriteString(activeTabStyle.Render(label))
		} else {
			tabBar.WriteString(tabStyle.Render(label))
		}
		tabBar.WriteString("  ")
	}

	content := a.tabs[a.CurrentTab()].View()

	statusStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		MarginTop(1)
	status := ""
	if a.session.Status != "" {
		status = statusStyle.Render(a.session.Status)
	}

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		MarginTop(1)
	footer := footerStyle.Render("tab/]: next  shift+tab/[: prev  q: quit")

	return fmt.Sprintf("%s\n%s\n\n%s\n%s\n%s", header, tabBar.String(), content, status, footer)
}

// Run starts the wizard and returns the final profile state.
func Run(deps Deps) error {
	app := NewApp(deps)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
