package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Pane is a view that can sit inside a Stack. Editing gates key handling:
// while a pane edits, every key goes to it.
type Pane interface {
	tea.Model
	Editing() bool
}

// Stack composes several panes into one tab, one focused at a time. The "w"
// key cycles focus when no pane is editing.
type Stack struct {
	panes []Pane
	focus int
}

// NewStack creates a stack over the given panes.
func NewStack(panes ...Pane) Stack {
	return Stack{panes: panes}
}

// Focus returns the focused pane index.
func (s Stack) Focus() int {
	return s.focus
}

// Editing reports whether the focused pane is editing.
func (s Stack) Editing() bool {
	if len(s.panes) == 0 {
		return false
	}
	return s.panes[s.focus].Editing()
}

// Init implements tea.Model
func (s Stack) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (s Stack) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if len(s.panes) == 0 {
		return s, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Every pane tracks the window size, focused or not
		for i, pane := range s.panes {
			updated, _ := pane.Update(msg)
			s.panes[i] = updated.(Pane)
		}
		return s, nil

	case tea.KeyMsg:
		if !s.Editing() && msg.String() == "w" && len(s.panes) > 1 {
			s.focus = (s.focus + 1) % len(s.panes)
			return s, nil
		}
	}

	updated, cmd := s.panes[s.focus].Update(msg)
	s.panes[s.focus] = updated.(Pane)
	return s, cmd
}

// View implements tea.Model
func (s Stack) View() string {
	parts := make([]string, 0, len(s.panes))
	for i, pane := range s.panes {
		marker := "  "
		if len(s.panes) > 1 && i == s.focus {
			marker = selectedStyle.Render("◆ ")
		}
		parts = append(parts, marker+strings.ReplaceAll(pane.View(), "\n", "\n  "))
	}
	out := strings.Join(parts, "\n\n")
	if len(s.panes) > 1 {
		out += "\n\n" + helpStyle.Render("w: next pane")
	}
	return out
}
