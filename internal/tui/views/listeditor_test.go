package views_test

import (
	"fmt"
	"testing"

	"lpm/internal/locale"
	"lpm/internal/store"
	"lpm/internal/tui/views"
	"lpm/internal/validate"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type varList struct {
	entries [][2]string
}

func (l *varList) rows() []string {
	out := make([]string, len(l.entries))
	for i, e := range l.entries {
		out[i] = e[0] + "=" + e[1]
	}
	return out
}

func (l *varList) commit(values []string) error {
	for _, e := range l.entries {
		if e[0] == values[0] {
			return fmt.Errorf("an entry with this key already exists")
		}
	}
	l.entries = append(l.entries, [2]string{values[0], values[1]})
	return nil
}

func (l *varList) remove(index int) error {
	l.entries = append(l.entries[:index], l.entries[index+1:]...)
	return nil
}

func newVarEditor(list *varList) views.ListEditor {
	return views.NewListEditor(views.ListEditorConfig{
		Title:  "Custom variables",
		Dialog: store.DialogEnvVar,
		Rows:   list.rows,
		Fields: []views.DraftField{
			{Label: "Name", Validate: func(raw string) validate.Result {
				return validate.EnvVarName(raw, locale.EnUS)
			}},
			{Label: "Value"},
		},
		Commit: list.commit,
		Remove: list.remove,
	})
}

func TestListEditor_AddEntry(t *testing.T) {
	list := &varList{}
	model := newVarEditor(list)

	newModel, _ := model.Update(keyRunes("a"))
	editor := newModel.(views.ListEditor)
	require.True(t, editor.Editing())

	newModel, _ = editor.Update(keyRunes("DXVK_HUD"))
	editor = newModel.(views.ListEditor)
	newModel, _ = editor.Update(tea.KeyMsg{Type: tea.KeyEnter})
	editor = newModel.(views.ListEditor)
	require.True(t, editor.Editing(), "second field still pending")

	newModel, _ = editor.Update(keyRunes("fps"))
	editor = newModel.(views.ListEditor)
	newModel, _ = editor.Update(tea.KeyMsg{Type: tea.KeyEnter})
	editor = newModel.(views.ListEditor)

	assert.False(t, editor.Editing())
	require.Len(t, list.entries, 1)
	assert.Equal(t, [2]string{"DXVK_HUD", "fps"}, list.entries[0])
}

func TestListEditor_InvalidFieldStaysOpen(t *testing.T) {
	list := &varList{}
	model := newVarEditor(list)

	newModel, _ := model.Update(keyRunes("a"))
	editor := newModel.(views.ListEditor)

	// Digits cannot start an environment variable name
	newModel, _ = editor.Update(keyRunes("1BAD"))
	editor = newModel.(views.ListEditor)
	newModel, _ = editor.Update(tea.KeyMsg{Type: tea.KeyEnter})
	editor = newModel.(views.ListEditor)

	assert.True(t, editor.Editing())
	assert.Empty(t, list.entries)
}

func TestListEditor_DuplicateCommitReportsError(t *testing.T) {
	list := &varList{entries: [][2]string{{"DXVK_HUD", "fps"}}}
	model := newVarEditor(list)

	steps := []tea.Msg{
		keyRunes("a"),
		keyRunes("DXVK_HUD"),
		tea.KeyMsg{Type: tea.KeyEnter},
		keyRunes("full"),
		tea.KeyMsg{Type: tea.KeyEnter},
	}
	var editor views.ListEditor = model
	for _, msg := range steps {
		newModel, _ := editor.Update(msg)
		editor = newModel.(views.ListEditor)
	}

	assert.True(t, editor.Editing(), "duplicate keeps the dialog open")
	assert.Contains(t, editor.View(), "already exists")
	require.Len(t, list.entries, 1)
	assert.Equal(t, "fps", list.entries[0][1], "existing entry untouched")
}

func TestListEditor_EscapeCancelsDraft(t *testing.T) {
	list := &varList{}
	model := newVarEditor(list)

	newModel, _ := model.Update(keyRunes("a"))
	editor := newModel.(views.ListEditor)
	newModel, _ = editor.Update(keyRunes("DXVK_HUD"))
	editor = newModel.(views.ListEditor)
	newModel, _ = editor.Update(tea.KeyMsg{Type: tea.KeyEscape})
	editor = newModel.(views.ListEditor)

	assert.False(t, editor.Editing())
	assert.Empty(t, list.entries)
}

func TestListEditor_DeleteEntry(t *testing.T) {
	list := &varList{entries: [][2]string{{"A", "1"}, {"B", "2"}}}
	model := newVarEditor(list)

	newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyDown})
	editor := newModel.(views.ListEditor)
	require.Equal(t, 1, editor.Selected())

	newModel, _ = editor.Update(keyRunes("d"))
	editor = newModel.(views.ListEditor)

	require.Len(t, list.entries, 1)
	assert.Equal(t, "A", list.entries[0][0])
	assert.Equal(t, 0, editor.Selected(), "selection clamps to the shrunk list")
}

func TestListEditor_EnumFieldCycles(t *testing.T) {
	var got []string
	model := views.NewListEditor(views.ListEditorConfig{
		Title: "DLL overrides",
		Rows:  func() []string { return nil },
		Fields: []views.DraftField{
			{Label: "DLL"},
			{Label: "Mode", Options: []string{"native", "builtin", "disabled"}},
		},
		Commit: func(values []string) error { got = values; return nil },
	})

	steps := []tea.Msg{
		keyRunes("a"),
		keyRunes("d3d11"),
		tea.KeyMsg{Type: tea.KeyEnter},
		keyRunes("l"), // native -> builtin
		tea.KeyMsg{Type: tea.KeyEnter},
	}
	var editor tea.Model = model
	for _, msg := range steps {
		editor, _ = editor.Update(msg)
	}

	require.Equal(t, []string{"d3d11", "builtin"}, got)
	assert.False(t, editor.(views.ListEditor).Editing())
}

func TestListEditor_SuggestionsRendered(t *testing.T) {
	model := views.NewListEditor(views.ListEditorConfig{
		Title: "Winetricks verbs",
		Rows:  func() []string { return nil },
		Fields: []views.DraftField{
			{Label: "Verb"},
		},
		Commit: func([]string) error { return nil },
		Suggest: func(query string) []string {
			if query == "vcr" {
				return []string{"vcrun2019", "vcrun2022"}
			}
			return nil
		},
	})

	newModel, _ := model.Update(keyRunes("a"))
	editor := newModel.(views.ListEditor)
	newModel, _ = editor.Update(keyRunes("vcr"))
	editor = newModel.(views.ListEditor)

	view := editor.View()
	assert.Contains(t, view, "vcrun2019")
	assert.Contains(t, view, "vcrun2022")
}
