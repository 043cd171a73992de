package views

import (
	"fmt"
	"strings"

	"lpm/internal/store"
	"lpm/internal/validate"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// DraftField is one input of a list-editor dialog. When Options is set the
// field cycles instead of accepting free text.
type DraftField struct {
	Label    string
	Options  []string
	Validate func(string) validate.Result
}

// ListEditor is a tab managing one keyed list of the profile: it shows the
// committed rows and edits new entries through a sequential draft dialog.
// Draft values live in a store.Session and never touch the profile until
// every field validates and the commit callback accepts them.
type ListEditor struct {
	title   string
	dialog  store.DialogKind
	rows    func() []string
	fields  []DraftField
	commit  func(values []string) error
	remove  func(index int) error
	suggest func(query string) []string

	selected int
	session  store.Session
	focus    int
	enumIdx  int
	input    textinput.Model
	errText  string
	hintText string
	status   string
	width    int
	height   int
}

// ListEditorConfig wires a ListEditor to its list.
type ListEditorConfig struct {
	Title string
	// Dialog names the draft dialog in the session state.
	Dialog store.DialogKind
	// Rows renders the committed entries.
	Rows func() []string
	// Fields are the dialog inputs, committed in order.
	Fields []DraftField
	// Commit receives one value per field; an error (e.g. a duplicate key)
	// keeps the dialog open with the message inline.
	Commit func(values []string) error
	// Remove deletes the entry at the given row index.
	Remove func(index int) error
	// Suggest, when set, offers candidates for the focused text field.
	Suggest func(query string) []string
}

// NewListEditor creates a list-editor view.
func NewListEditor(cfg ListEditorConfig) ListEditor {
	ti := textinput.New()
	ti.CharLimit = 512
	ti.Width = 50

	dialog := cfg.Dialog
	if dialog == store.DialogNone {
		dialog = store.DialogKind("entry")
	}

	return ListEditor{
		title:   cfg.Title,
		dialog:  dialog,
		rows:    cfg.Rows,
		fields:  cfg.Fields,
		commit:  cfg.Commit,
		remove:  cfg.Remove,
		suggest: cfg.Suggest,
		session: store.NewSession(),
		input:   ti,
		width:   80,
		height:  24,
	}
}

// Editing reports whether the draft dialog is open.
func (e ListEditor) Editing() bool {
	return e.session.Dialog != store.DialogNone
}

// Selected returns the selected row index.
func (e ListEditor) Selected() int {
	return e.selected
}

// Status returns the transient status line.
func (e ListEditor) Status() string {
	return e.status
}

// Init implements tea.Model
func (e ListEditor) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (e ListEditor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if e.Editing() {
			return e.handleDialogKey(msg)
		}
		return e.handleBrowseKey(msg)

	case tea.WindowSizeMsg:
		e.width = msg.Width
		e.height = msg.Height
		return e, nil
	}
	return e, nil
}

func (e ListEditor) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if e.selected > 0 {
			e.selected--
		}
		return e, nil

	case "down", "j":
		if e.selected < len(e.rows())-1 {
			e.selected++
		}
		return e, nil

	case "a", "enter":
		return e.openDialog(), textinput.Blink

	case "d", "x":
		rows := e.rows()
		if e.remove == nil || len(rows) == 0 || e.selected >= len(rows) {
			return e, nil
		}
		if err := e.remove(e.selected); err != nil {
			e.status = err.Error()
			return e, nil
		}
		if e.selected >= len(rows)-1 && e.selected > 0 {
			e.selected--
		}
		return e, nil
	}
	return e, nil
}

// openDialog starts a fresh draft on the first field.
func (e ListEditor) openDialog() ListEditor {
	e.session = e.session.ClearDrafts()
	e.session.Dialog = e.dialog
	e.focus = 0
	e.errText, e.hintText, e.status = "", "", ""
	e.prepareFocusedField()
	return e
}

// prepareFocusedField resets the input (or enum cursor) for the field that
// now has focus.
func (e *ListEditor) prepareFocusedField() {
	field := e.fields[e.focus]
	if len(field.Options) > 0 {
		e.enumIdx = 0
		return
	}
	e.input.SetValue("")
	e.input.Focus()
}

func (e ListEditor) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	field := e.fields[e.focus]

	switch msg.Type {
	case tea.KeyEscape:
		e.session = e.session.ClearDrafts()
		e.errText, e.hintText = "", ""
		e.input.Blur()
		return e, nil

	case tea.KeyEnter:
		var value string
		if len(field.Options) > 0 {
			value = field.Options[e.enumIdx]
		} else {
			value = e.input.Value()
			if field.Validate != nil {
				res := field.Validate(value)
				if !res.OK() {
					e.errText = res.Err
					e.hintText = res.Hint
					return e, nil
				}
				e.hintText = res.Hint
			}
		}
		e.session = e.session.WithDraft(field.Label, value)
		e.errText = ""

		if e.focus < len(e.fields)-1 {
			e.focus++
			e.prepareFocusedField()
			return e, nil
		}

		values := make([]string, len(e.fields))
		for i, f := range e.fields {
			values[i] = e.session.Drafts[f.Label]
		}
		if err := e.commit(values); err != nil {
			// e.g. a duplicate key: keep the dialog open, restart the draft
			dialog := e.session.Dialog
			e.session = e.session.ClearDrafts()
			e.session.Dialog = dialog
			e.session.LastError = err.Error()
			e.errText = err.Error()
			e.focus = 0
			e.prepareFocusedField()
			return e, nil
		}
		e.session = e.session.ClearDrafts()
		e.hintText = ""
		e.input.Blur()
		return e, nil
	}

	if len(field.Options) > 0 {
		switch msg.String() {
		case "left", "h", "up", "k":
			e.enumIdx = (e.enumIdx - 1 + len(field.Options)) % len(field.Options)
		case "right", "l", "down", "j", " ":
			e.enumIdx = (e.enumIdx + 1) % len(field.Options)
		}
		return e, nil
	}

	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return e, cmd
}

// View implements tea.Model
func (e ListEditor) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(e.title))
	b.WriteString("\n\n")

	rows := e.rows()
	if len(rows) == 0 {
		b.WriteString(labelStyle.Render("  (empty)"))
		b.WriteString("\n")
	}
	for i, row := range rows {
		if i == e.selected && !e.Editing() {
			b.WriteString(selectedStyle.Render("> " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}

	if e.Editing() {
		b.WriteString("\n")
		field := e.fields[e.focus]
		for i := 0; i < e.focus; i++ {
			label := e.fields[i].Label
			b.WriteString(fmt.Sprintf("  %s: %s\n", label, e.session.Drafts[label]))
		}
		if len(field.Options) > 0 {
			b.WriteString(fmt.Sprintf("  %s: %s\n", selectedStyle.Render(field.Label), field.Options[e.enumIdx]))
		} else {
			b.WriteString(fmt.Sprintf("  %s: %s\n", selectedStyle.Render(field.Label), e.input.View()))
			if e.suggest != nil {
				for _, s := range e.suggest(e.input.Value()) {
					b.WriteString(hintStyle.Render("      "+s) + "\n")
				}
			}
		}
		if e.errText != "" {
			b.WriteString("  " + errorStyle.Render(e.errText) + "\n")
		}
		if e.hintText != "" {
			b.WriteString("  " + hintStyle.Render(e.hintText) + "\n")
		}
		b.WriteString("\n" + helpStyle.Render("enter: next • esc: cancel"))
		return b.String()
	}

	if e.status != "" {
		b.WriteString("\n" + errorStyle.Render(e.status) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("a: add • d: delete • ↑/↓: select"))
	return b.String()
}
