// Package views holds the wizard's tab models: field forms, keyed-list
// editors and the review tab. Views never hold profile data themselves; they
// read and write it through getter/setter closures bound to the store.
package views

import (
	"fmt"
	"strings"

	"lpm/internal/validate"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StatusMsg carries a transient message for the status bar.
type StatusMsg struct {
	Text string
}

// FieldKind distinguishes free-text fields from fields cycling a fixed
// option set.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldEnum
)

// Field binds one editable value to the store. Get returns the current
// value, Set commits a new one; Validate (text fields only) gates the commit
// and never throws: a draft failing validation simply stays in the input.
type Field struct {
	Label    string
	Kind     FieldKind
	Options  []string
	Validate func(string) validate.Result
	Get      func() string
	Set      func(string) error
}

var (
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
)

// Form is a tab of editable fields.
type Form struct {
	title    string
	fields   []Field
	selected int
	editing  bool
	input    textinput.Model
	errText  string
	hintText string
	width    int
	height   int
}

// NewForm creates a form view.
func NewForm(title string, fields []Field) Form {
	ti := textinput.New()
	ti.CharLimit = 512
	ti.Width = 60

	return Form{
		title:  title,
		fields: fields,
		input:  ti,
		width:  80,
		height: 24,
	}
}

// Selected returns the selected field index.
func (f Form) Selected() int {
	return f.selected
}

// Editing reports whether a text field is being edited.
func (f Form) Editing() bool {
	return f.editing
}

// CurrentError returns the inline validation error, if any.
func (f Form) CurrentError() string {
	return f.errText
}

// Init implements tea.Model
func (f Form) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (f Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return f.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		f.width = msg.Width
		f.height = msg.Height
		return f, nil
	}
	return f, nil
}

func (f Form) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if f.editing {
		return f.handleEditKey(msg)
	}

	switch msg.String() {
	case "up", "k":
		if f.selected > 0 {
			f.selected--
		}
		f.errText, f.hintText = "", ""
		return f, nil

	case "down", "j":
		if f.selected < len(f.fields)-1 {
			f.selected++
		}
		f.errText, f.hintText = "", ""
		return f, nil

	case "enter", " ", "right", "l":
		return f.activateField(1)

	case "left", "h":
		return f.activateField(-1)
	}
	return f, nil
}

// activateField starts editing a text field, or cycles an enum field by
// step.
func (f Form) activateField(step int) (tea.Model, tea.Cmd) {
	if len(f.fields) == 0 {
		return f, nil
	}
	field := f.fields[f.selected]

	if field.Kind == FieldText {
		f.editing = true
		f.errText, f.hintText = "", ""
		f.input.SetValue(field.Get())
		f.input.CursorEnd()
		f.input.Focus()
		return f, textinput.Blink
	}

	current := field.Get()
	idx := 0
	for i, opt := range field.Options {
		if opt == current {
			idx = i
			break
		}
	}
	idx = (idx + step + len(field.Options)) % len(field.Options)
	if err := field.Set(field.Options[idx]); err != nil {
		f.errText = err.Error()
	}
	return f, nil
}

func (f Form) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		f.editing = false
		f.errText, f.hintText = "", ""
		f.input.Blur()
		return f, nil

	case tea.KeyEnter:
		field := f.fields[f.selected]
		value := f.input.Value()

		if field.Validate != nil {
			res := field.Validate(value)
			if !res.OK() {
				f.errText = res.Err
				f.hintText = res.Hint
				return f, nil
			}
			f.hintText = res.Hint
		}
		if err := field.Set(value); err != nil {
			f.errText = err.Error()
			return f, nil
		}
		f.editing = false
		f.errText = ""
		f.input.Blur()
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

// View implements tea.Model
func (f Form) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(f.title))
	b.WriteString("\n\n")

	for i, field := range f.fields {
		cursor := "  "
		render := func(s string) string { return s }
		if i == f.selected {
			cursor = "> "
			render = func(s string) string { return selectedStyle.Render(s) }
		}

		if i == f.selected && f.editing {
			b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, render(field.Label+":"), f.input.View()))
		} else {
			value := field.Get()
			if value == "" {
				value = "-"
			}
			b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, render(field.Label+":"), labelStyle.Render(value)))
		}

		if i == f.selected {
			if f.errText != "" {
				b.WriteString("    " + errorStyle.Render(f.errText) + "\n")
			}
			if f.hintText != "" {
				b.WriteString("    " + hintStyle.Render(f.hintText) + "\n")
			}
		}
	}

	b.WriteString("\n")
	if f.editing {
		b.WriteString(helpStyle.Render("enter: apply • esc: cancel"))
	} else {
		b.WriteString(helpStyle.Render("↑/↓: field • enter: edit • ←/→: cycle"))
	}
	return b.String()
}
