package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lpm/internal/locale"
	"lpm/internal/profile"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Launcher covers the backend operations the review tab can trigger.
type Launcher interface {
	TestLaunch(ctx context.Context, cfg profile.GameConfig) error
	CreateProfile(ctx context.Context, cfg profile.GameConfig) error
}

// Review is the final tab: a scrollable preview of the encoded profile, the
// per-section counts, and the launch/create actions.
type Review struct {
	get      func() profile.GameConfig
	launcher Launcher
	loc      locale.Locale
	dataDir  string

	vp      viewport.Model
	width   int
	height  int
	busy    bool
	ready   bool
	encoded string
	encErr  error
}

// NewReview creates the review view. launcher may be nil, in which case the
// launch and create keys report an unavailable backend.
func NewReview(get func() profile.GameConfig, launcher Launcher, loc locale.Locale, dataDir string) Review {
	return Review{
		get:      get,
		launcher: launcher,
		loc:      loc,
		dataDir:  dataDir,
		width:    80,
		height:   24,
	}
}

// Editing implements the per-view editing gate; the review tab never
// captures global keys.
func (r Review) Editing() bool {
	return false
}

// Refresh re-encodes the profile for display. The app calls this when the
// review tab gains focus.
func (r Review) Refresh() Review {
	cfg := r.get()
	data, err := cfg.EncodeJSON()
	r.encErr = err
	if err == nil {
		r.encoded = string(data)
	}
	if r.ready {
		r.vp.SetContent(r.content())
		r.vp.GotoTop()
	}
	return r
}

// Init implements tea.Model
func (r Review) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (r Review) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		if !r.ready {
			r.vp = viewport.New(msg.Width, msg.Height-6)
			r.ready = true
		} else {
			r.vp.Width = msg.Width
			r.vp.Height = msg.Height - 6
		}
		r.vp.SetContent(r.content())
		return r, nil

	case StatusMsg:
		r.busy = false
		return r, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "t":
			if r.busy {
				return r, nil
			}
			r.busy = true
			return r, r.launchCmd(false)
		case "c":
			if r.busy {
				return r, nil
			}
			r.busy = true
			return r, r.launchCmd(true)
		}
	}

	if r.ready {
		var cmd tea.Cmd
		r.vp, cmd = r.vp.Update(msg)
		return r, cmd
	}
	return r, nil
}

// launchCmd runs a test launch (or profile creation) against the backend and
// reports the outcome as a StatusMsg.
func (r Review) launchCmd(create bool) tea.Cmd {
	cfg := r.get()
	launcher := r.launcher
	loc := r.loc

	return func() tea.Msg {
		if launcher == nil {
			return StatusMsg{Text: loc.T("backend.failed", "no backend configured")}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		var err error
		if create {
			err = launcher.CreateProfile(ctx, cfg)
		} else {
			err = launcher.TestLaunch(ctx, cfg)
		}
		if err != nil {
			return StatusMsg{Text: loc.T("backend.failed", err.Error())}
		}
		if create {
			return StatusMsg{Text: loc.T("status.profile.created")}
		}
		return StatusMsg{Text: loc.T("status.launch.ok")}
	}
}

// content lays out the summary header and the encoded profile.
func (r Review) content() string {
	cfg := r.get()
	counts := profile.CountSections(cfg)

	var b strings.Builder
	b.WriteString(fmt.Sprintf(
		"env %d • dll %d • drives %d • folders %d • verbs %d • deps %d • registry %d • mounts %d • wrappers %d\n",
		counts.CustomVars, counts.DLLOverrides, counts.Drives, counts.DesktopFolders,
		counts.WinetricksVerbs, counts.ExtraDeps, counts.RegistryKeys, counts.FolderMounts,
		counts.Wrappers,
	))
	if prefix := profile.PrefixPath(r.dataDir, cfg.ExeHash); prefix != "" {
		b.WriteString(labelStyle.Render("prefix: "+prefix) + "\n")
	}
	b.WriteString("\n")
	if r.encErr != nil {
		b.WriteString(errorStyle.Render(r.encErr.Error()))
	} else {
		b.WriteString(r.encoded)
	}
	return b.String()
}

// View implements tea.Model
func (r Review) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Review"))
	b.WriteString("\n\n")
	if r.ready {
		b.WriteString(r.vp.View())
	} else {
		b.WriteString(r.content())
	}
	b.WriteString("\n")
	if r.busy {
		b.WriteString(hintStyle.Render("waiting for backend…"))
	} else {
		b.WriteString(helpStyle.Render("t: test launch • c: create profile • ↑/↓: scroll"))
	}
	return b.String()
}
