package store

// DialogKind identifies which list-editor dialog is open, if any.
type DialogKind string

const (
	DialogNone          DialogKind = ""
	DialogEnvVar        DialogKind = "env_var"
	DialogWrapper       DialogKind = "wrapper"
	DialogDLLOverride   DialogKind = "dll_override"
	DialogDrive         DialogKind = "drive"
	DialogDesktopFolder DialogKind = "desktop_folder"
	DialogWinetricks    DialogKind = "winetricks"
	DialogExtraDep      DialogKind = "extra_dependency"
	DialogRegistryKey   DialogKind = "registry_key"
	DialogFolderMount   DialogKind = "folder_mount"
)

// Session is the ephemeral UI state of one wizard run: which tab is active,
// which dialog is open and its uncommitted draft values, and the transient
// status line. It is serializable but never part of the exported profile.
type Session struct {
	ActiveTab int               `json:"active_tab"`
	Dialog    DialogKind        `json:"dialog"`
	Drafts    map[string]string `json:"drafts"`
	Status    string            `json:"status"`
	LastError string            `json:"last_error"`
}

// NewSession returns an empty session on the first tab.
func NewSession() Session {
	return Session{Drafts: map[string]string{}}
}

// WithDraft returns a copy with one draft field set.
func (s Session) WithDraft(field, value string) Session {
	n := s
	n.Drafts = make(map[string]string, len(s.Drafts)+1)
	for k, v := range s.Drafts {
		n.Drafts[k] = v
	}
	n.Drafts[field] = value
	return n
}

// ClearDrafts returns a copy with the dialog closed and all drafts dropped.
func (s Session) ClearDrafts() Session {
	n := s
	n.Dialog = DialogNone
	n.Drafts = map[string]string{}
	return n
}
