package profile

import (
	"path/filepath"
	"strings"
)

// Derived values are always recomputed from the current profile, never
// stored (the gamescope resolution string is the one exception, kept in sync
// by WithGamescopeSize and Normalize because the backend reads it from the
// payload).

// BuildWxH derives the "{width}x{height}" resolution string. Nil when either
// side is empty after trimming.
func BuildWxH(width, height string) *string {
	w := strings.TrimSpace(width)
	h := strings.TrimSpace(height)
	if w == "" || h == "" {
		return nil
	}
	s := w + "x" + h
	return &s
}

// ParseWxH splits a "{width}x{height}" string back into its sides.
func ParseWxH(s string) (width, height string, ok bool) {
	width, height, ok = strings.Cut(s, "x")
	if !ok || width == "" || height == "" {
		return "", "", false
	}
	return width, height, true
}

// PrefixPath derives the per-game prefix directory from the executable hash.
// Empty while no hash is set.
func PrefixPath(dataDir, exeHash string) string {
	if exeHash == "" {
		return ""
	}
	return filepath.Join(dataDir, "prefixes", exeHash)
}

// SectionCounts summarizes how many entries each section contributes to the
// payload, for the review tab.
type SectionCounts struct {
	CustomVars      int
	Wrappers        int
	DLLOverrides    int
	Drives          int
	DesktopFolders  int
	WinetricksVerbs int
	ExtraDeps       int
	RegistryKeys    int
	FolderMounts    int
}

// CountSections computes the per-section payload item counts.
func CountSections(c GameConfig) SectionCounts {
	return SectionCounts{
		CustomVars:      len(c.Environment.CustomVars),
		Wrappers:        len(c.Compatibility.Wrappers),
		DLLOverrides:    len(c.Winecfg.DLLOverrides),
		Drives:          len(c.Winecfg.Drives),
		DesktopFolders:  len(c.Winecfg.DesktopFolders),
		WinetricksVerbs: len(c.Dependencies.WinetricksVerbs),
		ExtraDeps:       len(c.Dependencies.ExtraDeps),
		RegistryKeys:    len(c.RegistryKeys),
		FolderMounts:    len(c.FolderMounts),
	}
}

// TokenizeGamescopeOptions splits the raw additional-options text into the
// tokens the backend receives. Multi-line input yields one token per
// non-empty line; single-line input is one token as-is, spaces included.
func TokenizeGamescopeOptions(raw string) []string {
	if raw == "" {
		return nil
	}
	if !strings.Contains(raw, "\n") {
		return []string{raw}
	}
	var tokens []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line != "" {
			tokens = append(tokens, line)
		}
	}
	return tokens
}
