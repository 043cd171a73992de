package profile

import (
	"fmt"
	"slices"
	"strings"
)

// The With*/Without* helpers are the only sanctioned way to change a profile:
// each clones the receiver, applies one change and returns the new value, so
// callers can feed them straight into the store's patch operation. Keyed
// lists reject duplicate keys; replacing an entry is an explicit update, not
// a silent merge.

// WithGamescopeSize sets the output size and recomputes the derived
// resolution string.
func (c GameConfig) WithGamescopeSize(width, height string) GameConfig {
	n := c.Clone()
	n.Environment.Gamescope.OutputWidth = width
	n.Environment.Gamescope.OutputHeight = height
	n.Environment.Gamescope.Resolution = BuildWxH(width, height)
	return n
}

// WithCustomVar sets one custom environment variable. Names reserved by the
// runtime are rejected.
func (c GameConfig) WithCustomVar(name, value string) (GameConfig, error) {
	if slices.Contains(ReservedEnvVars, name) {
		return c, fmt.Errorf("%w: %s", ErrReservedEnvVar, name)
	}
	n := c.Clone()
	n.Environment.CustomVars[name] = value
	return n, nil
}

// WithoutCustomVar removes a custom environment variable.
func (c GameConfig) WithoutCustomVar(name string) GameConfig {
	n := c.Clone()
	delete(n.Environment.CustomVars, name)
	return n
}

// registryKeyIndex finds the entry with the given (path, name) key,
// case-insensitive, or -1.
func registryKeyIndex(keys []RegistryKey, path, name string) int {
	for i, k := range keys {
		if strings.EqualFold(k.Path, path) && strings.EqualFold(k.Name, name) {
			return i
		}
	}
	return -1
}

// WithRegistryKey appends a registry key. The (path, name) tuple is the
// identity, compared case-insensitively.
func (c GameConfig) WithRegistryKey(key RegistryKey) (GameConfig, error) {
	if registryKeyIndex(c.RegistryKeys, key.Path, key.Name) >= 0 {
		return c, fmt.Errorf("%w: %s\\%s", ErrDuplicateRegistryKey, key.Path, key.Name)
	}
	n := c.Clone()
	n.RegistryKeys = append(n.RegistryKeys, key)
	return n, nil
}

// WithUpdatedRegistryKey replaces the entry matching key's (path, name).
func (c GameConfig) WithUpdatedRegistryKey(key RegistryKey) (GameConfig, error) {
	idx := registryKeyIndex(c.RegistryKeys, key.Path, key.Name)
	if idx < 0 {
		return c, fmt.Errorf("%w: %s\\%s", ErrEntryNotFound, key.Path, key.Name)
	}
	n := c.Clone()
	n.RegistryKeys[idx] = key
	return n, nil
}

// WithoutRegistryKey removes the entry matching (path, name).
func (c GameConfig) WithoutRegistryKey(path, name string) GameConfig {
	idx := registryKeyIndex(c.RegistryKeys, path, name)
	if idx < 0 {
		return c
	}
	n := c.Clone()
	n.RegistryKeys = slices.Delete(n.RegistryKeys, idx, idx+1)
	return n
}

// MergeRegistryImport folds imported entries into the profile. Identity is
// the full (path, name, value_type, value) tuple with path and name compared
// case-insensitively: exact duplicates are skipped, an entry whose
// (path, name) exists with a different type or value replaces it, and
// everything else is added. Returns the counts for the status message.
func MergeRegistryImport(c GameConfig, entries []RegistryKey) (merged GameConfig, added, replaced, skipped int) {
	n := c.Clone()
	for _, e := range entries {
		idx := registryKeyIndex(n.RegistryKeys, e.Path, e.Name)
		switch {
		case idx < 0:
			n.RegistryKeys = append(n.RegistryKeys, e)
			added++
		case n.RegistryKeys[idx].ValueType == e.ValueType && n.RegistryKeys[idx].Value == e.Value:
			skipped++
		default:
			n.RegistryKeys[idx] = e
			replaced++
		}
	}
	return n, added, replaced, skipped
}

// WithDLLOverride appends a DLL override. DLL names are unique per list,
// compared case-insensitively.
func (c GameConfig) WithDLLOverride(o DLLOverride) (GameConfig, error) {
	for _, existing := range c.Winecfg.DLLOverrides {
		if strings.EqualFold(existing.DLL, o.DLL) {
			return c, fmt.Errorf("%w: %s", ErrDuplicateDLL, o.DLL)
		}
	}
	n := c.Clone()
	n.Winecfg.DLLOverrides = append(n.Winecfg.DLLOverrides, o)
	return n, nil
}

// WithoutDLLOverride removes the override for the given DLL name.
func (c GameConfig) WithoutDLLOverride(dll string) GameConfig {
	n := c.Clone()
	n.Winecfg.DLLOverrides = slices.DeleteFunc(n.Winecfg.DLLOverrides, func(o DLLOverride) bool {
		return strings.EqualFold(o.DLL, dll)
	})
	return n
}

// validDriveLetter reports whether letter is a single character in D..Y.
func validDriveLetter(letter string) bool {
	return len(letter) == 1 && letter[0] >= 'D' && letter[0] <= 'Y'
}

// WithDrive adds a drive. Letters are unique, drawn from D-Y; Z belongs to
// the reserved default entry.
func (c GameConfig) WithDrive(d Drive) (GameConfig, error) {
	letter := strings.ToUpper(d.Letter)
	if letter == ReservedDriveLetter {
		return c, fmt.Errorf("%w: %s", ErrReservedDrive, d.Letter)
	}
	if !validDriveLetter(letter) {
		return c, fmt.Errorf("%w: %q", ErrInvalidDriveLetter, d.Letter)
	}
	for _, existing := range c.Winecfg.Drives {
		if strings.EqualFold(existing.Letter, letter) {
			return c, fmt.Errorf("%w: %s", ErrDuplicateDrive, letter)
		}
	}
	n := c.Clone()
	d.Letter = letter
	n.Winecfg.Drives = append(n.Winecfg.Drives, d)
	return n, nil
}

// WithoutDrive removes the drive with the given letter. The reserved Z:
// entry cannot be removed.
func (c GameConfig) WithoutDrive(letter string) (GameConfig, error) {
	if strings.EqualFold(letter, ReservedDriveLetter) {
		return c, fmt.Errorf("%w: %s", ErrReservedDrive, letter)
	}
	n := c.Clone()
	n.Winecfg.Drives = slices.DeleteFunc(n.Winecfg.Drives, func(d Drive) bool {
		return strings.EqualFold(d.Letter, letter)
	})
	return n, nil
}

// WithDesktopFolder maps a shell folder. One entry per folder key.
func (c GameConfig) WithDesktopFolder(f DesktopFolder) (GameConfig, error) {
	for _, existing := range c.Winecfg.DesktopFolders {
		if strings.EqualFold(existing.FolderKey, f.FolderKey) {
			return c, fmt.Errorf("%w: %s", ErrDuplicateFolder, f.FolderKey)
		}
	}
	n := c.Clone()
	n.Winecfg.DesktopFolders = append(n.Winecfg.DesktopFolders, f)
	return n, nil
}

// WithoutDesktopFolder removes the mapping for the given folder key.
func (c GameConfig) WithoutDesktopFolder(folderKey string) GameConfig {
	n := c.Clone()
	n.Winecfg.DesktopFolders = slices.DeleteFunc(n.Winecfg.DesktopFolders, func(f DesktopFolder) bool {
		return strings.EqualFold(f.FolderKey, folderKey)
	})
	return n
}

// WithScreenDPI sets the screen DPI. Nil clears it; a set value must be
// within 96-480 inclusive.
func (c GameConfig) WithScreenDPI(dpi *int) (GameConfig, error) {
	if dpi != nil && (*dpi < MinScreenDPI || *dpi > MaxScreenDPI) {
		return c, fmt.Errorf("%w: %d", ErrDPIOutOfRange, *dpi)
	}
	n := c.Clone()
	if dpi == nil {
		n.Winecfg.ScreenDPI = nil
	} else {
		v := *dpi
		n.Winecfg.ScreenDPI = &v
	}
	return n, nil
}

// WithWinetricksVerb appends a verb. Verbs are unique.
func (c GameConfig) WithWinetricksVerb(verb string) (GameConfig, error) {
	if slices.Contains(c.Dependencies.WinetricksVerbs, verb) {
		return c, fmt.Errorf("%w: %s", ErrDuplicateVerb, verb)
	}
	n := c.Clone()
	n.Dependencies.WinetricksVerbs = append(n.Dependencies.WinetricksVerbs, verb)
	return n, nil
}

// WithoutWinetricksVerb removes a verb.
func (c GameConfig) WithoutWinetricksVerb(verb string) GameConfig {
	n := c.Clone()
	n.Dependencies.WinetricksVerbs = slices.DeleteFunc(n.Dependencies.WinetricksVerbs, func(v string) bool {
		return v == verb
	})
	return n
}

// WithExtraDependency appends an extra system dependency. Names are unique.
func (c GameConfig) WithExtraDependency(d ExtraDependency) (GameConfig, error) {
	for _, existing := range c.Dependencies.ExtraDeps {
		if strings.EqualFold(existing.Name, d.Name) {
			return c, fmt.Errorf("%w: %s", ErrDuplicateDependency, d.Name)
		}
	}
	n := c.Clone()
	n.Dependencies.ExtraDeps = append(n.Dependencies.ExtraDeps, d)
	return n, nil
}

// WithoutExtraDependency removes the dependency with the given name.
func (c GameConfig) WithoutExtraDependency(name string) GameConfig {
	n := c.Clone()
	n.Dependencies.ExtraDeps = slices.DeleteFunc(n.Dependencies.ExtraDeps, func(d ExtraDependency) bool {
		return strings.EqualFold(d.Name, name)
	})
	return n
}

// WithFolderMount appends a mount. Source paths are unique.
func (c GameConfig) WithFolderMount(m FolderMount) (GameConfig, error) {
	for _, existing := range c.FolderMounts {
		if existing.SourceRelativePath == m.SourceRelativePath {
			return c, fmt.Errorf("%w: %s", ErrDuplicateMount, m.SourceRelativePath)
		}
	}
	n := c.Clone()
	n.FolderMounts = append(n.FolderMounts, m)
	return n, nil
}

// WithoutFolderMount removes the mount with the given source path.
func (c GameConfig) WithoutFolderMount(sourceRelativePath string) GameConfig {
	n := c.Clone()
	n.FolderMounts = slices.DeleteFunc(n.FolderMounts, func(m FolderMount) bool {
		return m.SourceRelativePath == sourceRelativePath
	})
	return n
}

// WithWrapper appends a wrapper command. Wrappers are ordered and not keyed;
// the same executable may appear more than once.
func (c GameConfig) WithWrapper(w WrapperCommand) GameConfig {
	n := c.Clone()
	n.Compatibility.Wrappers = append(n.Compatibility.Wrappers, w)
	return n
}

// WithoutWrapper removes the wrapper at the given index.
func (c GameConfig) WithoutWrapper(index int) GameConfig {
	if index < 0 || index >= len(c.Compatibility.Wrappers) {
		return c
	}
	n := c.Clone()
	n.Compatibility.Wrappers = slices.Delete(n.Compatibility.Wrappers, index, index+1)
	return n
}
