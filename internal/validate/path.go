package validate

import (
	"strings"

	"lpm/internal/locale"
)

// PathKind distinguishes file paths from directory paths where the rules
// differ (a file path cannot end with a slash).
type PathKind int

const (
	PathDir PathKind = iota
	PathFile
)

// RelativePathOptions tunes RelativeGamePath.
type RelativePathOptions struct {
	Kind PathKind
	// AllowDot accepts "" and "." as meaning the game root itself.
	AllowDot bool
}

// RelativeGamePath validates a path that must resolve inside the game root:
// forward slashes only, no absolute prefixes, no empty or dot segments. A
// single leading "./" is tolerated and not treated as a "." segment.
func RelativeGamePath(raw string, loc locale.Locale, opts RelativePathOptions) Result {
	if raw == "" {
		if opts.AllowDot {
			return Result{}
		}
		return Result{Err: loc.T("value.empty")}
	}
	if raw == "." {
		if opts.AllowDot {
			return Result{}
		}
		return Result{Err: loc.T("relative.dot_segment")}
	}
	if hasControlChars(raw) {
		return Result{Err: loc.T("value.control_chars")}
	}
	if strings.HasPrefix(raw, "/") || looksWindows(raw) {
		return Result{Err: loc.T("relative.absolute")}
	}
	if strings.ContainsRune(raw, '\\') {
		return Result{Err: loc.T("relative.backslash")}
	}
	if strings.Contains(raw, "//") {
		return Result{Err: loc.T("relative.double_slash")}
	}

	path := strings.TrimPrefix(raw, "./")
	if path == "" {
		// "./" names the root itself, same as "."
		if opts.AllowDot && opts.Kind == PathDir {
			return Result{}
		}
		return Result{Err: loc.T("relative.dot_segment")}
	}
	if strings.HasSuffix(path, "/") {
		if opts.Kind == PathFile {
			return Result{Err: loc.T("relative.trailing_slash")}
		}
		path = strings.TrimSuffix(path, "/")
	}

	for _, seg := range strings.Split(path, "/") {
		if seg == "." || seg == ".." {
			return Result{Err: loc.T("relative.dot_segment")}
		}
		if strings.ContainsAny(seg, invalidSegmentChars) {
			return Result{Err: loc.T("relative.bad_chars")}
		}
	}
	return Result{}
}

// WindowsPath validates a Windows-side path: a drive-letter root (X:\) or a
// UNC prefix is required. Forward slashes are accepted and normalized to
// backslashes, surfaced as a hint when the normalization changed the value.
// Linux-style input is rejected with a hint suggesting the Wine Z: drive
// equivalent.
func WindowsPath(raw string, loc locale.Locale) Result {
	if raw == "" {
		return Result{Err: loc.T("value.empty")}
	}
	if hasControlChars(raw) {
		return Result{Err: loc.T("value.control_chars")}
	}
	if strings.HasPrefix(raw, "/") {
		return Result{
			Err:  loc.T("windows.linux_like"),
			Hint: "Z:" + toBackslashes(raw),
		}
	}

	normalized := toBackslashes(raw)

	var tail string
	switch {
	case len(normalized) >= 3 && winDriveRe.MatchString(normalized):
		tail = normalized[2:]
	case winUNCRe.MatchString(normalized):
		tail = normalized[2:]
	default:
		return Result{Err: loc.T("windows.root")}
	}

	if strings.ContainsAny(tail, invalidSegmentChars) {
		return Result{Err: loc.T("windows.bad_chars")}
	}

	if normalized != raw {
		return Result{Hint: normalized}
	}
	return Result{}
}

// LinuxPath validates a host-side absolute path.
func LinuxPath(raw string, loc locale.Locale, required bool) Result {
	if raw == "" {
		if required {
			return Result{Err: loc.T("value.empty")}
		}
		return Result{}
	}
	if hasControlChars(raw) {
		return Result{Err: loc.T("value.control_chars")}
	}
	if looksWindows(raw) || strings.ContainsRune(raw, '\\') {
		return Result{Err: loc.T("linux.windows_like")}
	}
	if !strings.HasPrefix(raw, "/") {
		return Result{Err: loc.T("linux.leading_slash")}
	}
	return Result{}
}

// WrapperExecutable validates the executable field of a wrapper command.
// Arguments belong in the separate args field, so whitespace is only
// tolerated in absolute paths.
func WrapperExecutable(raw string, loc locale.Locale) Result {
	if raw == "" {
		return Result{Err: loc.T("value.empty")}
	}
	if hasControlChars(raw) {
		return Result{Err: loc.T("value.control_chars")}
	}
	if looksWindows(raw) || strings.ContainsRune(raw, '\\') {
		return Result{Err: loc.T("wrapper.windows_like")}
	}
	if !strings.HasPrefix(raw, "/") && strings.ContainsAny(raw, " \t") {
		return Result{Err: loc.T("wrapper.whitespace")}
	}
	return Result{}
}
