package validate

import (
	"strings"

	"lpm/internal/locale"
)

// EnvVarName validates an environment variable name.
func EnvVarName(raw string, loc locale.Locale) Result {
	if raw == "" {
		return Result{Err: loc.T("value.empty")}
	}
	if !envVarNameRe.MatchString(raw) {
		return Result{Err: loc.T("envvar.name")}
	}
	return Result{}
}

// DLLName validates a DLL override name. Path separators are called out
// separately because they are the most common mistake (pasting a full path).
func DLLName(raw string, loc locale.Locale) Result {
	if raw == "" {
		return Result{Err: loc.T("value.empty")}
	}
	if strings.ContainsAny(raw, `/\`) {
		return Result{Err: loc.T("dll.path_sep")}
	}
	if !dllNameRe.MatchString(raw) {
		return Result{Err: loc.T("dll.bad_chars")}
	}
	return Result{}
}

// FriendlyName validates a Windows-style display name (drive labels,
// shortcut names). Empty is acceptable; the consuming field decides whether
// a value is required.
func FriendlyName(raw string, loc locale.Locale) Result {
	if raw == "" {
		return Result{}
	}
	if hasControlChars(raw) {
		return Result{Err: loc.T("value.control_chars")}
	}
	if strings.ContainsAny(raw, `<>:"/\|?*`) {
		return Result{Err: loc.T("friendly.bad_chars")}
	}
	if strings.HasSuffix(raw, " ") || strings.HasSuffix(raw, ".") {
		return Result{Err: loc.T("friendly.trailing")}
	}
	return Result{}
}

// DriveSerial validates a drive volume serial: 1-16 hex digits with an
// optional 0x prefix.
func DriveSerial(raw string, loc locale.Locale) Result {
	if !driveSerialRe.MatchString(raw) {
		return Result{Err: loc.T("serial.format")}
	}
	return Result{}
}

// FileName validates a single file or folder name (no path).
func FileName(raw string, loc locale.Locale) Result {
	if raw == "" {
		return Result{Err: loc.T("value.empty")}
	}
	if raw == "." || raw == ".." {
		return Result{Err: loc.T("filename.reserved")}
	}
	if strings.ContainsAny(raw, `/\`) {
		return Result{Err: loc.T("filename.path_sep")}
	}
	if hasControlChars(raw) || strings.ContainsAny(raw, invalidSegmentChars) {
		return Result{Err: loc.T("filename.bad_chars")}
	}
	return Result{}
}
