// Package validate holds the stateless field validators used to gate dialog
// drafts before they are committed into a launch profile. Every validator is
// a pure function of the raw input and the locale: an empty Err means the
// value is acceptable, and Hint is advisory (usually a suggested corrected
// form) and never blocks a commit.
package validate

import (
	"regexp"
	"strings"
)

// Result is the outcome of validating a single raw input.
type Result struct {
	Err  string
	Hint string
}

// OK reports whether the value may be committed.
func (r Result) OK() bool {
	return r.Err == ""
}

const invalidSegmentChars = `<>:"|?*`

var (
	winDriveRe    = regexp.MustCompile(`^[A-Za-z]:[\\/]`)
	winUNCRe      = regexp.MustCompile(`^\\\\[^\\/]+\\[^\\/]+`)
	envVarNameRe  = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	dllNameRe     = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
	driveSerialRe = regexp.MustCompile(`^(0x)?[A-Fa-f0-9]{1,16}$`)
)

// hasControlChars reports whether s contains any character in U+0000..U+001F.
func hasControlChars(s string) bool {
	for _, r := range s {
		if r < 0x20 {
			return true
		}
	}
	return false
}

// looksWindows reports whether s is shaped like a Windows path: a drive
// letter prefix (X:\ or X:/) or a UNC prefix (\\server\share).
func looksWindows(s string) bool {
	return winDriveRe.MatchString(s) || strings.HasPrefix(s, `\\`)
}

// toBackslashes normalizes forward slashes to backslashes.
func toBackslashes(s string) string {
	return strings.ReplaceAll(s, "/", `\`)
}
