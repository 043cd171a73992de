package validate_test

import (
	"testing"

	"lpm/internal/locale"
	"lpm/internal/validate"

	"github.com/stretchr/testify/assert"
)

func TestRelativeGamePath(t *testing.T) {
	file := validate.RelativePathOptions{Kind: validate.PathFile}
	dir := validate.RelativePathOptions{Kind: validate.PathDir}
	dot := validate.RelativePathOptions{Kind: validate.PathDir, AllowDot: true}

	tests := []struct {
		name   string
		raw    string
		opts   validate.RelativePathOptions
		wantOK bool
	}{
		{"empty rejected", "", file, false},
		{"empty allowed with AllowDot", "", dot, true},
		{"bare dot allowed with AllowDot", ".", dot, true},
		{"bare dot rejected otherwise", ".", file, false},
		{"dot slash rejected for file", "./", file, false},
		{"dot slash rejected without AllowDot", "./", dir, false},
		{"dot slash allowed with AllowDot", "./", dot, true},
		{"windows absolute", `C:\Games\g.exe`, file, false},
		{"windows absolute forward", "C:/Games/g.exe", file, false},
		{"unc absolute", `\\server\share\g.exe`, file, false},
		{"linux absolute", "/home/u/g.exe", file, false},
		{"backslash separator", `data\core.dll`, file, false},
		{"double slash", "a//b", file, false},
		{"parent segment", "../x", file, false},
		{"dot segment inside", "a/./b", file, false},
		{"leading dot slash passes", "./data/core.dll", file, true},
		{"plain file passes", "bin/game.exe", file, true},
		{"invalid segment chars", "data/a?b", file, false},
		{"control chars", "data/\x01bad", file, false},
		{"trailing slash on file", "data/", file, false},
		{"trailing slash on dir", "data/", dir, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := validate.RelativeGamePath(tt.raw, locale.EnUS, tt.opts)
			assert.Equal(t, tt.wantOK, res.OK(), "err=%q", res.Err)
		})
	}
}

func TestRelativeGamePath_LocalesAgree(t *testing.T) {
	inputs := []string{"", "/abs", `C:\x`, "a//b", "../x", "ok/path", "a?b"}
	for _, raw := range inputs {
		en := validate.RelativeGamePath(raw, locale.EnUS, validate.RelativePathOptions{Kind: validate.PathFile})
		pt := validate.RelativeGamePath(raw, locale.PtBR, validate.RelativePathOptions{Kind: validate.PathFile})
		assert.Equal(t, en.OK(), pt.OK(), "locales disagree on %q", raw)
	}
}

func TestWindowsPath(t *testing.T) {
	t.Run("linux input hints Z drive", func(t *testing.T) {
		res := validate.WindowsPath("/mnt/share", locale.EnUS)
		assert.False(t, res.OK())
		assert.Equal(t, `Z:\mnt\share`, res.Hint)
	})

	t.Run("forward slashes normalized as hint", func(t *testing.T) {
		res := validate.WindowsPath(`C:/Program Files/Game`, locale.EnUS)
		assert.True(t, res.OK())
		assert.Equal(t, `C:\Program Files\Game`, res.Hint)
	})

	t.Run("clean path has no hint", func(t *testing.T) {
		res := validate.WindowsPath(`C:\Games`, locale.EnUS)
		assert.True(t, res.OK())
		assert.Empty(t, res.Hint)
	})

	tests := []struct {
		name   string
		raw    string
		wantOK bool
	}{
		{"empty", "", false},
		{"control chars", "C:\\a\x1fb", false},
		{"no root", `Games\g.exe`, false},
		{"bare drive letter", "C:", false},
		{"unc passes", `\\server\share\dir`, true},
		{"unc missing share", `\\server`, false},
		{"bad chars in tail", `C:\a|b`, false},
		{"question mark in tail", `C:\a?`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := validate.WindowsPath(tt.raw, locale.EnUS)
			assert.Equal(t, tt.wantOK, res.OK(), "err=%q", res.Err)
		})
	}
}

func TestLinuxPath(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		required bool
		wantOK   bool
	}{
		{"empty required", "", true, false},
		{"empty optional", "", false, true},
		{"windows drive", `C:\x`, true, false},
		{"backslash", `a\b`, true, false},
		{"relative", "home/u", true, false},
		{"absolute passes", "/home/u", true, true},
		{"control chars", "/home/\x02u", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := validate.LinuxPath(tt.raw, locale.EnUS, tt.required)
			assert.Equal(t, tt.wantOK, res.OK(), "err=%q", res.Err)
		})
	}
}

func TestWrapperExecutable(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		wantOK bool
	}{
		{"empty", "", false},
		{"windows path", `C:\wrap.exe`, false},
		{"bare command", "mangohud", true},
		{"command with args", "mangohud --dlsym", false},
		{"absolute with spaces", "/opt/my tools/wrap", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := validate.WrapperExecutable(tt.raw, locale.EnUS)
			assert.Equal(t, tt.wantOK, res.OK(), "err=%q", res.Err)
		})
	}
}
