package main

import (
	"testing"

	"lpm/internal/locale"
	"lpm/internal/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile(t *testing.T) profile.GameConfig {
	t.Helper()
	cfg := profile.NewDefault()
	cfg.GameName = "Stellar Drift"
	cfg.RelativeExePath = "bin/game.exe"
	return cfg
}

func TestCollectProblems_ValidProfile(t *testing.T) {
	problems := collectProblems(validProfile(t), locale.EnUS)
	assert.Empty(t, problems)
}

func TestCollectProblems_FlagsBadFields(t *testing.T) {
	cfg := validProfile(t)
	cfg.RelativeExePath = "/abs/game.exe"
	cfg.Environment.CustomVars["WINEPREFIX"] = "/tmp/prefix"
	cfg.RegistryKeys = []profile.RegistryKey{
		{Path: "NOPE\\Software", Name: "Test", ValueType: "REG_SZ", Value: "1"},
	}
	cfg.Winecfg.DLLOverrides = []profile.DLLOverride{
		{DLL: "d3d11", Mode: "sideways"},
	}
	dpi := 900
	cfg.Winecfg.ScreenDPI = &dpi

	problems := collectProblems(cfg, locale.EnUS)

	fields := make([]string, len(problems))
	for i, p := range problems {
		fields[i] = p.Field
	}
	assert.Contains(t, fields, "relative_exe_path")
	assert.Contains(t, fields, "environment.custom_vars[WINEPREFIX]")
	assert.Contains(t, fields, "registry_keys[0].path")
	assert.Contains(t, fields, "winecfg.dll_overrides[0].mode")
	assert.Contains(t, fields, "winecfg.screen_dpi")
}

func TestCollectProblems_MountsCarryHints(t *testing.T) {
	cfg := validProfile(t)
	cfg.FolderMounts = []profile.FolderMount{
		{SourceRelativePath: "saves", TargetWindowsPath: "/mnt/share"},
	}

	problems := collectProblems(cfg, locale.EnUS)
	require.Len(t, problems, 1)
	assert.Equal(t, "folder_mounts[0].target_windows_path", problems[0].Field)
	assert.Equal(t, `Z:\mnt\share`, problems[0].Hint)
}

func TestCollectProblems_BothLocalesAgree(t *testing.T) {
	cfg := validProfile(t)
	cfg.RelativeExePath = "../escape.exe"

	en := collectProblems(cfg, locale.EnUS)
	pt := collectProblems(cfg, locale.PtBR)

	require.Len(t, en, 1)
	require.Len(t, pt, 1)
	assert.Equal(t, en[0].Field, pt[0].Field)
	assert.NotEqual(t, en[0].Error, pt[0].Error, "messages are localized")
}
