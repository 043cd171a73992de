package profile_test

import (
	"path/filepath"
	"testing"

	"lpm/internal/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWxH(t *testing.T) {
	tests := []struct {
		width  string
		height string
		want   string // "" means nil
	}{
		{"1920", "1080", "1920x1080"},
		{"", "1080", ""},
		{"1920", "", ""},
		{"", "", ""},
		{"  ", "1080", ""},
		{" 2560 ", " 1440 ", "2560x1440"},
	}
	for _, tt := range tests {
		got := profile.BuildWxH(tt.width, tt.height)
		if tt.want == "" {
			assert.Nil(t, got, "(%q, %q)", tt.width, tt.height)
		} else {
			require.NotNil(t, got, "(%q, %q)", tt.width, tt.height)
			assert.Equal(t, tt.want, *got)
		}
	}
}

func TestParseWxH_RecoversSides(t *testing.T) {
	s := profile.BuildWxH("1920", "1080")
	require.NotNil(t, s)

	w, h, ok := profile.ParseWxH(*s)
	require.True(t, ok)
	assert.Equal(t, "1920", w)
	assert.Equal(t, "1080", h)

	_, _, ok = profile.ParseWxH("1920")
	assert.False(t, ok)
	_, _, ok = profile.ParseWxH("x1080")
	assert.False(t, ok)
}

func TestPrefixPath(t *testing.T) {
	assert.Empty(t, profile.PrefixPath("/data", ""))

	hash := "d2a84f4b8b650937ec8f73cd8be2c74add5a911ba64df27458ed8229da804a26"
	want := filepath.Join("/data", "prefixes", hash)
	assert.Equal(t, want, profile.PrefixPath("/data", hash))
}

func TestCountSections(t *testing.T) {
	cfg := profile.NewDefault()
	var err error
	cfg, err = cfg.WithRegistryKey(profile.RegistryKey{Path: `HKCU\A`, Name: "n"})
	require.NoError(t, err)
	cfg, err = cfg.WithWinetricksVerb("corefonts")
	require.NoError(t, err)
	cfg, err = cfg.WithCustomVar("DXVK_HUD", "fps")
	require.NoError(t, err)

	counts := profile.CountSections(cfg)
	assert.Equal(t, 1, counts.RegistryKeys)
	assert.Equal(t, 1, counts.WinetricksVerbs)
	assert.Equal(t, 1, counts.CustomVars)
	assert.Equal(t, 1, counts.Drives) // the reserved Z: entry
	assert.Zero(t, counts.DLLOverrides)
	assert.Zero(t, counts.FolderMounts)
}

func TestTokenizeGamescopeOptions(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", nil},
		// single-line input stays one token even with spaces
		{"single line", "--fullscreen -r 60", []string{"--fullscreen -r 60"}},
		{"multi line", "--fullscreen\n-r 60", []string{"--fullscreen", "-r 60"}},
		{"blank lines dropped", "--hdr\n\n--fullscreen\n", []string{"--hdr", "--fullscreen"}},
		{"crlf", "--hdr\r\n--fullscreen", []string{"--hdr", "--fullscreen"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, profile.TokenizeGamescopeOptions(tt.raw))
		})
	}
}
