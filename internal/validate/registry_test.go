package validate_test

import (
	"testing"

	"lpm/internal/locale"
	"lpm/internal/validate"

	"github.com/stretchr/testify/assert"
)

func TestRegistryPath(t *testing.T) {
	t.Run("forward slashes normalized as hint", func(t *testing.T) {
		res := validate.RegistryPath("HKCU/Software/Test", locale.EnUS)
		assert.True(t, res.OK(), "err=%q", res.Err)
		assert.Equal(t, `HKCU\Software\Test`, res.Hint)
	})

	t.Run("canonical path has no hint", func(t *testing.T) {
		res := validate.RegistryPath(`HKCU\Software\Test`, locale.EnUS)
		assert.True(t, res.OK())
		assert.Empty(t, res.Hint)
	})

	tests := []struct {
		name   string
		raw    string
		wantOK bool
	}{
		{"empty", "", false},
		{"linux shaped", "/etc/registry", false},
		{"windows shaped", `C:\registry`, false},
		{"unknown hive", `HKXX\Software`, false},
		{"long form hive", `HKEY_LOCAL_MACHINE\System`, true},
		{"lowercase hive", `hkcu\Software`, true},
		{"bare hive", "HKLM", true},
		{"control chars", "HKCU\\Soft\x00ware", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := validate.RegistryPath(tt.raw, locale.EnUS)
			assert.Equal(t, tt.wantOK, res.OK(), "err=%q", res.Err)
		})
	}
}

func TestRegistryValueType(t *testing.T) {
	t.Run("lowercase hints canonical form", func(t *testing.T) {
		res := validate.RegistryValueType("reg_sz", locale.EnUS)
		assert.True(t, res.OK())
		assert.Equal(t, "REG_SZ", res.Hint)
	})

	t.Run("canonical has no hint", func(t *testing.T) {
		res := validate.RegistryValueType("REG_DWORD", locale.EnUS)
		assert.True(t, res.OK())
		assert.Empty(t, res.Hint)
	})

	tests := []struct {
		raw    string
		wantOK bool
	}{
		{"REG_SZ", true},
		{"REG_EXPAND_SZ", true},
		{"REG_MULTI_SZ", true},
		{"REG_DWORD", true},
		{"REG_QWORD", true},
		{"REG_BINARY", true},
		{"REG_NONE", true},
		{"reg_qword", true},
		{"REG_BOGUS", false},
		{"", false},
	}
	for _, tt := range tests {
		res := validate.RegistryValueType(tt.raw, locale.EnUS)
		assert.Equal(t, tt.wantOK, res.OK(), "type %q err=%q", tt.raw, res.Err)
	}
}
