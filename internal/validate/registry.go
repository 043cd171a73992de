package validate

import (
	"strings"

	"lpm/internal/locale"
)

// registryHives maps every accepted hive prefix (short and long form,
// uppercase) to itself. Matching is case-insensitive.
var registryHives = map[string]bool{
	"HKCU":                true,
	"HKLM":                true,
	"HKCR":                true,
	"HKU":                 true,
	"HKCC":                true,
	"HKEY_CURRENT_USER":   true,
	"HKEY_LOCAL_MACHINE":  true,
	"HKEY_CLASSES_ROOT":   true,
	"HKEY_USERS":          true,
	"HKEY_CURRENT_CONFIG": true,
}

// registryValueTypes are the accepted canonical value types.
var registryValueTypes = map[string]bool{
	"REG_SZ":        true,
	"REG_EXPAND_SZ": true,
	"REG_MULTI_SZ":  true,
	"REG_DWORD":     true,
	"REG_QWORD":     true,
	"REG_BINARY":    true,
	"REG_NONE":      true,
}

// RegistryValueTypes lists the accepted value types in canonical order.
func RegistryValueTypes() []string {
	return []string{
		"REG_SZ",
		"REG_EXPAND_SZ",
		"REG_MULTI_SZ",
		"REG_DWORD",
		"REG_QWORD",
		"REG_BINARY",
		"REG_NONE",
	}
}

// RegistryPath validates a registry key path: a recognized hive prefix is
// required, forward slashes are normalized to backslashes with a hint.
func RegistryPath(raw string, loc locale.Locale) Result {
	if raw == "" {
		return Result{Err: loc.T("value.empty")}
	}
	if hasControlChars(raw) {
		return Result{Err: loc.T("value.control_chars")}
	}
	if strings.HasPrefix(raw, "/") || looksWindows(raw) {
		return Result{Err: loc.T("registry.path_shaped")}
	}

	normalized := toBackslashes(raw)
	hive, _, _ := strings.Cut(normalized, `\`)
	if !registryHives[strings.ToUpper(hive)] {
		return Result{Err: loc.T("registry.hive")}
	}

	if normalized != raw {
		return Result{Hint: normalized}
	}
	return Result{}
}

// RegistryValueType validates a registry value type, case-insensitively.
// When the input differs from the canonical uppercase form the canonical
// form is returned as a hint.
func RegistryValueType(raw string, loc locale.Locale) Result {
	if raw == "" {
		return Result{Err: loc.T("value.empty")}
	}
	canonical := strings.ToUpper(strings.TrimSpace(raw))
	if !registryValueTypes[canonical] {
		return Result{Err: loc.T("registry.type")}
	}
	if canonical != raw {
		return Result{Hint: canonical}
	}
	return Result{}
}
