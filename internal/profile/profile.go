// Package profile defines the launch profile domain model: a single nested
// GameConfig record holding every user-editable setting, serialized to JSON
// for the host-process backend. A config is built once by NewDefault and then
// only ever replaced whole via the copy-on-write mutators; nothing mutates a
// shared value in place.
package profile

import (
	"encoding/json"
	"fmt"
	"slices"
)

// GameConfig is the root record of a launch profile. Field names and nesting
// match the exported JSON payload exactly (snake_case keys).
type GameConfig struct {
	GameName        string        `json:"game_name"`
	ExeHash         string        `json:"exe_hash"`
	RelativeExePath string        `json:"relative_exe_path"`
	Runner          Runner        `json:"runner"`
	Environment     Environment   `json:"environment"`
	Compatibility   Compatibility `json:"compatibility"`
	Winecfg         Winecfg       `json:"winecfg"`
	Dependencies    Dependencies  `json:"dependencies"`
	RegistryKeys    []RegistryKey `json:"registry_keys"`
	FolderMounts    []FolderMount `json:"folder_mounts"`
	Scripts         Scripts       `json:"scripts"`
}

// RunnerKind is the runtime preference.
type RunnerKind string

const (
	RunnerAuto   RunnerKind = "auto"
	RunnerProton RunnerKind = "proton"
	RunnerWine   RunnerKind = "wine"
)

// RunnerKinds lists the runtime preferences in display order.
func RunnerKinds() []RunnerKind {
	return []RunnerKind{RunnerAuto, RunnerProton, RunnerWine}
}

// Runner holds the runtime preference and its tuning flags.
type Runner struct {
	Kind         RunnerKind   `json:"kind"`
	Version      string       `json:"version"`
	Esync        bool         `json:"esync"`
	Fsync        bool         `json:"fsync"`
	UMU          FeatureState `json:"umu"`
	SteamRuntime FeatureState `json:"steam_runtime"`
}

// Gamescope holds the gamescope compositor settings. Resolution is derived:
// nil unless both width and height are non-empty, in which case it is exactly
// "{width}x{height}". SetGamescopeSize and Normalize keep it in sync.
type Gamescope struct {
	State             FeatureState `json:"state"`
	OutputWidth       string       `json:"output_width"`
	OutputHeight      string       `json:"output_height"`
	Resolution        *string      `json:"resolution"`
	AdditionalOptions string       `json:"additional_options"`
}

// Environment groups the performance overlays and custom variables.
type Environment struct {
	Gamescope  Gamescope         `json:"gamescope"`
	Gamemode   FeatureState      `json:"gamemode"`
	MangoHud   FeatureState      `json:"mangohud"`
	CustomVars map[string]string `json:"custom_vars"`
}

// ReservedEnvVars are owned by the runtime and may never appear in the
// custom-vars map.
var ReservedEnvVars = []string{"WINEPREFIX", "PROTON_VERB"}

// WrapperCommand is an extra command wrapped around the launch command line.
type WrapperCommand struct {
	State      FeatureState `json:"state"`
	Executable string       `json:"executable"`
	Args       []string     `json:"args"`
}

// AntiCheat holds the anti-cheat runtime policies.
type AntiCheat struct {
	EasyAntiCheat FeatureState `json:"easy_anti_cheat"`
	BattlEye      FeatureState `json:"battleye"`
}

// Compatibility groups Wine feature toggles, wrappers and anti-cheat runtimes.
type Compatibility struct {
	WineWayland FeatureState     `json:"wine_wayland"`
	HDR         FeatureState     `json:"hdr"`
	Staging     FeatureState     `json:"staging"`
	Wrappers    []WrapperCommand `json:"wrappers"`
	AntiCheat   AntiCheat        `json:"anti_cheat"`
}

// OverrideMode is a winecfg DLL override load order.
type OverrideMode string

const (
	OverrideNative        OverrideMode = "native"
	OverrideBuiltin       OverrideMode = "builtin"
	OverrideNativeBuiltin OverrideMode = "native,builtin"
	OverrideBuiltinNative OverrideMode = "builtin,native"
	OverrideDisabled      OverrideMode = "disabled"
)

// OverrideModes lists the DLL override modes in display order.
func OverrideModes() []OverrideMode {
	return []OverrideMode{
		OverrideNative,
		OverrideBuiltin,
		OverrideNativeBuiltin,
		OverrideBuiltinNative,
		OverrideDisabled,
	}
}

// DLLOverride is one winecfg DLL override entry. DLL names are unique per
// list; duplicates are rejected at entry time, never silently merged.
type DLLOverride struct {
	DLL  string       `json:"dll"`
	Mode OverrideMode `json:"mode"`
}

// DriveType is a winecfg drive type.
type DriveType string

const (
	DriveFixed   DriveType = "fixed"
	DriveCDROM   DriveType = "cdrom"
	DriveFloppy  DriveType = "floppy"
	DriveNetwork DriveType = "network"
)

// DriveTypes lists the drive types in display order.
func DriveTypes() []DriveType {
	return []DriveType{DriveFixed, DriveCDROM, DriveFloppy, DriveNetwork}
}

// ReservedDriveLetter is present in every config and cannot be removed or
// reassigned; user drives are drawn from DriveLetters.
const ReservedDriveLetter = "Z"

// DriveLetters returns the assignable letters D through Y.
func DriveLetters() []string {
	letters := make([]string, 0, 'Y'-'D'+1)
	for c := 'D'; c <= 'Y'; c++ {
		letters = append(letters, string(c))
	}
	return letters
}

// Drive maps a Windows drive letter to a host path.
type Drive struct {
	Letter    string    `json:"letter"`
	HostPath  string    `json:"host_path"`
	DriveType DriveType `json:"drive_type"`
	Label     string    `json:"label"`
	Serial    string    `json:"serial"`
}

// FolderKeys lists the Windows shell folders that can be redirected.
func FolderKeys() []string {
	return []string{"desktop", "documents", "downloads", "music", "pictures", "videos"}
}

// DesktopFolder redirects one Windows shell folder to a host path. There is
// at most one entry per folder key.
type DesktopFolder struct {
	FolderKey    string `json:"folder_key"`
	ShortcutName string `json:"shortcut_name"`
	LinuxPath    string `json:"linux_path"`
}

// Winecfg groups the Windows-compatibility-layer knobs.
type Winecfg struct {
	DLLOverrides             []DLLOverride        `json:"dll_overrides"`
	VirtualDesktop           WinecfgFeaturePolicy `json:"virtual_desktop"`
	VirtualDesktopResolution string               `json:"virtual_desktop_resolution"`
	ScreenDPI                *int                 `json:"screen_dpi"`
	Drives                   []Drive              `json:"drives"`
	DesktopFolders           []DesktopFolder      `json:"desktop_folders"`
	AudioDriver              *string              `json:"audio_driver"`
}

// ScreenDPI bounds, inclusive.
const (
	MinScreenDPI = 96
	MaxScreenDPI = 480
)

// ExtraDependency is a system dependency the backend should verify before
// launch. Names are unique.
type ExtraDependency struct {
	Name          string       `json:"name"`
	State         FeatureState `json:"state"`
	CheckCommands []string     `json:"check_commands"`
	CheckEnvVars  []string     `json:"check_env_vars"`
	CheckPaths    []string     `json:"check_paths"`
}

// Dependencies groups winetricks verbs and extra system dependencies.
type Dependencies struct {
	WinetricksVerbs []string          `json:"winetricks_verbs"`
	ExtraDeps       []ExtraDependency `json:"extra_dependencies"`
}

// RegistryKey is one registry value to apply inside the prefix. The
// uniqueness key is (path, name), case-insensitive.
type RegistryKey struct {
	Path      string `json:"path"`
	Name      string `json:"name"`
	ValueType string `json:"value_type"`
	Value     string `json:"value"`
}

// FolderMount binds a directory inside the game root to a Windows path.
type FolderMount struct {
	SourceRelativePath    string `json:"source_relative_path"`
	TargetWindowsPath     string `json:"target_windows_path"`
	CreateSourceIfMissing bool   `json:"create_source_if_missing"`
}

// Scripts holds the pre- and post-launch shell script bodies.
type Scripts struct {
	PreLaunch  string `json:"pre_launch"`
	PostLaunch string `json:"post_launch"`
}

// Clone returns a deep copy. Mutators clone before changing anything, so a
// GameConfig handed out by the store is never aliased by a later patch.
func (c GameConfig) Clone() GameConfig {
	n := c

	if c.Compatibility.Wrappers != nil {
		n.Compatibility.Wrappers = make([]WrapperCommand, len(c.Compatibility.Wrappers))
		for i, w := range c.Compatibility.Wrappers {
			w.Args = slices.Clone(w.Args)
			n.Compatibility.Wrappers[i] = w
		}
	}

	if c.Environment.Gamescope.Resolution != nil {
		r := *c.Environment.Gamescope.Resolution
		n.Environment.Gamescope.Resolution = &r
	}
	if c.Environment.CustomVars != nil {
		n.Environment.CustomVars = make(map[string]string, len(c.Environment.CustomVars))
		for k, v := range c.Environment.CustomVars {
			n.Environment.CustomVars[k] = v
		}
	}

	n.Winecfg.DLLOverrides = slices.Clone(c.Winecfg.DLLOverrides)
	n.Winecfg.Drives = slices.Clone(c.Winecfg.Drives)
	n.Winecfg.DesktopFolders = slices.Clone(c.Winecfg.DesktopFolders)
	if c.Winecfg.ScreenDPI != nil {
		dpi := *c.Winecfg.ScreenDPI
		n.Winecfg.ScreenDPI = &dpi
	}
	if c.Winecfg.AudioDriver != nil {
		drv := *c.Winecfg.AudioDriver
		n.Winecfg.AudioDriver = &drv
	}

	n.Dependencies.WinetricksVerbs = slices.Clone(c.Dependencies.WinetricksVerbs)
	if c.Dependencies.ExtraDeps != nil {
		n.Dependencies.ExtraDeps = make([]ExtraDependency, len(c.Dependencies.ExtraDeps))
		for i, d := range c.Dependencies.ExtraDeps {
			d.CheckCommands = slices.Clone(d.CheckCommands)
			d.CheckEnvVars = slices.Clone(d.CheckEnvVars)
			d.CheckPaths = slices.Clone(d.CheckPaths)
			n.Dependencies.ExtraDeps[i] = d
		}
	}

	n.RegistryKeys = slices.Clone(c.RegistryKeys)
	n.FolderMounts = slices.Clone(c.FolderMounts)

	return n
}

// Normalize recomputes derived fields and replaces nil collections with
// empty ones. Applied after decoding, so a loaded profile can never carry a
// stale resolution string or a nil list.
func (c GameConfig) Normalize() GameConfig {
	n := c.Clone()
	n.Environment.Gamescope.Resolution = BuildWxH(
		n.Environment.Gamescope.OutputWidth,
		n.Environment.Gamescope.OutputHeight,
	)
	if n.Environment.CustomVars == nil {
		n.Environment.CustomVars = map[string]string{}
	}
	if n.Compatibility.Wrappers == nil {
		n.Compatibility.Wrappers = []WrapperCommand{}
	}
	if n.Winecfg.DLLOverrides == nil {
		n.Winecfg.DLLOverrides = []DLLOverride{}
	}
	if n.Winecfg.Drives == nil {
		n.Winecfg.Drives = []Drive{}
	}
	if n.Winecfg.DesktopFolders == nil {
		n.Winecfg.DesktopFolders = []DesktopFolder{}
	}
	if n.Dependencies.WinetricksVerbs == nil {
		n.Dependencies.WinetricksVerbs = []string{}
	}
	if n.Dependencies.ExtraDeps == nil {
		n.Dependencies.ExtraDeps = []ExtraDependency{}
	}
	if n.RegistryKeys == nil {
		n.RegistryKeys = []RegistryKey{}
	}
	if n.FolderMounts == nil {
		n.FolderMounts = []FolderMount{}
	}
	return n
}

// EncodeJSON returns the canonical serialization of the profile: the same
// bytes shown in the review preview and sent to the backend.
func (c GameConfig) EncodeJSON() ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding profile: %w", err)
	}
	return data, nil
}

// DecodeJSON parses a serialized profile and normalizes it.
func DecodeJSON(data []byte) (GameConfig, error) {
	var c GameConfig
	if err := json.Unmarshal(data, &c); err != nil {
		return GameConfig{}, fmt.Errorf("parsing profile: %w", err)
	}
	return c.Normalize(), nil
}
