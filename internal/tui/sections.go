package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"lpm/internal/catalog"
	"lpm/internal/locale"
	"lpm/internal/profile"
	"lpm/internal/store"
	"lpm/internal/tui/views"
	"lpm/internal/validate"
)

// buildTabs binds one view per wizard tab to the shared store. Fields read
// through Get closures and write through store patches, so every tab always
// sees the latest state no matter which tab changed it.
func buildTabs(deps Deps) []editingView {
	st := deps.Store
	loc := deps.Locale

	return []editingView{
		identityForm(st, loc),
		runnerForm(st),
		environmentStack(st, loc),
		compatibilityStack(st, loc),
		winecfgStack(st, loc),
		dependenciesStack(st, loc),
		registryEditor(st, loc),
		mountsEditor(st, loc),
		scriptsForm(st),
		views.NewReview(st.Get, deps.Launcher, loc, deps.DataDir),
	}
}

// featureOptions are the enum options shared by every four-state toggle.
func featureOptions() []string {
	states := profile.FeatureStates()
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = string(s)
	}
	return out
}

// featureField binds a FeatureState value as a cycling enum field.
func featureField(st *store.Store, label string, get func(profile.GameConfig) profile.FeatureState, set func(profile.GameConfig, profile.FeatureState) profile.GameConfig) views.Field {
	return views.Field{
		Label:   label,
		Kind:    views.FieldEnum,
		Options: featureOptions(),
		Get:     func() string { return string(get(st.Get())) },
		Set: func(v string) error {
			st.Patch(func(c profile.GameConfig) profile.GameConfig {
				return set(c, profile.FeatureState(v))
			})
			return nil
		},
	}
}

// boolField binds a plain bool as an on/off enum field.
func boolField(st *store.Store, label string, get func(profile.GameConfig) bool, set func(profile.GameConfig, bool) profile.GameConfig) views.Field {
	return views.Field{
		Label:   label,
		Kind:    views.FieldEnum,
		Options: []string{"off", "on"},
		Get: func() string {
			if get(st.Get()) {
				return "on"
			}
			return "off"
		},
		Set: func(v string) error {
			st.Patch(func(c profile.GameConfig) profile.GameConfig {
				return set(c, v == "on")
			})
			return nil
		},
	}
}

// textField binds a string value as a validated text field.
func textField(st *store.Store, label string, validator func(string) validate.Result, get func(profile.GameConfig) string, set func(profile.GameConfig, string) profile.GameConfig) views.Field {
	return views.Field{
		Label:    label,
		Kind:     views.FieldText,
		Validate: validator,
		Get:      func() string { return get(st.Get()) },
		Set: func(v string) error {
			st.Patch(func(c profile.GameConfig) profile.GameConfig {
				return set(c, v)
			})
			return nil
		},
	}
}

func identityForm(st *store.Store, loc locale.Locale) views.Form {
	return views.NewForm("Identity", []views.Field{
		textField(st, "Game name",
			func(raw string) validate.Result { return validate.FriendlyName(raw, loc) },
			func(c profile.GameConfig) string { return c.GameName },
			func(c profile.GameConfig, v string) profile.GameConfig { c = c.Clone(); c.GameName = v; return c },
		),
		textField(st, "Executable path",
			func(raw string) validate.Result {
				return validate.RelativeGamePath(raw, loc, validate.RelativePathOptions{Kind: validate.PathFile})
			},
			func(c profile.GameConfig) string { return c.RelativeExePath },
			func(c profile.GameConfig, v string) profile.GameConfig {
				c = c.Clone()
				c.RelativeExePath = v
				return c
			},
		),
		textField(st, "Executable hash", nil,
			func(c profile.GameConfig) string { return c.ExeHash },
			func(c profile.GameConfig, v string) profile.GameConfig { c = c.Clone(); c.ExeHash = v; return c },
		),
	})
}

func runnerForm(st *store.Store) views.Form {
	kinds := profile.RunnerKinds()
	kindOptions := make([]string, len(kinds))
	for i, k := range kinds {
		kindOptions[i] = string(k)
	}

	return views.NewForm("Runner", []views.Field{
		{
			Label:   "Kind",
			Kind:    views.FieldEnum,
			Options: kindOptions,
			Get:     func() string { return string(st.Get().Runner.Kind) },
			Set: func(v string) error {
				st.Patch(func(c profile.GameConfig) profile.GameConfig {
					c = c.Clone()
					c.Runner.Kind = profile.RunnerKind(v)
					return c
				})
				return nil
			},
		},
		textField(st, "Version", nil,
			func(c profile.GameConfig) string { return c.Runner.Version },
			func(c profile.GameConfig, v string) profile.GameConfig {
				c = c.Clone()
				c.Runner.Version = v
				return c
			},
		),
		boolField(st, "Esync",
			func(c profile.GameConfig) bool { return c.Runner.Esync },
			func(c profile.GameConfig, v bool) profile.GameConfig { c = c.Clone(); c.Runner.Esync = v; return c },
		),
		boolField(st, "Fsync",
			func(c profile.GameConfig) bool { return c.Runner.Fsync },
			func(c profile.GameConfig, v bool) profile.GameConfig { c = c.Clone(); c.Runner.Fsync = v; return c },
		),
		featureField(st, "UMU launcher",
			func(c profile.GameConfig) profile.FeatureState { return c.Runner.UMU },
			func(c profile.GameConfig, s profile.FeatureState) profile.GameConfig {
				c = c.Clone()
				c.Runner.UMU = s
				return c
			},
		),
		featureField(st, "Steam runtime",
			func(c profile.GameConfig) profile.FeatureState { return c.Runner.SteamRuntime },
			func(c profile.GameConfig, s profile.FeatureState) profile.GameConfig {
				c = c.Clone()
				c.Runner.SteamRuntime = s
				return c
			},
		),
	})
}

func environmentStack(st *store.Store, loc locale.Locale) views.Stack {
	form := views.NewForm("Environment", []views.Field{
		featureField(st, "Gamescope",
			func(c profile.GameConfig) profile.FeatureState { return c.Environment.Gamescope.State },
			func(c profile.GameConfig, s profile.FeatureState) profile.GameConfig {
				c = c.Clone()
				c.Environment.Gamescope.State = s
				return c
			},
		),
		textField(st, "Output width", nil,
			func(c profile.GameConfig) string { return c.Environment.Gamescope.OutputWidth },
			func(c profile.GameConfig, v string) profile.GameConfig {
				return c.WithGamescopeSize(v, c.Environment.Gamescope.OutputHeight)
			},
		),
		textField(st, "Output height", nil,
			func(c profile.GameConfig) string { return c.Environment.Gamescope.OutputHeight },
			func(c profile.GameConfig, v string) profile.GameConfig {
				return c.WithGamescopeSize(c.Environment.Gamescope.OutputWidth, v)
			},
		),
		textField(st, "Additional options", nil,
			func(c profile.GameConfig) string { return c.Environment.Gamescope.AdditionalOptions },
			func(c profile.GameConfig, v string) profile.GameConfig {
				c = c.Clone()
				c.Environment.Gamescope.AdditionalOptions = v
				return c
			},
		),
		featureField(st, "Gamemode",
			func(c profile.GameConfig) profile.FeatureState { return c.Environment.Gamemode },
			func(c profile.GameConfig, s profile.FeatureState) profile.GameConfig {
				c = c.Clone()
				c.Environment.Gamemode = s
				return c
			},
		),
		featureField(st, "MangoHud",
			func(c profile.GameConfig) profile.FeatureState { return c.Environment.MangoHud },
			func(c profile.GameConfig, s profile.FeatureState) profile.GameConfig {
				c = c.Clone()
				c.Environment.MangoHud = s
				return c
			},
		),
	})

	vars := views.NewListEditor(views.ListEditorConfig{
		Title:  "Custom variables",
		Dialog: store.DialogEnvVar,
		Rows: func() []string {
			m := st.Get().Environment.CustomVars
			names := make([]string, 0, len(m))
			for name := range m {
				names = append(names, name)
			}
			sort.Strings(names)
			rows := make([]string, len(names))
			for i, name := range names {
				rows[i] = name + "=" + m[name]
			}
			return rows
		},
		Fields: []views.DraftField{
			{Label: "Name", Validate: func(raw string) validate.Result { return validate.EnvVarName(raw, loc) }},
			{Label: "Value"},
		},
		Commit: func(values []string) error {
			return st.PatchErr(func(c profile.GameConfig) (profile.GameConfig, error) {
				if _, exists := c.Environment.CustomVars[values[0]]; exists {
					return c, fmt.Errorf("%s", loc.T("status.duplicate"))
				}
				return c.WithCustomVar(values[0], values[1])
			})
		},
		Remove: func(index int) error {
			return st.PatchErr(func(c profile.GameConfig) (profile.GameConfig, error) {
				names := make([]string, 0, len(c.Environment.CustomVars))
				for name := range c.Environment.CustomVars {
					names = append(names, name)
				}
				sort.Strings(names)
				if index >= len(names) {
					return c, profile.ErrEntryNotFound
				}
				return c.WithoutCustomVar(names[index]), nil
			})
		},
	})

	return views.NewStack(form, vars)
}

func compatibilityStack(st *store.Store, loc locale.Locale) views.Stack {
	form := views.NewForm("Compatibility", []views.Field{
		featureField(st, "Wine Wayland",
			func(c profile.GameConfig) profile.FeatureState { return c.Compatibility.WineWayland },
			func(c profile.GameConfig, s profile.FeatureState) profile.GameConfig {
				c = c.Clone()
				c.Compatibility.WineWayland = s
				return c
			},
		),
		featureField(st, "HDR",
			func(c profile.GameConfig) profile.FeatureState { return c.Compatibility.HDR },
			func(c profile.GameConfig, s profile.FeatureState) profile.GameConfig {
				c = c.Clone()
				c.Compatibility.HDR = s
				return c
			},
		),
		featureField(st, "Wine staging",
			func(c profile.GameConfig) profile.FeatureState { return c.Compatibility.Staging },
			func(c profile.GameConfig, s profile.FeatureState) profile.GameConfig {
				c = c.Clone()
				c.Compatibility.Staging = s
				return c
			},
		),
		featureField(st, "Easy Anti-Cheat",
			func(c profile.GameConfig) profile.FeatureState { return c.Compatibility.AntiCheat.EasyAntiCheat },
			func(c profile.GameConfig, s profile.FeatureState) profile.GameConfig {
				c = c.Clone()
				c.Compatibility.AntiCheat.EasyAntiCheat = s
				return c
			},
		),
		featureField(st, "BattlEye",
			func(c profile.GameConfig) profile.FeatureState { return c.Compatibility.AntiCheat.BattlEye },
			func(c profile.GameConfig, s profile.FeatureState) profile.GameConfig {
				c = c.Clone()
				c.Compatibility.AntiCheat.BattlEye = s
				return c
			},
		),
	})

	wrappers := views.NewListEditor(views.ListEditorConfig{
		Title:  "Wrapper commands",
		Dialog: store.DialogWrapper,
		Rows: func() []string {
			list := st.Get().Compatibility.Wrappers
			rows := make([]string, len(list))
			for i, w := range list {
				rows[i] = fmt.Sprintf("%s %s (%s)", w.Executable, strings.Join(w.Args, " "), w.State)
			}
			return rows
		},
		Fields: []views.DraftField{
			{Label: "Executable", Validate: func(raw string) validate.Result { return validate.WrapperExecutable(raw, loc) }},
			{Label: "Arguments"},
			{Label: "State", Options: featureOptions()},
		},
		Commit: func(values []string) error {
			st.Patch(func(c profile.GameConfig) profile.GameConfig {
				return c.WithWrapper(profile.WrapperCommand{
					Executable: values[0],
					Args:       strings.Fields(values[1]),
					State:      profile.FeatureState(values[2]),
				})
			})
			return nil
		},
		Remove: func(index int) error {
			st.Patch(func(c profile.GameConfig) profile.GameConfig {
				return c.WithoutWrapper(index)
			})
			return nil
		},
	})

	return views.NewStack(form, wrappers)
}

func winecfgStack(st *store.Store, loc locale.Locale) views.Stack {
	form := views.NewForm("Winecfg", []views.Field{
		featureField(st, "Virtual desktop",
			func(c profile.GameConfig) profile.FeatureState { return c.Winecfg.VirtualDesktop.State },
			func(c profile.GameConfig, s profile.FeatureState) profile.GameConfig {
				c = c.Clone()
				c.Winecfg.VirtualDesktop.State = s
				return c
			},
		),
		boolField(st, "Use Wine default size",
			func(c profile.GameConfig) bool { return c.Winecfg.VirtualDesktop.UseWineDefault },
			func(c profile.GameConfig, v bool) profile.GameConfig {
				c = c.Clone()
				c.Winecfg.VirtualDesktop.UseWineDefault = v
				return c
			},
		),
		textField(st, "Desktop resolution (WxH)",
			func(raw string) validate.Result {
				if raw == "" {
					return validate.Result{}
				}
				if _, _, ok := profile.ParseWxH(raw); !ok {
					return validate.Result{Err: loc.T("value.resolution")}
				}
				return validate.Result{}
			},
			func(c profile.GameConfig) string { return c.Winecfg.VirtualDesktopResolution },
			func(c profile.GameConfig, v string) profile.GameConfig {
				c = c.Clone()
				c.Winecfg.VirtualDesktopResolution = v
				return c
			},
		),
		{
			Label: "Screen DPI",
			Kind:  views.FieldText,
			Get: func() string {
				dpi := st.Get().Winecfg.ScreenDPI
				if dpi == nil {
					return ""
				}
				return strconv.Itoa(*dpi)
			},
			Set: func(v string) error {
				return st.PatchErr(func(c profile.GameConfig) (profile.GameConfig, error) {
					if strings.TrimSpace(v) == "" {
						return c.WithScreenDPI(nil)
					}
					dpi, err := strconv.Atoi(strings.TrimSpace(v))
					if err != nil {
						return c, err
					}
					return c.WithScreenDPI(&dpi)
				})
			},
		},
		{
			Label: "Audio driver",
			Kind:  views.FieldText,
			Get: func() string {
				drv := st.Get().Winecfg.AudioDriver
				if drv == nil {
					return ""
				}
				return *drv
			},
			Set: func(v string) error {
				st.Patch(func(c profile.GameConfig) profile.GameConfig {
					c = c.Clone()
					if strings.TrimSpace(v) == "" {
						c.Winecfg.AudioDriver = nil
					} else {
						drv := strings.TrimSpace(v)
						c.Winecfg.AudioDriver = &drv
					}
					return c
				})
				return nil
			},
		},
	})

	modes := profile.OverrideModes()
	modeOptions := make([]string, len(modes))
	for i, m := range modes {
		modeOptions[i] = string(m)
	}
	dlls := views.NewListEditor(views.ListEditorConfig{
		Title:  "DLL overrides",
		Dialog: store.DialogDLLOverride,
		Rows: func() []string {
			list := st.Get().Winecfg.DLLOverrides
			rows := make([]string, len(list))
			for i, o := range list {
				rows[i] = fmt.Sprintf("%s = %s", o.DLL, o.Mode)
			}
			return rows
		},
		Fields: []views.DraftField{
			{Label: "DLL", Validate: func(raw string) validate.Result { return validate.DLLName(raw, loc) }},
			{Label: "Mode", Options: modeOptions},
		},
		Commit: func(values []string) error {
			return st.PatchErr(func(c profile.GameConfig) (profile.GameConfig, error) {
				return c.WithDLLOverride(profile.DLLOverride{
					DLL:  values[0],
					Mode: profile.OverrideMode(values[1]),
				})
			})
		},
		Remove: func(index int) error {
			return st.PatchErr(func(c profile.GameConfig) (profile.GameConfig, error) {
				list := c.Winecfg.DLLOverrides
				if index >= len(list) {
					return c, profile.ErrEntryNotFound
				}
				return c.WithoutDLLOverride(list[index].DLL), nil
			})
		},
	})

	types := profile.DriveTypes()
	typeOptions := make([]string, len(types))
	for i, dt := range types {
		typeOptions[i] = string(dt)
	}
	drives := views.NewListEditor(views.ListEditorConfig{
		Title:  "Drives",
		Dialog: store.DialogDrive,
		Rows: func() []string {
			list := st.Get().Winecfg.Drives
			rows := make([]string, len(list))
			for i, d := range list {
				rows[i] = fmt.Sprintf("%s: %s (%s)", d.Letter, d.HostPath, d.DriveType)
			}
			return rows
		},
		Fields: []views.DraftField{
			{Label: "Letter", Options: profile.DriveLetters()},
			{Label: "Host path", Validate: func(raw string) validate.Result { return validate.LinuxPath(raw, loc, true) }},
			{Label: "Type", Options: typeOptions},
			{Label: "Label"},
			{Label: "Serial", Validate: func(raw string) validate.Result {
				if raw == "" {
					return validate.Result{}
				}
				return validate.DriveSerial(raw, loc)
			}},
		},
		Commit: func(values []string) error {
			return st.PatchErr(func(c profile.GameConfig) (profile.GameConfig, error) {
				return c.WithDrive(profile.Drive{
					Letter:    values[0],
					HostPath:  values[1],
					DriveType: profile.DriveType(values[2]),
					Label:     values[3],
					Serial:    values[4],
				})
			})
		},
		Remove: func(index int) error {
			return st.PatchErr(func(c profile.GameConfig) (profile.GameConfig, error) {
				list := c.Winecfg.Drives
				if index >= len(list) {
					return c, profile.ErrEntryNotFound
				}
				return c.WithoutDrive(list[index].Letter)
			})
		},
	})

	folders := views.NewListEditor(views.ListEditorConfig{
		Title:  "Desktop folders",
		Dialog: store.DialogDesktopFolder,
		Rows: func() []string {
			list := st.Get().Winecfg.DesktopFolders
			rows := make([]string, len(list))
			for i, f := range list {
				rows[i] = fmt.Sprintf("%s -> %s", f.FolderKey, f.LinuxPath)
			}
			return rows
		},
		Fields: []views.DraftField{
			{Label: "Folder", Options: profile.FolderKeys()},
			{Label: "Shortcut name", Validate: func(raw string) validate.Result { return validate.FileName(raw, loc) }},
			{Label: "Host path", Validate: func(raw string) validate.Result { return validate.LinuxPath(raw, loc, true) }},
		},
		Commit: func(values []string) error {
			return st.PatchErr(func(c profile.GameConfig) (profile.GameConfig, error) {
				return c.WithDesktopFolder(profile.DesktopFolder{
					FolderKey:    values[0],
					ShortcutName: values[1],
					LinuxPath:    values[2],
				})
			})
		},
		Remove: func(index int) error {
			return st.PatchErr(func(c profile.GameConfig) (profile.GameConfig, error) {
				list := c.Winecfg.DesktopFolders
				if index >= len(list) {
					return c, profile.ErrEntryNotFound
				}
				return c.WithoutDesktopFolder(list[index].FolderKey), nil
			})
		},
	})

	return views.NewStack(form, dlls, drives, folders)
}

func dependenciesStack(st *store.Store, loc locale.Locale) views.Stack {
	verbs := views.NewListEditor(views.ListEditorConfig{
		Title:  "Winetricks verbs",
		Dialog: store.DialogWinetricks,
		Rows:   func() []string { return append([]string(nil), st.Get().Dependencies.WinetricksVerbs...) },
		Fields: []views.DraftField{
			{Label: "Verb", Validate: func(raw string) validate.Result { return validate.FileName(raw, loc) }},
		},
		Commit: func(values []string) error {
			return st.PatchErr(func(c profile.GameConfig) (profile.GameConfig, error) {
				return c.WithWinetricksVerb(values[0])
			})
		},
		Remove: func(index int) error {
			return st.PatchErr(func(c profile.GameConfig) (profile.GameConfig, error) {
				list := c.Dependencies.WinetricksVerbs
				if index >= len(list) {
					return c, profile.ErrEntryNotFound
				}
				return c.WithoutWinetricksVerb(list[index]), nil
			})
		},
		Suggest: catalog.Search,
	})

	deps := views.NewListEditor(views.ListEditorConfig{
		Title:  "Extra dependencies",
		Dialog: store.DialogExtraDep,
		Rows: func() []string {
			list := st.Get().Dependencies.ExtraDeps
			rows := make([]string, len(list))
			for i, d := range list {
				rows[i] = fmt.Sprintf("%s (%s)", d.Name, d.State)
			}
			return rows
		},
		Fields: []views.DraftField{
			{Label: "Name", Validate: func(raw string) validate.Result { return validate.FileName(raw, loc) }},
			{Label: "State", Options: featureOptions()},
			{Label: "Check command"},
			{Label: "Check env var", Validate: func(raw string) validate.Result {
				if raw == "" {
					return validate.Result{}
				}
				return validate.EnvVarName(raw, loc)
			}},
			{Label: "Check path", Validate: func(raw string) validate.Result { return validate.LinuxPath(raw, loc, false) }},
		},
		Commit: func(values []string) error {
			return st.PatchErr(func(c profile.GameConfig) (profile.GameConfig, error) {
				dep := profile.ExtraDependency{
					Name:  values[0],
					State: profile.FeatureState(values[1]),
				}
				if values[2] != "" {
					dep.CheckCommands = []string{values[2]}
				}
				if values[3] != "" {
					dep.CheckEnvVars = []string{values[3]}
				}
				if values[4] != "" {
					dep.CheckPaths = []string{values[4]}
				}
				return c.WithExtraDependency(dep)
			})
		},
		Remove: func(index int) error {
			return st.PatchErr(func(c profile.GameConfig) (profile.GameConfig, error) {
				list := c.Dependencies.ExtraDeps
				if index >= len(list) {
					return c, profile.ErrEntryNotFound
				}
				return c.WithoutExtraDependency(list[index].Name), nil
			})
		},
	})

	return views.NewStack(verbs, deps)
}

func registryEditor(st *store.Store, loc locale.Locale) views.ListEditor {
	return views.NewListEditor(views.ListEditorConfig{
		Title:  "Registry keys",
		Dialog: store.DialogRegistryKey,
		Rows: func() []string {
			list := st.Get().RegistryKeys
			rows := make([]string, len(list))
			for i, k := range list {
				rows[i] = fmt.Sprintf(`%s\%s = %s (%s)`, k.Path, k.Name, k.Value, k.ValueType)
			}
			return rows
		},
		Fields: []views.DraftField{
			{Label: "Path", Validate: func(raw string) validate.Result { return validate.RegistryPath(raw, loc) }},
			{Label: "Name", Validate: func(raw string) validate.Result { return validate.FileName(raw, loc) }},
			{Label: "Type", Options: validate.RegistryValueTypes()},
			{Label: "Value"},
		},
		Commit: func(values []string) error {
			return st.PatchErr(func(c profile.GameConfig) (profile.GameConfig, error) {
				return c.WithRegistryKey(profile.RegistryKey{
					Path:      values[0],
					Name:      values[1],
					ValueType: values[2],
					Value:     values[3],
				})
			})
		},
		Remove: func(index int) error {
			return st.PatchErr(func(c profile.GameConfig) (profile.GameConfig, error) {
				list := c.RegistryKeys
				if index >= len(list) {
					return c, profile.ErrEntryNotFound
				}
				return c.WithoutRegistryKey(list[index].Path, list[index].Name), nil
			})
		},
	})
}

func mountsEditor(st *store.Store, loc locale.Locale) views.ListEditor {
	return views.NewListEditor(views.ListEditorConfig{
		Title:  "Folder mounts",
		Dialog: store.DialogFolderMount,
		Rows: func() []string {
			list := st.Get().FolderMounts
			rows := make([]string, len(list))
			for i, m := range list {
				rows[i] = fmt.Sprintf("%s -> %s", m.SourceRelativePath, m.TargetWindowsPath)
			}
			return rows
		},
		Fields: []views.DraftField{
			{Label: "Source path", Validate: func(raw string) validate.Result {
				return validate.RelativeGamePath(raw, loc, validate.RelativePathOptions{Kind: validate.PathDir, AllowDot: true})
			}},
			{Label: "Target path", Validate: func(raw string) validate.Result { return validate.WindowsPath(raw, loc) }},
			{Label: "Create if missing", Options: []string{"no", "yes"}},
		},
		Commit: func(values []string) error {
			return st.PatchErr(func(c profile.GameConfig) (profile.GameConfig, error) {
				return c.WithFolderMount(profile.FolderMount{
					SourceRelativePath:    values[0],
					TargetWindowsPath:     values[1],
					CreateSourceIfMissing: values[2] == "yes",
				})
			})
		},
		Remove: func(index int) error {
			return st.PatchErr(func(c profile.GameConfig) (profile.GameConfig, error) {
				list := c.FolderMounts
				if index >= len(list) {
					return c, profile.ErrEntryNotFound
				}
				return c.WithoutFolderMount(list[index].SourceRelativePath), nil
			})
		},
	})
}

func scriptsForm(st *store.Store) views.Form {
	return views.NewForm("Scripts", []views.Field{
		textField(st, "Pre-launch", nil,
			func(c profile.GameConfig) string { return c.Scripts.PreLaunch },
			func(c profile.GameConfig, v string) profile.GameConfig {
				c = c.Clone()
				c.Scripts.PreLaunch = v
				return c
			},
		),
		textField(st, "Post-launch", nil,
			func(c profile.GameConfig) string { return c.Scripts.PostLaunch },
			func(c profile.GameConfig, v string) profile.GameConfig {
				c = c.Clone()
				c.Scripts.PostLaunch = v
				return c
			},
		),
	})
}
