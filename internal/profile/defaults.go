package profile

// NewDefault builds a fresh profile with every optional field explicitly
// defaulted: no partial or undefined state exists after construction. Two
// independent calls are deep-equal. The drive list starts with the reserved
// Z: mapping to the host root; every other collection starts empty.
func NewDefault() GameConfig {
	return GameConfig{
		GameName:        "",
		ExeHash:         "",
		RelativeExePath: "",
		Runner: Runner{
			Kind:         RunnerAuto,
			Version:      "",
			Esync:        false,
			Fsync:        false,
			UMU:          OptionalOff,
			SteamRuntime: OptionalOff,
		},
		Environment: Environment{
			Gamescope: Gamescope{
				State:        OptionalOff,
				OutputWidth:  "",
				OutputHeight: "",
				Resolution:   nil,
			},
			Gamemode:   OptionalOff,
			MangoHud:   OptionalOff,
			CustomVars: map[string]string{},
		},
		Compatibility: Compatibility{
			WineWayland: OptionalOff,
			HDR:         OptionalOff,
			Staging:     OptionalOff,
			Wrappers:    []WrapperCommand{},
			AntiCheat: AntiCheat{
				EasyAntiCheat: OptionalOff,
				BattlEye:      OptionalOff,
			},
		},
		Winecfg: Winecfg{
			DLLOverrides: []DLLOverride{},
			VirtualDesktop: WinecfgFeaturePolicy{
				State:          OptionalOff,
				UseWineDefault: true,
			},
			VirtualDesktopResolution: "",
			ScreenDPI:                nil,
			Drives: []Drive{
				{
					Letter:    ReservedDriveLetter,
					HostPath:  "/",
					DriveType: DriveFixed,
					Label:     "",
					Serial:    "",
				},
			},
			DesktopFolders: []DesktopFolder{},
			AudioDriver:    nil,
		},
		Dependencies: Dependencies{
			WinetricksVerbs: []string{},
			ExtraDeps:       []ExtraDependency{},
		},
		RegistryKeys: []RegistryKey{},
		FolderMounts: []FolderMount{},
		Scripts:      Scripts{},
	}
}
