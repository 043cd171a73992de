package main

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"

	"lpm/internal/locale"
	"lpm/internal/profile"
	"lpm/internal/validate"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <profile-file>",
	Short: "Check every field of a profile",
	Long: `Run the field validators over a profile file and report problems.
The wizard applies these checks at entry time; validate re-applies them to
documents edited by hand or produced elsewhere.

Exits non-zero when any field is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// problem is one failed field check.
type problem struct {
	Field string `json:"field"`
	Error string `json:"error"`
	Hint  string `json:"hint,omitempty"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	loc := currentLocale(settings)

	cfg, err := loadProfileFile(args[0])
	if err != nil {
		return err
	}

	problems := collectProblems(cfg, loc)

	if jsonOutput {
		if problems == nil {
			problems = []problem{}
		}
		out, err := json.Marshal(problems)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	} else {
		for _, p := range problems {
			if p.Hint != "" {
				fmt.Printf("%s %s: %s (did you mean %q?)\n", colorRed("✗"), p.Field, p.Error, p.Hint)
			} else {
				fmt.Printf("%s %s: %s\n", colorRed("✗"), p.Field, p.Error)
			}
		}
		if len(problems) == 0 {
			fmt.Printf("%s %s is valid\n", colorGreen("✓"), args[0])
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%d invalid field(s)", len(problems))
	}
	return nil
}

// collectProblems applies every field validator to the profile.
func collectProblems(cfg profile.GameConfig, loc locale.Locale) []problem {
	var problems []problem
	check := func(field string, res validate.Result) {
		if !res.OK() {
			problems = append(problems, problem{Field: field, Error: res.Err, Hint: res.Hint})
		}
	}

	check("game_name", validate.FriendlyName(cfg.GameName, loc))
	check("relative_exe_path", validate.RelativeGamePath(cfg.RelativeExePath, loc, validate.RelativePathOptions{Kind: validate.PathFile}))

	names := make([]string, 0, len(cfg.Environment.CustomVars))
	for name := range cfg.Environment.CustomVars {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		field := fmt.Sprintf("environment.custom_vars[%s]", name)
		check(field, validate.EnvVarName(name, loc))
		if slices.Contains(profile.ReservedEnvVars, name) {
			problems = append(problems, problem{Field: field, Error: loc.T("envvar.reserved", name)})
		}
	}

	for i, w := range cfg.Compatibility.Wrappers {
		check(fmt.Sprintf("compatibility.wrappers[%d].executable", i), validate.WrapperExecutable(w.Executable, loc))
	}

	for i, o := range cfg.Winecfg.DLLOverrides {
		check(fmt.Sprintf("winecfg.dll_overrides[%d].dll", i), validate.DLLName(o.DLL, loc))
		if !slices.Contains(profile.OverrideModes(), o.Mode) {
			problems = append(problems, problem{
				Field: fmt.Sprintf("winecfg.dll_overrides[%d].mode", i),
				Error: loc.T("dll.mode"),
			})
		}
	}

	for i, d := range cfg.Winecfg.Drives {
		field := fmt.Sprintf("winecfg.drives[%d]", i)
		if d.Letter != profile.ReservedDriveLetter && !slices.Contains(profile.DriveLetters(), d.Letter) {
			problems = append(problems, problem{Field: field + ".letter", Error: loc.T("drive.letter")})
		}
		check(field+".host_path", validate.LinuxPath(d.HostPath, loc, true))
		if d.Serial != "" {
			check(field+".serial", validate.DriveSerial(d.Serial, loc))
		}
	}

	for i, f := range cfg.Winecfg.DesktopFolders {
		field := fmt.Sprintf("winecfg.desktop_folders[%d]", i)
		if !slices.Contains(profile.FolderKeys(), f.FolderKey) {
			problems = append(problems, problem{Field: field + ".folder_key", Error: loc.T("folder.key")})
		}
		check(field+".shortcut_name", validate.FileName(f.ShortcutName, loc))
		check(field+".linux_path", validate.LinuxPath(f.LinuxPath, loc, true))
	}

	if dpi := cfg.Winecfg.ScreenDPI; dpi != nil && (*dpi < profile.MinScreenDPI || *dpi > profile.MaxScreenDPI) {
		problems = append(problems, problem{
			Field: "winecfg.screen_dpi",
			Error: fmt.Sprintf("%v: %d", profile.ErrDPIOutOfRange, *dpi),
		})
	}

	for i, verb := range cfg.Dependencies.WinetricksVerbs {
		check(fmt.Sprintf("dependencies.winetricks_verbs[%d]", i), validate.FileName(verb, loc))
	}

	for i, k := range cfg.RegistryKeys {
		field := fmt.Sprintf("registry_keys[%d]", i)
		check(field+".path", validate.RegistryPath(k.Path, loc))
		check(field+".name", validate.FileName(k.Name, loc))
		check(field+".value_type", validate.RegistryValueType(k.ValueType, loc))
	}

	for i, m := range cfg.FolderMounts {
		field := fmt.Sprintf("folder_mounts[%d]", i)
		check(field+".source_relative_path", validate.RelativeGamePath(m.SourceRelativePath, loc, validate.RelativePathOptions{Kind: validate.PathDir, AllowDot: true}))
		check(field+".target_windows_path", validate.WindowsPath(m.TargetWindowsPath, loc))
	}

	return problems
}
