package main

import (
	"fmt"

	"lpm/internal/profile"

	"github.com/spf13/cobra"
)

var showSummary bool

var showCmd = &cobra.Command{
	Use:   "show <profile-file>",
	Short: "Print a profile in canonical form",
	Long: `Print the canonical JSON of a profile file. Decoding normalizes the
document: derived fields are recomputed and missing collections become
empty, so the output is what the backend would receive.

With --summary, prints per-section entry counts instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showSummary, "summary", false, "print per-section counts instead of the document")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadProfileFile(args[0])
	if err != nil {
		return err
	}

	if !showSummary {
		data, err := cfg.EncodeJSON()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	counts := profile.CountSections(cfg)
	if jsonOutput {
		fmt.Printf(`{"custom_vars":%d,"wrappers":%d,"dll_overrides":%d,"drives":%d,"desktop_folders":%d,"winetricks_verbs":%d,"extra_dependencies":%d,"registry_keys":%d,"folder_mounts":%d}`+"\n",
			counts.CustomVars, counts.Wrappers, counts.DLLOverrides, counts.Drives,
			counts.DesktopFolders, counts.WinetricksVerbs, counts.ExtraDeps,
			counts.RegistryKeys, counts.FolderMounts)
		return nil
	}

	fmt.Printf("Profile: %s\n", cfg.GameName)
	fmt.Printf("  Executable:       %s\n", cfg.RelativeExePath)
	fmt.Printf("  Runner:           %s %s\n", cfg.Runner.Kind, cfg.Runner.Version)
	fmt.Printf("  Custom variables: %d\n", counts.CustomVars)
	fmt.Printf("  Wrappers:         %d\n", counts.Wrappers)
	fmt.Printf("  DLL overrides:    %d\n", counts.DLLOverrides)
	fmt.Printf("  Drives:           %d\n", counts.Drives)
	fmt.Printf("  Desktop folders:  %d\n", counts.DesktopFolders)
	fmt.Printf("  Winetricks verbs: %d\n", counts.WinetricksVerbs)
	fmt.Printf("  Extra deps:       %d\n", counts.ExtraDeps)
	fmt.Printf("  Registry keys:    %d\n", counts.RegistryKeys)
	fmt.Printf("  Folder mounts:    %d\n", counts.FolderMounts)
	return nil
}
