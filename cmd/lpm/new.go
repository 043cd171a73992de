package main

import (
	"fmt"
	"os"

	"lpm/internal/profile"
	"lpm/internal/store"
	"lpm/internal/tui"

	"github.com/spf13/cobra"
)

var newOutput string

var newCmd = &cobra.Command{
	Use:   "new [profile-file]",
	Short: "Build a launch profile interactively",
	Long: `Open the profile wizard. When a profile file is given it is loaded as the
starting point and written back on exit; otherwise a fresh profile is
created and written to the --output path.

Examples:
  lpm new
  lpm new stellar-drift.json
  lpm new --output stellar-drift.json`,
	Aliases: []string{"edit"},
	Args:    cobra.MaximumNArgs(1),
	RunE:    runNew,
}

func init() {
	newCmd.Flags().StringVarP(&newOutput, "output", "o", "", "file to write the profile to on exit")
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	initial := profile.NewDefault()
	outPath := newOutput
	if len(args) == 1 {
		outPath = args[0]
		if _, err := os.Stat(args[0]); err == nil {
			initial, err = loadProfileFile(args[0])
			if err != nil {
				return err
			}
		}
	}

	dataDir, err := resolveDataDir(settings)
	if err != nil {
		return err
	}

	st := store.New(initial)
	err = tui.Run(tui.Deps{
		Store:    st,
		Locale:   currentLocale(settings),
		Launcher: newBackendClient(settings),
		DataDir:  dataDir,
		KeyMode:  settings.Keybindings,
	})
	if err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}

	if outPath == "" {
		return nil
	}
	if err := writeProfileFile(outPath, st.Get()); err != nil {
		return err
	}
	fmt.Printf("%s %s\n", colorGreen("Wrote"), outPath)
	return nil
}
