package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"lpm/internal/storage/db"

	"github.com/spf13/cobra"
)

var libraryCmd = &cobra.Command{
	Use:     "library",
	Aliases: []string{"profile"},
	Short:   "Manage the local profile library",
	Long: `The library is a local database of named profiles, independent of the
backend. Profiles move between the library and JSON files with save and
export.`,
}

var librarySaveCmd = &cobra.Command{
	Use:   "save <name> <profile-file>",
	Short: "Save a profile file into the library",
	Args:  cobra.ExactArgs(2),
	RunE:  runLibrarySave,
}

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List library profiles",
	Args:  cobra.NoArgs,
	RunE:  runLibraryList,
}

var libraryShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a library profile as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibraryShow,
}

var libraryExportCmd = &cobra.Command{
	Use:   "export <name> <profile-file>",
	Short: "Write a library profile to a file",
	Args:  cobra.ExactArgs(2),
	RunE:  runLibraryExport,
}

var libraryDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Remove a profile from the library",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibraryDelete,
}

func init() {
	libraryCmd.AddCommand(librarySaveCmd)
	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(libraryShowCmd)
	libraryCmd.AddCommand(libraryExportCmd)
	libraryCmd.AddCommand(libraryDeleteCmd)
	rootCmd.AddCommand(libraryCmd)
}

// withLibrary opens the library, runs fn, and closes it.
func withLibrary(fn func(*db.DB) error) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	library, err := openLibrary(settings)
	if err != nil {
		return fmt.Errorf("opening library: %w", err)
	}
	defer func() {
		if err := library.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: closing library: %v\n", err)
		}
	}()
	return fn(library)
}

func runLibrarySave(cmd *cobra.Command, args []string) error {
	cfg, err := loadProfileFile(args[1])
	if err != nil {
		return err
	}
	return withLibrary(func(library *db.DB) error {
		if err := library.SaveProfile(args[0], cfg); err != nil {
			return err
		}
		fmt.Printf("%s Saved %q\n", colorGreen("✓"), args[0])
		return nil
	})
}

func runLibraryList(cmd *cobra.Command, args []string) error {
	return withLibrary(func(library *db.DB) error {
		profiles, err := library.ListProfiles()
		if err != nil {
			return err
		}

		if jsonOutput {
			out, err := json.Marshal(profiles)
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		if len(profiles) == 0 {
			fmt.Println("library is empty")
			return nil
		}
		for _, p := range profiles {
			fmt.Printf("%-30s %-30s %s\n", p.Name, p.GameName, p.UpdatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	})
}

func runLibraryShow(cmd *cobra.Command, args []string) error {
	return withLibrary(func(library *db.DB) error {
		cfg, err := library.GetProfile(args[0])
		if err != nil {
			if errors.Is(err, db.ErrProfileNotFound) {
				return fmt.Errorf("no library profile named %q", args[0])
			}
			return err
		}
		data, err := cfg.EncodeJSON()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	})
}

func runLibraryExport(cmd *cobra.Command, args []string) error {
	return withLibrary(func(library *db.DB) error {
		cfg, err := library.GetProfile(args[0])
		if err != nil {
			if errors.Is(err, db.ErrProfileNotFound) {
				return fmt.Errorf("no library profile named %q", args[0])
			}
			return err
		}
		if err := writeProfileFile(args[1], cfg); err != nil {
			return err
		}
		fmt.Printf("%s Wrote %s\n", colorGreen("✓"), args[1])
		return nil
	})
}

func runLibraryDelete(cmd *cobra.Command, args []string) error {
	return withLibrary(func(library *db.DB) error {
		if err := library.DeleteProfile(args[0]); err != nil {
			if errors.Is(err, db.ErrProfileNotFound) {
				return fmt.Errorf("no library profile named %q", args[0])
			}
			return err
		}
		fmt.Printf("%s Deleted %q\n", colorGreen("✓"), args[0])
		return nil
	})
}
