package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var pickCmd = &cobra.Command{
	Use:   "pick <exe|root>",
	Short: "Open a native file picker through the backend",
	Long: `Ask the backend to open its native picker and print the chosen path.

  pick exe   pick a game executable
  pick root  pick a game root directory`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"exe", "root"},
	RunE:      runPick,
}

var iconCmd = &cobra.Command{
	Use:   "icon <exe-path>",
	Short: "Extract the icon of an executable through the backend",
	Args:  cobra.ExactArgs(1),
	RunE:  runIcon,
}

var browseCmd = &cobra.Command{
	Use:   "browse <host-path>",
	Short: "List a directory through the backend",
	Long: `List the entries of a host directory as the backend sees them.

With --dirs, lists only child directories.`,
	Args: cobra.ExactArgs(1),
	RunE: runBrowse,
}

var browseDirsOnly bool

func init() {
	browseCmd.Flags().BoolVar(&browseDirsOnly, "dirs", false, "list only child directories")
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(iconCmd)
	rootCmd.AddCommand(browseCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Minute)
	defer cancel()

	client := newBackendClient(settings)
	var path string
	switch args[0] {
	case "exe":
		path, err = client.PickExecutable(ctx)
	case "root":
		path, err = client.PickGameRoot(ctx)
	default:
		return fmt.Errorf("unknown picker %q; use exe or root", args[0])
	}
	if err != nil {
		return fmt.Errorf("%s", currentLocale(settings).T("backend.failed", err.Error()))
	}
	if path == "" {
		return ErrCancelled
	}
	fmt.Println(path)
	return nil
}

func runIcon(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	iconPath, err := newBackendClient(settings).ExtractIcon(ctx, args[0])
	if err != nil {
		return fmt.Errorf("%s", currentLocale(settings).T("backend.failed", err.Error()))
	}
	fmt.Println(iconPath)
	return nil
}

func runBrowse(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	client := newBackendClient(settings)
	if browseDirsOnly {
		list, err := client.ListChildDirectories(ctx, args[0])
		if err != nil {
			return fmt.Errorf("%s", currentLocale(settings).T("backend.failed", err.Error()))
		}
		for _, dir := range list.Directories {
			fmt.Println(dir)
		}
		return nil
	}

	entries, err := client.ListDirectoryEntries(ctx, args[0])
	if err != nil {
		return fmt.Errorf("%s", currentLocale(settings).T("backend.failed", err.Error()))
	}
	for _, dir := range entries.Directories {
		fmt.Println(dir + "/")
	}
	for _, file := range entries.Files {
		fmt.Println(file)
	}
	return nil
}
