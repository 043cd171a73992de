package main

import (
	"context"
	"fmt"
	"time"

	"lpm/internal/profile"

	"github.com/spf13/cobra"
)

var importRegCmd = &cobra.Command{
	Use:   "import-reg <profile-file> <reg-file>",
	Short: "Import a Windows .reg file into a profile",
	Long: `Parse a .reg file through the backend and merge its entries into the
profile's registry keys.

Merging is key-aware: an entry identical to an existing one is skipped, an
entry whose (path, name) already exists with a different value replaces it,
and everything else is added.`,
	Args: cobra.ExactArgs(2),
	RunE: runImportReg,
}

func init() {
	rootCmd.AddCommand(importRegCmd)
}

func runImportReg(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	loc := currentLocale(settings)

	cfg, err := loadProfileFile(args[0])
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	result, err := newBackendClient(settings).ImportRegistryFile(ctx, args[1])
	if err != nil {
		return fmt.Errorf("%s", loc.T("backend.failed", err.Error()))
	}

	for _, warning := range result.Warnings {
		fmt.Printf("%s %s\n", colorYellow("!"), warning)
	}

	merged, added, replaced, skipped := profile.MergeRegistryImport(cfg, result.Entries)
	if err := writeProfileFile(args[0], merged); err != nil {
		return err
	}

	fmt.Printf("%s %s\n", colorGreen("✓"), loc.T("status.imported", added, replaced, skipped))
	return nil
}
