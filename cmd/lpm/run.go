package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var testCmd = &cobra.Command{
	Use:   "test <profile-file>",
	Short: "Launch the game once with the profile, without saving anything",
	Args:  cobra.ExactArgs(1),
	RunE:  runTest,
}

var createCmd = &cobra.Command{
	Use:   "create <profile-file>",
	Short: "Register the profile with the launcher backend",
	Args:  cobra.ExactArgs(1),
	RunE:  runCreate,
}

func init() {
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(createCmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	cfg, err := loadProfileFile(args[0])
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Minute)
	defer cancel()

	if err := newBackendClient(settings).TestLaunch(ctx, cfg); err != nil {
		return fmt.Errorf("%s", currentLocale(settings).T("backend.failed", err.Error()))
	}
	fmt.Printf("%s %s\n", colorGreen("✓"), currentLocale(settings).T("status.launch.ok"))
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	cfg, err := loadProfileFile(args[0])
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	if err := newBackendClient(settings).CreateProfile(ctx, cfg); err != nil {
		return fmt.Errorf("%s", currentLocale(settings).T("backend.failed", err.Error()))
	}
	fmt.Printf("%s %s\n", colorGreen("✓"), currentLocale(settings).T("status.profile.created"))
	return nil
}
