package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var hashSet string

var hashCmd = &cobra.Command{
	Use:   "hash <host-path>",
	Short: "Hash a game executable through the backend",
	Long: `Ask the backend to hash the executable at the given host path. The hash
identifies the profile's Wine prefix directory.

With --set, the hash is also written into the given profile file.`,
	Args: cobra.ExactArgs(1),
	RunE: runHash,
}

func init() {
	hashCmd.Flags().StringVar(&hashSet, "set", "", "profile file to store the hash in")
	rootCmd.AddCommand(hashCmd)
}

func runHash(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	sum, err := newBackendClient(settings).HashFile(ctx, args[0])
	if err != nil {
		return fmt.Errorf("%s", currentLocale(settings).T("backend.failed", err.Error()))
	}

	if jsonOutput {
		fmt.Printf(`{"sha256":%q}`+"\n", sum)
	} else {
		fmt.Println(sum)
	}

	if hashSet == "" {
		return nil
	}
	cfg, err := loadProfileFile(hashSet)
	if err != nil {
		return err
	}
	updated := cfg.Clone()
	updated.ExeHash = sum
	return writeProfileFile(hashSet, updated)
}
