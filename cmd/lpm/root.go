package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"lpm/internal/locale"
	"lpm/internal/storage/config"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// ErrCancelled is returned when the user cancels an operation.
// When returned from a command, Execute exits with code 2.
var ErrCancelled = errors.New("cancelled")

var (
	version = "0.3.0"

	// Global flags
	configDir   string
	backendAddr string
	localeFlag  string
	verbose     bool
	jsonOutput  bool
	noColor     bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lpm",
	Short: "Launch Profile Manager - wizard for Windows-game launch profiles on Linux",
	Long: `lpm builds and manages launch profiles for Windows games running through
Wine or Proton: runner selection, environment tuning, winecfg settings,
registry keys, folder mounts and launch scripts, exported as a single
JSON document the launcher backend consumes.

Run 'lpm new' to start the profile wizard, or 'lpm --help' for all commands.`,
	Version:       version,
	SilenceUsage:  true, // Runtime errors should not print usage
	SilenceErrors: true, // We handle error output in Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default: ~/.config/lpm)")
	rootCmd.PersistentFlags().StringVar(&backendAddr, "backend", "", "backend address (default: from config)")
	rootCmd.PersistentFlags().StringVar(&localeFlag, "locale", "", "message locale, e.g. en-US or pt-BR (default: from config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format (show, list, validate, verbs)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// colorEnabled returns true if colored output should be used (respects --no-color and NO_COLOR env).
// NO_COLOR: if set (any value), color is disabled per https://no-color.org
func colorEnabled() bool {
	if noColor {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return true
}

const (
	ansiReset  = "\033[0m"
	ansiGreen  = "\033[32m"
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
)

// colorGreen returns s with green ANSI when color is enabled, otherwise s.
func colorGreen(s string) string {
	if !colorEnabled() {
		return s
	}
	return ansiGreen + s + ansiReset
}

// colorRed returns s with red ANSI when color is enabled, otherwise s.
func colorRed(s string) string {
	if !colorEnabled() {
		return s
	}
	return ansiRed + s + ansiReset
}

// colorYellow returns s with yellow ANSI when color is enabled, otherwise s.
func colorYellow(s string) string {
	if !colorEnabled() {
		return s
	}
	return ansiYellow + s + ansiReset
}

// Execute runs the root command. Exit codes: 0 = success, 1 = error, 2 = user cancelled.
// When --json is set and an error occurs, prints {"error":"..."} to stdout before exiting.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, ErrCancelled) {
			os.Exit(2)
		}
		if jsonOutput {
			fmt.Printf(`{"error":%q}`+"\n", err.Error())
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// newLogger builds the CLI logger; --verbose lowers the level to debug.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// resolveConfigDir returns the config directory, from the flag or the
// default under the user's home.
func resolveConfigDir() (string, error) {
	if configDir != "" {
		return configDir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "lpm"), nil
}

// loadSettings loads the config file and applies flag overrides on top.
func loadSettings() (*config.Config, error) {
	dir, err := resolveConfigDir()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}
	if backendAddr != "" {
		cfg.BackendAddr = backendAddr
	}
	if localeFlag != "" {
		cfg.Locale = localeFlag
	}
	return cfg, nil
}

// currentLocale resolves the message locale from settings.
func currentLocale(cfg *config.Config) locale.Locale {
	return locale.Match(cfg.Locale)
}
