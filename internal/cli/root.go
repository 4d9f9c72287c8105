// Package cli provides the command-line interface for unami-csv.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/captainFoxtrot/unami-csv/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	return run(NewRootCommand(), os.Stderr)
}

func run(rootCmd *cobra.Command, stderr io.Writer) int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	// Commands that already printed their diagnostics only carry an exit code.
	var exitErr *commands.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// Print error to stderr (SilenceErrors prevents Cobra from doing this)
	_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
	return 2 // Usage, configuration or runtime error
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	var envFile string

	rootCmd := &cobra.Command{
		Use:   "unami-csv",
		Short: "Compile flight-route lists into CSV",
		Long: `unami-csv converts a plain-text list of flight-route descriptions into a CSV file.

Each input line looks like:

  UAN069/070 ABCD Not a real airport to WXYZ Also not a real airport with Air Seattle codeshare

and becomes the row:

  UAN,069,070,ABCD,WXYZ,Air Seattle codeshare

Lines that do not match are skipped and listed after the run.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A command missing positional arguments aborts before any file I/O.
			if !commands.HasRequiredArgs(cmd, args) {
				return nil
			}
			return loadDotEnv(envFile)
		},
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file loaded at startup if present")

	// Add subcommands
	rootCmd.AddCommand(commands.NewCompileCommand())
	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}

// loadDotEnv loads variables from path without overriding ones already set.
// A missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}
