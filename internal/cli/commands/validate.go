package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/captainFoxtrot/unami-csv/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate an unami-csv configuration file without compiling anything.

Checks:
  - YAML syntax and unknown keys
  - Header has exactly six columns
  - Comment separator is set
  - Line ending is auto, lf or crlf

Environment overrides (UNAMI_CSV_*) are applied before validation.`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := commandContext(cmd)
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(w, "\nConfiguration valid!\n")
	fmt.Fprintf(w, "  Header:            %s\n", strings.Join(cfg.Header, ","))
	fmt.Fprintf(w, "  Write header:      %t\n", !cfg.SuppressHeader)
	fmt.Fprintf(w, "  Trailing comma:    %t\n", !cfg.SuppressTrailingComma)
	fmt.Fprintf(w, "  Comment separator: %q\n", cfg.CommentSeparator)
	fmt.Fprintf(w, "  Skip blank lines:  %t\n", cfg.SkipBlankLines)
	fmt.Fprintf(w, "  Line ending:       %s\n", cfg.LineEnding)

	return nil
}
