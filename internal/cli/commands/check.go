package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/captainFoxtrot/unami-csv/pkg/compile"
	"github.com/captainFoxtrot/unami-csv/pkg/lines"
	"github.com/captainFoxtrot/unami-csv/pkg/output"
)

// CheckOptions holds command-line options for the check command.
type CheckOptions struct {
	ConfigFile string
	Report     string
	Verbose    bool
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}

	cmd := &cobra.Command{
		Use:   "check <inputFileName>",
		Short: "Report lines that would not compile",
		Long: `Compile every line of the input file without writing any output and list the
lines that do not match the route pattern.

Exit codes:
  0 - Every line compiles
  1 - At least one line could not be compiled
  2 - Missing argument, unreadable input or invalid config`,
		Args: cobra.MaximumNArgs(1),
		Annotations: requireArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "YAML config file")
	cmd.Flags().StringVarP(&opts.Report, "report", "r", "text", "Report format (text|json)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Log each step to stderr and show run counts")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, opts *CheckOptions) error {
	ctx := commandContext(cmd)

	formatter, err := output.NewFormatter(opts.Report, output.FormatOptions{
		Verbose: opts.Verbose,
		Verb:    "Check",
	})
	if err != nil {
		return err
	}

	var (
		report *output.Report
		runErr error
	)

	if missing := missingArguments(args, "inputFileName"); missing != nil {
		report = output.NewReport(nil, "", "")
		report.Fail(missing.Messages()...)
		runErr = missing
	} else {
		report, runErr = checkFile(cmd, args[0], opts)
		if report.HasFailures() {
			report.Fail()
		}
	}

	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	switch {
	case runErr != nil:
		return &ExitError{Code: 2, Err: runErr}
	case report.HasFailures():
		return &ExitError{Code: 1}
	default:
		return nil
	}
}

func checkFile(cmd *cobra.Command, inputFile string, opts *CheckOptions) (*output.Report, error) {
	ctx := commandContext(cmd)

	cfg, err := loadConfig(ctx, opts.ConfigFile, false, false)
	if err != nil {
		return failedReport(inputFile, "", fmt.Sprintf("Invalid configuration: %v", err)), err
	}

	src, err := lines.Open(inputFile)
	if err != nil {
		return failedReport(inputFile, "", inputErrorMessage(inputFile, err)), err
	}
	defer src.Close()

	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)
	result, err := compile.New(cfg, compile.WithLogger(logger)).Run(ctx, src)
	if err != nil {
		return failedReport(inputFile, "", inputErrorMessage(inputFile, err)), err
	}

	return output.NewReport(result, inputFile, ""), nil
}
