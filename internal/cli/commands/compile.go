package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/captainFoxtrot/unami-csv/pkg/compile"
	"github.com/captainFoxtrot/unami-csv/pkg/lines"
	"github.com/captainFoxtrot/unami-csv/pkg/output"
)

// CompileOptions holds command-line options for the compile command.
type CompileOptions struct {
	NoHeader   bool
	NoEndComma bool
	ConfigFile string
	Report     string
	Verbose    bool
}

// NewCompileCommand creates the compile command.
func NewCompileCommand() *cobra.Command {
	opts := &CompileOptions{}

	cmd := &cobra.Command{
		Use:     "compile <inputFileName> <outputFileName>",
		Aliases: []string{"run"},
		Short:   "Compile a route list into a CSV file",
		Long: `Compile every line of the input file into a CSV row and write the rows to the output file.

Output columns:
  csgn,csgn_out,csgn_ret,dep,arr,comment

The comment column holds the text after the last " with " on the line. Lines that
do not match the route pattern are skipped and listed after the run. The output
file is only replaced once every line has been processed.

Exit codes:
  0 - Output written (some lines may have been skipped)
  2 - Missing argument, unreadable input, invalid config or unwritable output

Example:
  unami-csv compile routes.txt routes.csv
  unami-csv run routes.txt routes.csv --no-header --no-end-comma`,
		Args: cobra.MaximumNArgs(2),
		Annotations: requireArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.NoHeader, "no-header", false, "Do not write the header row")
	cmd.Flags().BoolVar(&opts.NoEndComma, "no-end-comma", false, "Omit the trailing comma on rows without a comment")
	cmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "YAML config file")
	cmd.Flags().StringVarP(&opts.Report, "report", "r", "text", "Report format (text|json)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Log each step to stderr and show run counts")

	return cmd
}

func runCompile(cmd *cobra.Command, args []string, opts *CompileOptions) error {
	ctx := commandContext(cmd)

	formatter, err := output.NewFormatter(opts.Report, output.FormatOptions{
		Verbose: opts.Verbose,
		Verb:    "Compilation",
	})
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)

	report, runErr := compileFiles(ctx, args, opts, logger)

	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if runErr != nil {
		return &ExitError{Code: 2, Err: runErr}
	}
	return nil
}

// compileFiles runs one compilation from the input file to the output file.
// The returned report is never nil; it is marked failed when err is non-nil.
func compileFiles(ctx context.Context, args []string, opts *CompileOptions, logger *slog.Logger) (*output.Report, error) {
	if missing := missingArguments(args, "inputFileName", "outputFileName"); missing != nil {
		report := output.NewReport(nil, "", "")
		report.Fail(missing.Messages()...)
		return report, missing
	}
	inputFile, outputFile := args[0], args[1]

	cfg, err := loadConfig(ctx, opts.ConfigFile, opts.NoHeader, opts.NoEndComma)
	if err != nil {
		return failedReport(inputFile, outputFile, fmt.Sprintf("Invalid configuration: %v", err)), err
	}

	logger.Debug("compiling", "input", inputFile, "output", outputFile)

	src, err := lines.Open(inputFile)
	if err != nil {
		return failedReport(inputFile, outputFile, inputErrorMessage(inputFile, err)), err
	}
	defer src.Close()

	result, err := compile.New(cfg, compile.WithLogger(logger)).Run(ctx, src)
	if err != nil {
		return failedReport(inputFile, outputFile, inputErrorMessage(inputFile, err)), err
	}

	report := output.NewReport(result, inputFile, outputFile)

	err = output.WriteFile(outputFile, func(w io.Writer) error {
		return result.WriteCSV(w, cfg.UseCRLF())
	})
	if err != nil {
		report.Fail(fmt.Sprintf("Output file could not be written: %v", err))
		return report, err
	}

	logger.Debug("output written", "path", outputFile, "rows", len(result.Rows), "run_id", report.RunID)
	return report, nil
}

func failedReport(inputFile, outputFile, msg string) *output.Report {
	report := output.NewReport(nil, inputFile, outputFile)
	report.Fail(msg)
	return report
}

func inputErrorMessage(inputFile string, err error) string {
	if errors.Is(err, lines.ErrInputNotFound) {
		return fmt.Sprintf("Input file not found: %s", inputFile)
	}
	return fmt.Sprintf("Input file could not be read: %v", err)
}
