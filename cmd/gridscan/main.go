// Package main provides the CLI entry point for gridscan-go.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/ukaji3/gridscan-go/pkg/gridscan"
	"github.com/ukaji3/gridscan-go/pkg/gridscan/models"
	"github.com/ukaji3/gridscan-go/pkg/gridscan/output"
)

// defaultInput is scanned when no input path is given.
const defaultInput = "./logs/d3p1.log"

type cliOptions struct {
	outputPath string
	format     string
	pretty     bool
	window     string
	sheet      string
	cellRange  string
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger := newLogger(os.Stderr, false)
		logger.Error().Err(err).Msg("gridscan failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:   "gridscan [input]",
		Short: "Report digits adjacent to symbols in a character grid",
		Long: `gridscan-go reads a rectangular character grid (a text log or a worksheet)
and prints the row:col coordinates of digits next to symbol cells.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, o)
		},
	}

	addFlags(rootCmd.Flags(), o)

	return rootCmd
}

func addFlags(flags *pflag.FlagSet, o *cliOptions) {
	flags.StringVarP(&o.outputPath, "output", "o", "", "Output file path (default: stdout)")
	flags.StringVar(&o.format, "format", "text", "Output format: text, json")
	flags.BoolVar(&o.pretty, "pretty", false, "Pretty-print JSON output")
	flags.StringVar(&o.window, "window", string(gridscan.WindowLiteral), "Neighbor window: literal, full")
	flags.StringVar(&o.sheet, "sheet", "", "Worksheet to read (default: first sheet)")
	flags.StringVar(&o.cellRange, "range", "", "Worksheet cell range, e.g. A1:J10")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "Enable debug logging")
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
}

func run(cmd *cobra.Command, args []string, o *cliOptions) error {
	inputPath := defaultInput
	if len(args) > 0 {
		inputPath = args[0]
	}

	window, err := gridscan.ParseWindow(o.window)
	if err != nil {
		return err
	}

	if o.format != "text" && o.format != "json" {
		return fmt.Errorf("%w: format %q (must be text or json)", gridscan.ErrInvalidOption, o.format)
	}

	logger := newLogger(cmd.ErrOrStderr(), o.verbose)
	opts := gridscan.Options{
		Window: window,
		Sheet:  o.sheet,
		Range:  o.cellRange,
		Logger: &logger,
	}

	if inputPath == "-" {
		return runStdin(cmd, o, opts)
	}

	if o.format == "text" {
		grid, err := gridscan.Load(inputPath, opts)
		if err != nil {
			return fmt.Errorf("load failed: %w", err)
		}
		return writeResult(cmd, o, grid, nil, window)
	}

	report, err := gridscan.Run(inputPath, opts)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	return writeResult(cmd, o, nil, report, window)
}

// runStdin scans a text grid read from standard input.
func runStdin(cmd *cobra.Command, o *cliOptions, opts gridscan.Options) error {
	if o.sheet != "" || o.cellRange != "" {
		return fmt.Errorf("%w: --sheet and --range need a worksheet file, not stdin", gridscan.ErrInvalidOption)
	}

	grid, err := gridscan.LoadReader(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	var report *models.Report
	if o.format == "json" {
		report = gridscan.NewReport("-", grid, opts)
	}
	return writeResult(cmd, o, grid, report, opts.Window)
}

// writeResult streams matches as text, or writes report as JSON when set.
func writeResult(cmd *cobra.Command, o *cliOptions, grid *models.Grid, report *models.Report, window gridscan.Window) error {
	out := cmd.OutOrStdout()
	if o.outputPath != "" {
		f, err := os.Create(o.outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	if report == nil {
		if err := output.WriteText(out, gridscan.Scan(grid, window)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	jsonData, err := output.ToJSON(report, o.pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	if _, err := fmt.Fprintln(out, string(jsonData)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
