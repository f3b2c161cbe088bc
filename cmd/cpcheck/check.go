package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"

	"github.com/bokkarohithreddy4-bit/cp-code-analyzer/application/service"
	"github.com/bokkarohithreddy4-bit/cp-code-analyzer/infrastructure/report"
	"github.com/bokkarohithreddy4-bit/cp-code-analyzer/infrastructure/source"
	"github.com/bokkarohithreddy4-bit/cp-code-analyzer/internal/config"
	"github.com/bokkarohithreddy4-bit/cp-code-analyzer/internal/log"
)

const usageLine = "Usage: cpcheck <file.cpp>"

// checkFlags holds command line overrides. A flag only takes effect when it
// was set explicitly.
type checkFlags struct {
	envFile       string
	maxLength     int
	maxDepth      int
	format        string
	numberUnknown bool
}

func checkCmd() *cobra.Command {
	var flags checkFlags

	cmd := &cobra.Command{
		Use:   "cpcheck [flags] <file>",
		Short: "Report function length and brace nesting depth for a source file",
		Long: `cpcheck scans one C-like source file and reports, per detected function,
its line span, length and maximum brace-nesting depth. Functions longer or
deeper than the configured limits are listed as warnings.

Detection is heuristic: a function header is a single line containing
parentheses and ending in '{', not starting with if/for/while/switch.
Braces inside strings and comments are counted.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables:
  CPCHECK_MAX_FUNCTION_LENGTH  Longest function not flagged (default: 60)
  CPCHECK_MAX_NESTING_DEPTH    Deepest nesting not flagged (default: 3)
  CPCHECK_OUTPUT_FORMAT        Report format: text, json, yaml, table (default: text)
  CPCHECK_NUMBER_UNKNOWN       Number unnamed functions unknown#1, unknown#2, ... (default: false)
  CPCHECK_LOG_LEVEL            Log level: DEBUG, INFO, WARN, ERROR (default: WARN)
  CPCHECK_LOG_FORMAT           Log format: pretty, json (default: pretty)`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().IntVar(&flags.maxLength, "max-length", config.DefaultMaxFunctionLength, "Longest function, in lines, that is not flagged")
	cmd.Flags().IntVar(&flags.maxDepth, "max-depth", config.DefaultMaxNestingDepth, "Deepest brace nesting that is not flagged")
	cmd.Flags().StringVar(&flags.format, "format", string(config.DefaultOutputFormat), "Report format: text, json, yaml, table")
	cmd.Flags().BoolVar(&flags.numberUnknown, "number-unknown", false, "Number unnamed functions unknown#1, unknown#2, ...")

	return cmd
}

func runCheck(ctx context.Context, cmd *cobra.Command, args []string, flags checkFlags) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		fmt.Fprintln(out, usageLine)
		return nil
	}
	path := args[0]

	cfg, err := loadConfig(flags.envFile)
	if err != nil {
		return err
	}
	cfg = applyCheckOverrides(cfg, cmd, flags)
	if err := cfg.Validate(); err != nil {
		return err
	}

	renderer, err := report.ForFormat(cfg.OutputFormat())
	if err != nil {
		return err
	}

	logger := log.NewLogger(cfg)
	ctx = log.WithCorrelationID(ctx, ulid.Make().String())
	logger.WithContext(ctx).Slog().LogAttrs(ctx, slog.LevelDebug, "configuration loaded", cfg.LogAttrs()...)

	analyzer := service.NewAnalyzer(
		service.WithThresholds(cfg.Thresholds()),
		service.WithNumberUnknown(cfg.NumberUnknown()),
		service.WithLogger(logger),
	)

	return analyze(ctx, out, analyzer, renderer, logger, path)
}

func analyze(ctx context.Context, out io.Writer, analyzer *service.Analyzer, renderer report.Renderer, logger *log.Logger, path string) error {
	rep, err := analyzer.AnalyzeFile(ctx, path)
	if errors.Is(err, source.ErrUnreadable) {
		logger.DebugContext(ctx, "source file unreadable", "path", path, "error", err)
		fmt.Fprintf(out, "Could not open file: %s\n", path)
		return nil
	}
	if err != nil {
		return err
	}

	if err := renderer.Render(out, rep); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

// applyCheckOverrides applies explicitly set flags on top of the loaded
// configuration.
func applyCheckOverrides(cfg config.AppConfig, cmd *cobra.Command, flags checkFlags) config.AppConfig {
	changed := cmd.Flags().Changed

	var opts []config.AppConfigOption
	if changed("max-length") {
		opts = append(opts, config.WithMaxFunctionLength(flags.maxLength))
	}
	if changed("max-depth") {
		opts = append(opts, config.WithMaxNestingDepth(flags.maxDepth))
	}
	if changed("format") {
		opts = append(opts, config.WithOutputFormat(config.ParseOutputFormat(flags.format)))
	}
	if changed("number-unknown") {
		opts = append(opts, config.WithNumberUnknown(flags.numberUnknown))
	}
	return cfg.Apply(opts...)
}
