// Package config provides application configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bokkarohithreddy4-bit/cp-code-analyzer/domain/metric"
)

// Default configuration values.
const (
	DefaultMaxFunctionLength = metric.DefaultMaxFunctionLength
	DefaultMaxNestingDepth   = metric.DefaultMaxNestingDepth
	DefaultLogLevel          = "WARN"
	DefaultOutputFormat      = OutputFormatText
	DefaultEnvPrefix         = "CPCHECK"
)

// ErrInvalidConfig indicates a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// OutputFormat represents the report output format.
type OutputFormat string

// OutputFormat values.
const (
	OutputFormatText  OutputFormat = "text"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
	OutputFormatTable OutputFormat = "table"
)

// OutputFormats lists the supported report formats.
func OutputFormats() []OutputFormat {
	return []OutputFormat{OutputFormatText, OutputFormatJSON, OutputFormatYAML, OutputFormatTable}
}

// AppConfig holds the main application configuration.
type AppConfig struct {
	maxFunctionLength int
	maxNestingDepth   int
	outputFormat      OutputFormat
	numberUnknown     bool
	logLevel          string
	logFormat         LogFormat
}

// NewAppConfig creates a new AppConfig with defaults.
func NewAppConfig() AppConfig {
	return AppConfig{
		maxFunctionLength: DefaultMaxFunctionLength,
		maxNestingDepth:   DefaultMaxNestingDepth,
		outputFormat:      DefaultOutputFormat,
		logLevel:          DefaultLogLevel,
		logFormat:         LogFormatPretty,
	}
}

// MaxFunctionLength returns the longest function, in lines, that is not flagged.
func (c AppConfig) MaxFunctionLength() int { return c.maxFunctionLength }

// MaxNestingDepth returns the deepest brace nesting that is not flagged.
func (c AppConfig) MaxNestingDepth() int { return c.maxNestingDepth }

// Thresholds returns the configured limits as a domain value.
func (c AppConfig) Thresholds() metric.Thresholds {
	return metric.NewThresholds(c.maxFunctionLength, c.maxNestingDepth)
}

// OutputFormat returns the report format.
func (c AppConfig) OutputFormat() OutputFormat { return c.outputFormat }

// NumberUnknown returns whether unnamed functions get a numeric suffix.
func (c AppConfig) NumberUnknown() bool { return c.numberUnknown }

// LogLevel returns the log verbosity level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log output format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// Validate checks that thresholds are positive and the output format is known.
func (c AppConfig) Validate() error {
	if c.maxFunctionLength <= 0 {
		return fmt.Errorf("%w: max function length must be positive, got %d", ErrInvalidConfig, c.maxFunctionLength)
	}
	if c.maxNestingDepth <= 0 {
		return fmt.Errorf("%w: max nesting depth must be positive, got %d", ErrInvalidConfig, c.maxNestingDepth)
	}
	for _, f := range OutputFormats() {
		if c.outputFormat == f {
			return nil
		}
	}
	return fmt.Errorf("%w: unknown output format %q", ErrInvalidConfig, c.outputFormat)
}

// AppConfigOption is a functional option for AppConfig.
type AppConfigOption func(*AppConfig)

// WithMaxFunctionLength sets the function length limit.
func WithMaxFunctionLength(n int) AppConfigOption {
	return func(c *AppConfig) { c.maxFunctionLength = n }
}

// WithMaxNestingDepth sets the nesting depth limit.
func WithMaxNestingDepth(n int) AppConfigOption {
	return func(c *AppConfig) { c.maxNestingDepth = n }
}

// WithOutputFormat sets the report format.
func WithOutputFormat(format OutputFormat) AppConfigOption {
	return func(c *AppConfig) { c.outputFormat = format }
}

// WithNumberUnknown sets whether unnamed functions are numbered.
func WithNumberUnknown(enabled bool) AppConfigOption {
	return func(c *AppConfig) { c.numberUnknown = enabled }
}

// WithLogLevel sets the log level.
func WithLogLevel(level string) AppConfigOption {
	return func(c *AppConfig) { c.logLevel = level }
}

// WithLogFormat sets the log format.
func WithLogFormat(format LogFormat) AppConfigOption {
	return func(c *AppConfig) { c.logFormat = format }
}

// NewAppConfigWithOptions creates an AppConfig with functional options.
func NewAppConfigWithOptions(opts ...AppConfigOption) AppConfig {
	return NewAppConfig().Apply(opts...)
}

// Apply returns a new AppConfig with the given options applied.
func (c AppConfig) Apply(opts ...AppConfigOption) AppConfig {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// LogAttrs returns slog attributes for logging the configuration.
func (c AppConfig) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.Int("max_function_length", c.maxFunctionLength),
		slog.Int("max_nesting_depth", c.maxNestingDepth),
		slog.String("output_format", string(c.outputFormat)),
		slog.Bool("number_unknown", c.numberUnknown),
		slog.String("log_level", c.logLevel),
	}
}

// ParseOutputFormat parses a report format name, case-insensitively.
// Unrecognised names are returned as-is so Validate can reject them.
func ParseOutputFormat(s string) OutputFormat {
	return OutputFormat(strings.ToLower(strings.TrimSpace(s)))
}

// parseLogFormat parses a log format string.
func parseLogFormat(s string) LogFormat {
	switch strings.ToLower(s) {
	case "json":
		return LogFormatJSON
	default:
		return LogFormatPretty
	}
}
