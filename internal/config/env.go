package config

import (
	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration.
// Field names map to environment variables under the CPCHECK_ prefix.
type EnvConfig struct {
	// MaxFunctionLength is the longest function, in lines, left unflagged.
	// Env: CPCHECK_MAX_FUNCTION_LENGTH (default: 60)
	MaxFunctionLength int `envconfig:"MAX_FUNCTION_LENGTH" default:"60"`

	// MaxNestingDepth is the deepest brace nesting left unflagged.
	// Env: CPCHECK_MAX_NESTING_DEPTH (default: 3)
	MaxNestingDepth int `envconfig:"MAX_NESTING_DEPTH" default:"3"`

	// OutputFormat is the report format (text, json, yaml or table).
	// Env: CPCHECK_OUTPUT_FORMAT (default: text)
	OutputFormat string `envconfig:"OUTPUT_FORMAT" default:"text"`

	// NumberUnknown suffixes unnamed functions with #1, #2, ...
	// Env: CPCHECK_NUMBER_UNKNOWN (default: false)
	NumberUnknown bool `envconfig:"NUMBER_UNKNOWN" default:"false"`

	// LogLevel is the log verbosity level.
	// Env: CPCHECK_LOG_LEVEL (default: WARN)
	LogLevel string `envconfig:"LOG_LEVEL" default:"WARN"`

	// LogFormat is the log output format (pretty or json).
	// Env: CPCHECK_LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`
}

// LoadFromEnv loads configuration from CPCHECK_ environment variables.
func LoadFromEnv() (EnvConfig, error) {
	return LoadFromEnvWithPrefix(DefaultEnvPrefix)
}

// LoadFromEnvWithPrefix loads configuration with a custom prefix.
// For example, prefix "LINT" would read LINT_MAX_NESTING_DEPTH.
func LoadFromEnvWithPrefix(prefix string) (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToAppConfig converts EnvConfig to AppConfig.
func (e EnvConfig) ToAppConfig() AppConfig {
	cfg := NewAppConfig()

	if e.MaxFunctionLength != 0 {
		cfg = cfg.Apply(WithMaxFunctionLength(e.MaxFunctionLength))
	}
	if e.MaxNestingDepth != 0 {
		cfg = cfg.Apply(WithMaxNestingDepth(e.MaxNestingDepth))
	}
	if e.OutputFormat != "" {
		cfg = cfg.Apply(WithOutputFormat(ParseOutputFormat(e.OutputFormat)))
	}
	if e.LogLevel != "" {
		cfg = cfg.Apply(WithLogLevel(e.LogLevel))
	}
	if e.LogFormat != "" {
		cfg = cfg.Apply(WithLogFormat(parseLogFormat(e.LogFormat)))
	}
	return cfg.Apply(WithNumberUnknown(e.NumberUnknown))
}
