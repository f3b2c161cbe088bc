package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bokkarohithreddy4-bit/cp-code-analyzer/domain/metric"
)

func TestDefaultConstants(t *testing.T) {
	assert.Equal(t, 60, DefaultMaxFunctionLength)
	assert.Equal(t, 3, DefaultMaxNestingDepth)
	assert.Equal(t, "WARN", DefaultLogLevel)
	assert.Equal(t, OutputFormatText, DefaultOutputFormat)
	assert.Equal(t, "CPCHECK", DefaultEnvPrefix)
}

func TestAppConfig_Defaults(t *testing.T) {
	cfg := NewAppConfig()

	assert.Equal(t, DefaultMaxFunctionLength, cfg.MaxFunctionLength())
	assert.Equal(t, DefaultMaxNestingDepth, cfg.MaxNestingDepth())
	assert.Equal(t, OutputFormatText, cfg.OutputFormat())
	assert.False(t, cfg.NumberUnknown())
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel())
	assert.Equal(t, LogFormatPretty, cfg.LogFormat())
	assert.Equal(t, metric.DefaultThresholds(), cfg.Thresholds())
	assert.NoError(t, cfg.Validate())
}

func TestAppConfig_WithOptions(t *testing.T) {
	cfg := NewAppConfigWithOptions(
		WithMaxFunctionLength(100),
		WithMaxNestingDepth(6),
		WithOutputFormat(OutputFormatJSON),
		WithNumberUnknown(true),
		WithLogLevel("DEBUG"),
		WithLogFormat(LogFormatJSON),
	)

	assert.Equal(t, 100, cfg.MaxFunctionLength())
	assert.Equal(t, 6, cfg.MaxNestingDepth())
	assert.Equal(t, OutputFormatJSON, cfg.OutputFormat())
	assert.True(t, cfg.NumberUnknown())
	assert.Equal(t, "DEBUG", cfg.LogLevel())
	assert.Equal(t, LogFormatJSON, cfg.LogFormat())
	assert.Equal(t, metric.NewThresholds(100, 6), cfg.Thresholds())
}

func TestAppConfig_ApplyDoesNotMutateReceiver(t *testing.T) {
	base := NewAppConfig()
	changed := base.Apply(WithMaxNestingDepth(9))

	assert.Equal(t, DefaultMaxNestingDepth, base.MaxNestingDepth())
	assert.Equal(t, 9, changed.MaxNestingDepth())
}

func TestAppConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    []AppConfigOption
		wantErr bool
	}{
		{"defaults", nil, false},
		{"all formats", []AppConfigOption{WithOutputFormat(OutputFormatTable)}, false},
		{"zero length", []AppConfigOption{WithMaxFunctionLength(0)}, true},
		{"negative depth", []AppConfigOption{WithMaxNestingDepth(-1)}, true},
		{"unknown format", []AppConfigOption{WithOutputFormat("xml")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewAppConfigWithOptions(tt.opts...).Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParseOutputFormat(t *testing.T) {
	assert.Equal(t, OutputFormatJSON, ParseOutputFormat(" JSON "))
	assert.Equal(t, OutputFormatTable, ParseOutputFormat("table"))
	assert.Equal(t, OutputFormat("xml"), ParseOutputFormat("XML"))
}

func TestOutputFormats(t *testing.T) {
	assert.ElementsMatch(t, []OutputFormat{"text", "json", "yaml", "table"}, OutputFormats())
}

func TestAppConfig_LogAttrs(t *testing.T) {
	attrs := NewAppConfig().LogAttrs()

	keys := make([]string, 0, len(attrs))
	for _, a := range attrs {
		keys = append(keys, a.Key)
	}
	assert.Contains(t, keys, "max_function_length")
	assert.Contains(t, keys, "max_nesting_depth")
	assert.Contains(t, keys, "output_format")
	assert.Equal(t, slog.KindInt64, attrs[0].Value.Kind())
}
