package service

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bokkarohithreddy4-bit/cp-code-analyzer/domain/metric"
	"github.com/bokkarohithreddy4-bit/cp-code-analyzer/infrastructure/source"
	"github.com/bokkarohithreddy4-bit/cp-code-analyzer/internal/config"
	"github.com/bokkarohithreddy4-bit/cp-code-analyzer/internal/log"
)

func analyze(t *testing.T, a *Analyzer, content string) metric.Report {
	t.Helper()
	return a.Analyze(context.Background(), source.NewFile("test.cpp", source.SplitLines(content)))
}

func TestAnalyzer_TwoLineFunction(t *testing.T) {
	r := analyze(t, NewAnalyzer(), "void f() {\n}\n")

	assert.Equal(t, 2, r.TotalLines())
	assert.Equal(t, 0, r.LoopLines())
	require.Len(t, r.Functions(), 1)

	f := r.Functions()[0]
	assert.Equal(t, "f", f.Name())
	assert.Equal(t, 1, f.StartLine())
	assert.Equal(t, 2, f.EndLine())
	assert.Equal(t, 2, f.Length())
	assert.Equal(t, 1, f.MaxDepth())
	assert.Empty(t, r.Warnings())
}

func TestAnalyzer_EmptyFile(t *testing.T) {
	r := analyze(t, NewAnalyzer(), "")

	assert.Equal(t, 0, r.TotalLines())
	assert.Equal(t, 0, r.LoopLines())
	assert.False(t, r.HasFunctions())
	assert.False(t, r.HasWarnings())
}

func TestAnalyzer_LongFunctionWarning(t *testing.T) {
	// 1 header + 59 body lines + 1 closing brace = 61 lines.
	body := strings.Repeat("    x++;\n", 59)
	r := analyze(t, NewAnalyzer(), "int long_one() {\n"+body+"}\n")

	require.Len(t, r.Functions(), 1)
	assert.Equal(t, 61, r.Functions()[0].Length())
	require.Len(t, r.Warnings(), 1)
	assert.Equal(t, metric.WarningLength, r.Warnings()[0].Kind())
	assert.Equal(t, "long_one", r.Warnings()[0].Function())
}

func TestAnalyzer_DeepFunctionWarning(t *testing.T) {
	src := "void deep() {\n{\n{\n{\n}\n}\n}\n}\n"
	r := analyze(t, NewAnalyzer(), src)

	require.Len(t, r.Functions(), 1)
	assert.Equal(t, 4, r.Functions()[0].MaxDepth())
	require.Len(t, r.Warnings(), 1)
	assert.Equal(t, metric.WarningDepth, r.Warnings()[0].Kind())
}

func TestAnalyzer_CustomThresholds(t *testing.T) {
	a := NewAnalyzer(WithThresholds(metric.NewThresholds(1, 1)))
	r := analyze(t, a, "void f() {\n  if (x) {\n  }\n}\n")

	require.Len(t, r.Warnings(), 2)
	assert.Equal(t, metric.WarningLength, r.Warnings()[0].Kind())
	assert.Equal(t, metric.WarningDepth, r.Warnings()[1].Kind())
	assert.Equal(t, metric.NewThresholds(1, 1), a.Thresholds())
}

func TestAnalyzer_LoopLines(t *testing.T) {
	src := "int main() {\n  for (;;) {}\n  while (1) {}\n  list.forEach(g);\n}\n"
	r := analyze(t, NewAnalyzer(), src)

	assert.Equal(t, 3, r.LoopLines())
}

func TestAnalyzer_UnknownNamesPreservedByDefault(t *testing.T) {
	src := "auto a = [](int x) {\n};\nauto b = [](int y) {\n};\n"
	r := analyze(t, NewAnalyzer(), src)

	require.Len(t, r.Functions(), 2)
	assert.Equal(t, "unknown", r.Functions()[0].Name())
	assert.Equal(t, "unknown", r.Functions()[1].Name())
}

func TestAnalyzer_NumberUnknown(t *testing.T) {
	src := "auto a = [](int x) {\n};\nvoid named() {\n}\nauto b = [](int y) {\n};\n"
	r := analyze(t, NewAnalyzer(WithNumberUnknown(true)), src)

	names := make([]string, 0, 3)
	for _, f := range r.Functions() {
		names = append(names, f.Name())
	}
	assert.Equal(t, []string{"unknown#1", "named", "unknown#2"}, names)
}

func TestAnalyzer_LogsWithCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewLoggerWithWriter(&buf, config.LogFormatJSON, "DEBUG")
	a := NewAnalyzer(WithLogger(logger))

	ctx := log.WithCorrelationID(context.Background(), "run-1")
	a.Analyze(ctx, source.NewFile("x.cpp", []string{"void f() {", "}"}))

	out := buf.String()
	assert.Contains(t, out, `"correlation_id":"run-1"`)
	assert.Contains(t, out, `"msg":"function detected"`)
	assert.Contains(t, out, `"file":"x.cpp"`)
}

func TestAnalyzer_AnalyzeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.cpp")
	require.NoError(t, os.WriteFile(path, []byte("int main() {\n  return 0;\n}\n"), 0o644))

	r, err := NewAnalyzer().AnalyzeFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, path, r.Path())
	assert.Equal(t, 3, r.TotalLines())
	require.Len(t, r.Functions(), 1)
	assert.Equal(t, "main", r.Functions()[0].Name())
}

func TestAnalyzer_AnalyzeFile_Missing(t *testing.T) {
	_, err := NewAnalyzer().AnalyzeFile(context.Background(), filepath.Join(t.TempDir(), "nope.cpp"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, source.ErrUnreadable))
}
