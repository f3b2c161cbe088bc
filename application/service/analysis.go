package service

import (
	"context"
	"fmt"

	"github.com/bokkarohithreddy4-bit/cp-code-analyzer/domain/metric"
	"github.com/bokkarohithreddy4-bit/cp-code-analyzer/infrastructure/scanning"
	"github.com/bokkarohithreddy4-bit/cp-code-analyzer/infrastructure/source"
	"github.com/bokkarohithreddy4-bit/cp-code-analyzer/internal/log"
)

// Analyzer scans a source file for functions and checks them against
// thresholds.
type Analyzer struct {
	thresholds    metric.Thresholds
	numberUnknown bool
	logger        *log.Logger
}

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*Analyzer)

// WithThresholds sets the limits functions are checked against.
func WithThresholds(t metric.Thresholds) AnalyzerOption {
	return func(a *Analyzer) { a.thresholds = t }
}

// WithNumberUnknown suffixes unnamed functions with #1, #2, ... in
// discovery order so they can be told apart.
func WithNumberUnknown(enabled bool) AnalyzerOption {
	return func(a *Analyzer) { a.numberUnknown = enabled }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) AnalyzerOption {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

// NewAnalyzer creates an Analyzer using the default thresholds unless
// overridden.
func NewAnalyzer(opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{
		thresholds: metric.DefaultThresholds(),
		logger:     log.Discard(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Thresholds returns the limits in use.
func (a *Analyzer) Thresholds() metric.Thresholds { return a.thresholds }

// AnalyzeFile reads path and analyzes it. The only error is
// source.ErrUnreadable.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string) (metric.Report, error) {
	file, err := source.Read(path)
	if err != nil {
		return metric.Report{}, fmt.Errorf("analyze %s: %w", path, err)
	}
	return a.Analyze(ctx, file), nil
}

// Analyze walks the file's lines once and aggregates the detected functions
// into a report. It never fails.
func (a *Analyzer) Analyze(ctx context.Context, file source.File) metric.Report {
	lines := file.Lines()
	logger := a.logger.With("file", file.Path())

	var functions []metric.FunctionRecord
	unnamed := 0
	for fn := range scanning.Functions(lines) {
		if a.numberUnknown && fn.IsUnnamed() {
			unnamed++
			fn = fn.WithName(fmt.Sprintf("%s#%d", metric.UnknownName, unnamed))
		}
		logger.DebugContext(ctx, "function detected",
			"name", fn.Name(),
			"start", fn.StartLine(),
			"end", fn.EndLine(),
			"max_depth", fn.MaxDepth(),
		)
		functions = append(functions, fn)
	}

	report := metric.NewReport(file.Path(), len(lines), scanning.CountLoopLines(lines), functions, a.thresholds)

	logger.InfoContext(ctx, "analysis complete",
		"lines", report.TotalLines(),
		"functions", len(functions),
		"warnings", len(report.Warnings()),
	)
	return report
}
