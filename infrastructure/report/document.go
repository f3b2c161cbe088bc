package report

import "github.com/bokkarohithreddy4-bit/cp-code-analyzer/domain/metric"

// Document is the serialisable form of a report used by the structured
// formats.
type Document struct {
	File       string             `json:"file" yaml:"file"`
	TotalLines int                `json:"totalLines" yaml:"totalLines"`
	LoopLines  int                `json:"loopLines" yaml:"loopLines"`
	Thresholds ThresholdsDocument `json:"thresholds" yaml:"thresholds"`
	Functions  []FunctionDocument `json:"functions" yaml:"functions"`
	Warnings   []WarningDocument  `json:"warnings" yaml:"warnings"`
}

// ThresholdsDocument is the serialisable form of metric.Thresholds.
type ThresholdsDocument struct {
	MaxFunctionLength int `json:"maxFunctionLength" yaml:"maxFunctionLength"`
	MaxNestingDepth   int `json:"maxNestingDepth" yaml:"maxNestingDepth"`
}

// FunctionDocument is the serialisable form of metric.FunctionRecord.
type FunctionDocument struct {
	Name      string `json:"name" yaml:"name"`
	StartLine int    `json:"startLine" yaml:"startLine"`
	EndLine   int    `json:"endLine" yaml:"endLine"`
	Length    int    `json:"length" yaml:"length"`
	MaxDepth  int    `json:"maxDepth" yaml:"maxDepth"`
}

// WarningDocument is the serialisable form of metric.Warning.
type WarningDocument struct {
	Kind      string `json:"kind" yaml:"kind"`
	Severity  string `json:"severity" yaml:"severity"`
	Function  string `json:"function" yaml:"function"`
	StartLine int    `json:"startLine" yaml:"startLine"`
	Value     int    `json:"value" yaml:"value"`
	Limit     int    `json:"limit" yaml:"limit"`
	Message   string `json:"message" yaml:"message"`
}

// NewDocument converts a report. Empty lists are kept non-nil so they
// serialise as [] rather than null.
func NewDocument(r metric.Report) Document {
	fns := r.Functions()
	functions := make([]FunctionDocument, 0, len(fns))
	for _, f := range fns {
		functions = append(functions, FunctionDocument{
			Name:      f.Name(),
			StartLine: f.StartLine(),
			EndLine:   f.EndLine(),
			Length:    f.Length(),
			MaxDepth:  f.MaxDepth(),
		})
	}

	ws := r.Warnings()
	warnings := make([]WarningDocument, 0, len(ws))
	for _, w := range ws {
		warnings = append(warnings, WarningDocument{
			Kind:      string(w.Kind()),
			Severity:  w.Severity(),
			Function:  w.Function(),
			StartLine: w.StartLine(),
			Value:     w.Value(),
			Limit:     w.Limit(),
			Message:   WarningMessage(w),
		})
	}

	return Document{
		File:       r.Path(),
		TotalLines: r.TotalLines(),
		LoopLines:  r.LoopLines(),
		Thresholds: ThresholdsDocument{
			MaxFunctionLength: r.Thresholds().MaxFunctionLength(),
			MaxNestingDepth:   r.Thresholds().MaxNestingDepth(),
		},
		Functions: functions,
		Warnings:  warnings,
	}
}
