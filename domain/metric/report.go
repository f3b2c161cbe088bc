package metric

// Report is the aggregated result of analysing one file.
type Report struct {
	path       string
	totalLines int
	loopLines  int
	functions  []FunctionRecord
	warnings   []Warning
	thresholds Thresholds
}

// NewReport creates a Report. Warnings are derived from functions and
// thresholds, in discovery order.
func NewReport(path string, totalLines, loopLines int, functions []FunctionRecord, thresholds Thresholds) Report {
	fns := make([]FunctionRecord, len(functions))
	copy(fns, functions)

	var warnings []Warning
	for _, f := range fns {
		warnings = append(warnings, thresholds.Check(f)...)
	}

	return Report{
		path:       path,
		totalLines: totalLines,
		loopLines:  loopLines,
		functions:  fns,
		warnings:   warnings,
		thresholds: thresholds,
	}
}

// Path returns the analysed file path.
func (r Report) Path() string { return r.path }

// TotalLines returns the number of lines in the file.
func (r Report) TotalLines() int { return r.totalLines }

// LoopLines returns the number of lines mentioning "for" or "while".
func (r Report) LoopLines() int { return r.loopLines }

// Functions returns the detected functions in discovery order.
func (r Report) Functions() []FunctionRecord {
	result := make([]FunctionRecord, len(r.functions))
	copy(result, r.functions)
	return result
}

// Warnings returns the threshold violations in discovery order.
func (r Report) Warnings() []Warning {
	result := make([]Warning, len(r.warnings))
	copy(result, r.warnings)
	return result
}

// Thresholds returns the limits the report was checked against.
func (r Report) Thresholds() Thresholds { return r.thresholds }

// HasFunctions reports whether any function was detected.
func (r Report) HasFunctions() bool { return len(r.functions) > 0 }

// HasWarnings reports whether any threshold was exceeded.
func (r Report) HasWarnings() bool { return len(r.warnings) > 0 }
