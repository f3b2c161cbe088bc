// Package metric provides domain types for per-function structural metrics.
package metric

// UnknownName is the name given to a function whose identifier could not be
// extracted from its header line.
const UnknownName = "unknown"

// FunctionRecord holds the metrics of one detected function.
// Immutable value object.
type FunctionRecord struct {
	name      string
	startLine int
	endLine   int
	maxDepth  int
}

// NewFunctionRecord creates a FunctionRecord spanning startLine..endLine
// (1-based, inclusive). An endLine before startLine is clamped to startLine.
func NewFunctionRecord(name string, startLine, endLine, maxDepth int) FunctionRecord {
	if name == "" {
		name = UnknownName
	}
	if endLine < startLine {
		endLine = startLine
	}
	return FunctionRecord{
		name:      name,
		startLine: startLine,
		endLine:   endLine,
		maxDepth:  maxDepth,
	}
}

// Name returns the extracted function name or UnknownName.
func (f FunctionRecord) Name() string { return f.name }

// StartLine returns the 1-based header line.
func (f FunctionRecord) StartLine() int { return f.startLine }

// EndLine returns the 1-based line on which the function closed.
func (f FunctionRecord) EndLine() int { return f.endLine }

// Length returns the number of lines spanned, header included.
func (f FunctionRecord) Length() int { return f.endLine - f.startLine + 1 }

// MaxDepth returns the deepest brace nesting reached, the function's own
// braces counting as depth 1.
func (f FunctionRecord) MaxDepth() int { return f.maxDepth }

// IsUnnamed reports whether name extraction failed for this function.
func (f FunctionRecord) IsUnnamed() bool { return f.name == UnknownName }

// WithName returns a copy of the record carrying a different name.
func (f FunctionRecord) WithName(name string) FunctionRecord {
	f.name = name
	return f
}
