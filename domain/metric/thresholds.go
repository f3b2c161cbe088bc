package metric

// Default threshold values.
const (
	DefaultMaxFunctionLength = 60
	DefaultMaxNestingDepth   = 3

	// CriticalMultiplier is the factor applied to a limit to derive the
	// critical-severity boundary.
	CriticalMultiplier = 2
)

// Thresholds holds the limits a function is checked against.
type Thresholds struct {
	maxFunctionLength int
	maxNestingDepth   int
}

// NewThresholds creates Thresholds with the given limits.
func NewThresholds(maxFunctionLength, maxNestingDepth int) Thresholds {
	return Thresholds{
		maxFunctionLength: maxFunctionLength,
		maxNestingDepth:   maxNestingDepth,
	}
}

// DefaultThresholds returns the default limits (60 lines, depth 3).
func DefaultThresholds() Thresholds {
	return NewThresholds(DefaultMaxFunctionLength, DefaultMaxNestingDepth)
}

// MaxFunctionLength returns the longest function, in lines, that is not flagged.
func (t Thresholds) MaxFunctionLength() int { return t.maxFunctionLength }

// MaxNestingDepth returns the deepest nesting that is not flagged.
func (t Thresholds) MaxNestingDepth() int { return t.maxNestingDepth }

// Check returns the warnings raised by a single function, length first.
func (t Thresholds) Check(f FunctionRecord) []Warning {
	var warnings []Warning
	if f.Length() > t.maxFunctionLength {
		warnings = append(warnings, newWarning(WarningLength, f, f.Length(), t.maxFunctionLength))
	}
	if f.MaxDepth() > t.maxNestingDepth {
		warnings = append(warnings, newWarning(WarningDepth, f, f.MaxDepth(), t.maxNestingDepth))
	}
	return warnings
}
