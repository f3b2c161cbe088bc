package metric

// WarningKind identifies which threshold a function exceeded.
type WarningKind string

// WarningKind values.
const (
	WarningLength WarningKind = "length"
	WarningDepth  WarningKind = "depth"
)

// Severity levels for warnings.
const (
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// Warning records one threshold violation.
type Warning struct {
	kind      WarningKind
	function  string
	startLine int
	value     int
	limit     int
}

func newWarning(kind WarningKind, f FunctionRecord, value, limit int) Warning {
	return Warning{
		kind:      kind,
		function:  f.Name(),
		startLine: f.StartLine(),
		value:     value,
		limit:     limit,
	}
}

// Kind returns the exceeded threshold.
func (w Warning) Kind() WarningKind { return w.kind }

// Function returns the offending function's name.
func (w Warning) Function() string { return w.function }

// StartLine returns the offending function's header line.
func (w Warning) StartLine() int { return w.startLine }

// Value returns the measured length or depth.
func (w Warning) Value() int { return w.value }

// Limit returns the threshold that was exceeded.
func (w Warning) Limit() int { return w.limit }

// Severity returns SeverityCritical once the value reaches CriticalMultiplier
// times the limit, SeverityWarning otherwise.
func (w Warning) Severity() string {
	if w.limit > 0 && w.value >= w.limit*CriticalMultiplier {
		return SeverityCritical
	}
	return SeverityWarning
}
