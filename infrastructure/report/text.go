package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/bokkarohithreddy4-bit/cp-code-analyzer/domain/metric"
)

// RenderText writes the plain-text report. When no function was detected
// the report stops after the advisory line.
func RenderText(w io.Writer, r metric.Report) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Analyzing file: %s\n", r.Path())
	fmt.Fprintf(bw, "Total lines: %d\n", r.TotalLines())
	fmt.Fprintf(bw, "Lines containing loops (for/while): %d\n", r.LoopLines())

	if !r.HasFunctions() {
		fmt.Fprintln(bw, "No functions detected (very naive parser).")
		return bw.Flush()
	}

	fmt.Fprintln(bw, "\nDetected functions:")
	for _, f := range r.Functions() {
		fmt.Fprintf(bw, "  %s (lines %d-%d), length = %d, maxDepth = %d\n",
			f.Name(), f.StartLine(), f.EndLine(), f.Length(), f.MaxDepth())
	}

	fmt.Fprintln(bw, "\nWarnings:")
	for _, warn := range r.Warnings() {
		fmt.Fprintf(bw, "  %s\n", WarningMessage(warn))
	}
	if !r.HasWarnings() {
		fmt.Fprintln(bw, "  No warnings.")
	}

	return bw.Flush()
}

// WarningMessage describes a warning as a sentence.
func WarningMessage(w metric.Warning) string {
	switch w.Kind() {
	case metric.WarningLength:
		return fmt.Sprintf("Function '%s' is long (%d lines, limit %d).", w.Function(), w.Value(), w.Limit())
	case metric.WarningDepth:
		return fmt.Sprintf("Function '%s' has high nesting depth (%d, limit %d).", w.Function(), w.Value(), w.Limit())
	default:
		return fmt.Sprintf("Function '%s' exceeds %s limit (%d, limit %d).", w.Function(), w.Kind(), w.Value(), w.Limit())
	}
}
