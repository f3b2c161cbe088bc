package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/bokkarohithreddy4-bit/cp-code-analyzer/domain/metric"
)

// RenderTable writes the report as a summary line followed by a function
// table and, when present, a warning table.
func RenderTable(w io.Writer, r metric.Report) error {
	if _, err := fmt.Fprintf(w, "%s: %d lines, %d loop lines, %d functions\n",
		r.Path(), r.TotalLines(), r.LoopLines(), len(r.Functions())); err != nil {
		return err
	}
	if !r.HasFunctions() {
		return nil
	}

	rows := make([][]string, 0, len(r.Functions()))
	for _, f := range r.Functions() {
		rows = append(rows, []string{
			f.Name(),
			fmt.Sprintf("%d-%d", f.StartLine(), f.EndLine()),
			strconv.Itoa(f.Length()),
			strconv.Itoa(f.MaxDepth()),
		})
	}
	if err := renderTable(w, []string{"Function", "Lines", "Length", "Max Depth"}, rows); err != nil {
		return err
	}

	if !r.HasWarnings() {
		return nil
	}

	rows = rows[:0]
	for _, wr := range r.Warnings() {
		rows = append(rows, []string{
			wr.Severity(),
			wr.Function(),
			string(wr.Kind()),
			strconv.Itoa(wr.Value()),
			strconv.Itoa(wr.Limit()),
		})
	}
	return renderTable(w, []string{"Severity", "Function", "Kind", "Value", "Limit"}, rows)
}

func renderTable(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(header)
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("build table: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}
