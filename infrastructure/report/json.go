package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bokkarohithreddy4-bit/cp-code-analyzer/domain/metric"
)

// RenderJSON writes the report as indented JSON.
func RenderJSON(w io.Writer, r metric.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(r)); err != nil {
		return fmt.Errorf("encode json report: %w", err)
	}
	return nil
}
