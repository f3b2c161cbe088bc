package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/bokkarohithreddy4-bit/cp-code-analyzer/domain/metric"
)

// RenderYAML writes the report as a YAML document.
func RenderYAML(w io.Writer, r metric.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(r)); err != nil {
		return fmt.Errorf("encode yaml report: %w", err)
	}
	return enc.Close()
}
