// Package report renders analysis reports in the supported output formats.
package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/bokkarohithreddy4-bit/cp-code-analyzer/domain/metric"
	"github.com/bokkarohithreddy4-bit/cp-code-analyzer/internal/config"
)

// ErrUnknownFormat indicates an output format with no renderer.
var ErrUnknownFormat = errors.New("unknown output format")

// Renderer writes a report to w.
type Renderer interface {
	Render(w io.Writer, r metric.Report) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(w io.Writer, r metric.Report) error

// Render calls f(w, r).
func (f RendererFunc) Render(w io.Writer, r metric.Report) error { return f(w, r) }

// ForFormat returns the renderer for format.
func ForFormat(format config.OutputFormat) (Renderer, error) {
	switch format {
	case config.OutputFormatText, "":
		return RendererFunc(RenderText), nil
	case config.OutputFormatJSON:
		return RendererFunc(RenderJSON), nil
	case config.OutputFormatYAML:
		return RendererFunc(RenderYAML), nil
	case config.OutputFormatTable:
		return RendererFunc(RenderTable), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
