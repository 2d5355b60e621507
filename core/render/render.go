package render

import (
	"fmt"

	"github.com/gaurav-prasanna/updatesheet/core"
)

// Renderer serializes a run's records into one export format.
type Renderer interface {
	Render(records []core.CanonicalRecord) ([]byte, error)
	Extension() string
}

// Export formats.
const (
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatPDF      = "pdf"
)

// ForFormat returns the renderer for format.
func ForFormat(format string) (Renderer, error) {
	switch format {
	case FormatJSON:
		return NewJSONRenderer(), nil
	case FormatMarkdown:
		return NewMarkdownRenderer(), nil
	case FormatPDF:
		return NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}
