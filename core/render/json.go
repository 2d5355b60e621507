// Package render exports a run's canonical records in secondary formats:
// JSON for other tools, and a Markdown or PDF digest for people.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/updatesheet/core"
)

// JSONRenderer produces an indented JSON array of records, in sink order.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the records. A run with no records yields "[]".
func (r *JSONRenderer) Render(records []core.CanonicalRecord) ([]byte, error) {
	if records == nil {
		records = []core.CanonicalRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
