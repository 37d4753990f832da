package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONExporter writes the Document as indented JSON.
type JSONExporter struct{}

// NewJSONExporter creates a new JSON exporter
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Format returns the exporter format identifier
func (e *JSONExporter) Format() string {
	return "json"
}

// Export writes doc as JSON
func (e *JSONExporter) Export(doc Document, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
