package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLExporter writes the Document as a YAML mapping.
type YAMLExporter struct{}

// NewYAMLExporter creates a new YAML exporter
func NewYAMLExporter() *YAMLExporter {
	return &YAMLExporter{}
}

// Format returns the exporter format identifier
func (e *YAMLExporter) Format() string {
	return "yaml"
}

// Export writes doc as YAML
func (e *YAMLExporter) Export(doc Document, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}
