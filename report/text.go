package report

import (
	"bufio"
	"fmt"
	"io"
)

// Lines of the plain-text report.
const (
	textHeader   = "Assignation optimale des commerces aux emplacements :"
	textPairLine = "Commerce c%d -> Emplacement e%d\n"
	totalLabel   = "Coût total minimal : "
)

// TextExporter prints one line per pair in extraction order followed by
// a blank line and the total cost.
type TextExporter struct{}

// NewTextExporter creates a new text exporter
func NewTextExporter() *TextExporter {
	return &TextExporter{}
}

// Format returns the exporter format identifier
func (e *TextExporter) Format() string {
	return "text"
}

// Export writes doc as plain text
func (e *TextExporter) Export(doc Document, w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, textHeader)
	for _, p := range doc.Pairs {
		fmt.Fprintf(bw, textPairLine, p.Entity, p.Location)
	}
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, totalLabel+formatCost(doc.Cost))

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write text report: %w", err)
	}

	return nil
}
