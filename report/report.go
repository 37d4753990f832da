// Package report renders solver results for people and for machines.
package report

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/abdelaziz-lounes/hungarian-method-implementation/assignment"
)

// ErrUnknownFormat is returned for an output format with no exporter.
var ErrUnknownFormat = errors.New("report: unknown format")

// Document is the format-neutral view of one solve.
type Document struct {
	Instance   string            `json:"instance" yaml:"instance"`
	Mode       string            `json:"mode" yaml:"mode"`
	Size       int               `json:"size" yaml:"size"`
	Pairs      []assignment.Pair `json:"pairs" yaml:"pairs"`
	Cost       float64           `json:"cost" yaml:"cost"`
	LowerBound float64           `json:"lower_bound" yaml:"lower_bound"`
	Iterations int               `json:"iterations" yaml:"iterations"`
	Complete   bool              `json:"complete" yaml:"complete"`
}

// NewDocument captures res under the given instance name.
func NewDocument(name string, res assignment.Result) Document {
	pairs := res.Pairs
	if pairs == nil {
		pairs = []assignment.Pair{}
	}

	return Document{
		Instance:   name,
		Mode:       res.Mode.String(),
		Size:       res.Size(),
		Pairs:      pairs,
		Cost:       res.Cost,
		LowerBound: res.LowerBound,
		Iterations: res.Iterations,
		Complete:   res.Complete,
	}
}

// Exporter writes a Document in one output format.
type Exporter interface {
	Export(doc Document, w io.Writer) error
	Format() string
}

var exporters = map[string]Exporter{}

func register(e Exporter) { exporters[e.Format()] = e }

func init() {
	register(NewTextExporter())
	register(NewYAMLExporter())
	register(NewJSONExporter())
	register(NewTableExporter())
}

// Lookup returns the exporter registered for format.
func Lookup(format string) (Exporter, error) {
	e, ok := exporters[format]
	if !ok {
		return nil, fmt.Errorf("format %q (want one of %v): %w", format, Formats(), ErrUnknownFormat)
	}

	return e, nil
}

// Formats lists the supported format names in sorted order.
func Formats() []string {
	names := make([]string, 0, len(exporters))
	for n := range exporters {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// Render writes res for instance name to w in the requested format.
func Render(w io.Writer, name string, res assignment.Result, format string) error {
	e, err := Lookup(format)
	if err != nil {
		return err
	}

	return e.Export(NewDocument(name, res), w)
}

// formatCost prints the shortest decimal form of v (54, 12.5).
func formatCost(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
