package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	totalStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// TableExporter draws the pairs as a bordered terminal table.
type TableExporter struct{}

// NewTableExporter creates a new table exporter
func NewTableExporter() *TableExporter {
	return &TableExporter{}
}

// Format returns the exporter format identifier
func (e *TableExporter) Format() string {
	return "table"
}

// Export writes doc as a lipgloss table followed by the total line
func (e *TableExporter) Export(doc Document, w io.Writer) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Commerce", "Emplacement").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, p := range doc.Pairs {
		t.Row("c"+strconv.Itoa(p.Entity), "e"+strconv.Itoa(p.Location))
	}

	title := fmt.Sprintf("%s · %s · N=%d", doc.Instance, doc.Mode, doc.Size)
	out := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		t.String(),
		totalStyle.Render(totalLabel+formatCost(doc.Cost)),
		fmt.Sprintf("Borne inférieure : %s  ·  itérations : %d", formatCost(doc.LowerBound), doc.Iterations),
	)
	if !doc.Complete {
		out = lipgloss.JoinVertical(lipgloss.Left, out,
			warnStyle.Render(fmt.Sprintf("affectation partielle : %d / %d", len(doc.Pairs), doc.Size)))
	}

	if _, err := io.WriteString(w, out+"\n"); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}

	return nil
}
