// Package report renders simulation output as terminal tables. It treats the
// engine as a black box: everything it needs is in the stage history and the
// compliance records.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Omondi-otieno/Wastewater-Treatment-Simulation/internal/compliance"
	"github.com/Omondi-otieno/Wastewater-Treatment-Simulation/internal/treatment"
)

const (
	statusPass = "PASS"
	statusFail = "FAIL"
)

type styleSet struct {
	title  lipgloss.Style
	header lipgloss.Style
	pass   lipgloss.Style
	fail   lipgloss.Style
}

func newStyleSet(color bool) styleSet {
	if !color {
		plain := lipgloss.NewStyle()
		return styleSet{title: plain, header: plain, pass: plain, fail: plain}
	}
	return styleSet{
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		header: lipgloss.NewStyle().Bold(true),
		pass:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		fail:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

// Renderer writes simulation results for one plan as terminal tables.
type Renderer struct {
	out    io.Writer
	styles styleSet
}

// NewRenderer creates a renderer. Styling is disabled when color is false.
func NewRenderer(out io.Writer, color bool) *Renderer {
	return &Renderer{out: out, styles: newStyleSet(color)}
}

// Render writes the full report for one simulation: a title block, the
// per-stage concentration table and the final compliance table.
func (r *Renderer) Render(sim *treatment.Simulation, records []compliance.Record) {
	title := fmt.Sprintf("Tropical Timber Paper Mill — Treatment %s (design flow %.0f m³/day)",
		sim.Plan, treatment.DesignFlowM3PerDay)
	fmt.Fprintln(r.out, r.styles.title.Render(title))
	fmt.Fprintln(r.out)

	fmt.Fprint(r.out, r.StageTable(sim.History()))
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.styles.header.Render("FINAL EFFLUENT COMPLIANCE CHECK:"))
	fmt.Fprint(r.out, r.ComplianceTable(records))
}

// StageTable renders one row per parameter with a column per pipeline stage.
func (r *Renderer) StageTable(history []treatment.HistoryEntry) string {
	headers := make([]string, 0, len(history)+1)
	headers = append(headers, "Parameter")
	for _, entry := range history {
		headers = append(headers, entry.Stage)
	}

	plain := lipgloss.NewStyle()
	rows := make([][]cell, 0, len(treatment.Parameters))
	for _, p := range treatment.Parameters {
		row := make([]cell, 0, len(history)+1)
		row = append(row, cell{text: string(p), style: plain})
		for _, entry := range history {
			row = append(row, cell{text: fmt.Sprintf("%.2f", entry.Values[p]), style: plain})
		}
		rows = append(rows, row)
	}

	return renderGrid(headers, rows, r.styles.header)
}

// ComplianceTable renders the per-parameter pass/fail verdicts.
func (r *Renderer) ComplianceTable(records []compliance.Record) string {
	headers := []string{"Parameter", "Effluent Value", "Limit", "Status"}

	plain := lipgloss.NewStyle()
	rows := make([][]cell, 0, len(records))
	for _, rec := range records {
		limit := "N/A"
		if rec.HasLimit {
			limit = rec.Limit.String()
		}
		status := cell{text: statusPass, style: r.styles.pass}
		if !rec.Pass {
			status = cell{text: statusFail, style: r.styles.fail}
		}
		rows = append(rows, []cell{
			{text: string(rec.Parameter), style: plain},
			{text: fmt.Sprintf("%.2f", rec.Value), style: plain},
			{text: limit, style: plain},
			status,
		})
	}

	return renderGrid(headers, rows, r.styles.header)
}

type cell struct {
	text  string
	style lipgloss.Style
}

// renderGrid draws a bordered table. Cells are padded before styling so ANSI
// escape codes never skew column widths.
func renderGrid(headers []string, rows [][]cell, headerStyle lipgloss.Style) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, c := range row {
			if w := lipgloss.Width(c.text); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeRule(&b, widths)

	b.WriteString("|")
	for i, h := range headers {
		b.WriteString(" ")
		b.WriteString(headerStyle.Render(pad(h, widths[i])))
		b.WriteString(" |")
	}
	b.WriteString("\n")
	writeRule(&b, widths)

	for _, row := range rows {
		b.WriteString("|")
		for i, c := range row {
			b.WriteString(" ")
			b.WriteString(c.style.Render(pad(c.text, widths[i])))
			b.WriteString(" |")
		}
		b.WriteString("\n")
	}
	if len(rows) > 0 {
		writeRule(&b, widths)
	}

	return b.String()
}

func writeRule(b *strings.Builder, widths []int) {
	b.WriteString("+")
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteString("+")
	}
	b.WriteString("\n")
}

func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
