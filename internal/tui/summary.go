package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"darkroom/internal/batch"
)

type SummaryRow struct {
	Label string
	Value string
}

// OutcomeRows builds the post-batch summary from a runner outcome.
func OutcomeRows(out batch.Outcome) []SummaryRow {
	rows := []SummaryRow{
		{Label: "Total files", Value: fmt.Sprintf("%d", out.Total)},
		{Label: "Completed", Value: fmt.Sprintf("%d", out.Completed)},
		{Label: "Skipped", Value: fmt.Sprintf("%d", out.Skipped)},
		{Label: "Failed", Value: fmt.Sprintf("%d", out.Failed)},
	}
	if out.Canceled {
		rows = append(rows, SummaryRow{Label: "Cancelled", Value: fmt.Sprintf("%d", out.Cancelled)})
	}
	return rows
}

func RenderSummary(rows []SummaryRow) string {
	labelWidth := 0
	valueWidth := 0
	for _, row := range rows {
		if len(row.Label) > labelWidth {
			labelWidth = len(row.Label)
		}
		if len(row.Value) > valueWidth {
			valueWidth = len(row.Value)
		}
	}

	hline := strings.Repeat("-", labelWidth+valueWidth+3)
	lines := []string{hline}

	for _, row := range rows {
		label := padRight(row.Label, labelWidth)
		value := padRight(row.Value, valueWidth)
		line := fmt.Sprintf("%s | %s", labelStyle.Render(label), valueStyle.Render(value))
		lines = append(lines, line)
	}

	lines = append(lines, hline)
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

var (
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
)
