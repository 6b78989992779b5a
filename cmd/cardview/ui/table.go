package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cardview/internal/card"
)

// RenderTable renders records as a plain aligned table, one column per
// field descriptor. Used by the non-interactive query output.
func RenderTable(fields []card.FieldDescriptor, records []card.Record) string {
	if len(fields) == 0 {
		return ""
	}

	headers := make([]string, len(fields))
	for i, f := range fields {
		headers[i] = f.Label
	}

	rows := make([][]string, len(records))
	for r, rec := range records {
		row := make([]string, len(fields))
		for i, f := range fields {
			if v := rec.Get(f.Key); v != nil {
				row[i] = fmt.Sprintf("%v", v)
			}
		}
		rows[r] = row
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	cell := lipgloss.NewStyle().Padding(0, 1)
	bold := cell.Bold(true)

	var sb strings.Builder
	writeRow := func(row []string, style lipgloss.Style) {
		for i, c := range row {
			sb.WriteString(style.Width(widths[i] + 2).Render(c))
		}
		sb.WriteString("\n")
	}

	writeRow(headers, bold)
	total := 0
	for _, w := range widths {
		total += w + 2
	}
	sb.WriteString(strings.Repeat("-", total))
	sb.WriteString("\n")
	for _, row := range rows {
		writeRow(row, cell)
	}
	return sb.String()
}
