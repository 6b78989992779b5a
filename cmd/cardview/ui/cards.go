package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cardview/internal/card"
	"cardview/internal/config"
)

// renderCard draws one card from the view template: title, optional
// subtitle, then the remaining visible fields as key: value lines.
func (m Model) renderCard(rec card.Record, cursor, selected bool) string {
	var lines []string

	title := fieldString(rec, m.cfg.Template.TitleField)
	if title == "" {
		title = rec.ID
	}
	marker := ""
	if selected {
		marker = "* "
	}
	lines = append(lines, m.styles.Title.Render(marker+truncate(title, cardWidth-2)))

	if sub := fieldString(rec, m.cfg.Template.SubtitleField); sub != "" {
		lines = append(lines, m.styles.Muted.Render(truncate(sub, cardWidth-2)))
	}

	for _, f := range m.cfg.Fields {
		if f.Key == m.cfg.Template.TitleField || f.Key == m.cfg.Template.SubtitleField ||
			f.Key == m.cfg.Template.BodyField || f.Kind == card.FieldImage {
			continue
		}
		v := rec.Get(f.Key)
		if v == nil {
			continue
		}
		line := m.styles.CardKey.Render(f.Label+": ") +
			m.styles.CardVal.Render(truncate(fmt.Sprintf("%v", v), cardWidth-2-len(f.Label)-2))
		lines = append(lines, line)
	}

	body := strings.Join(lines, "\n")
	switch {
	case cursor:
		return m.styles.Cursor.Render(body)
	case selected:
		return m.styles.Selected.Render(body)
	default:
		return m.styles.Card.Render(body)
	}
}

// renderCards lays the page items out according to the configured layout.
// Stack is one card per row; everything else renders as a grid sized to
// the terminal width (masonry and carousel degrade to grid).
func (m Model) renderCards() string {
	items := m.res.PageItems
	if len(items) == 0 {
		return m.styles.Muted.Render("\n  no records match the current view\n")
	}

	cols := m.columns()
	rendered := make([]string, len(items))
	for i, rec := range items {
		rendered[i] = m.renderCard(rec, i == m.cursor, m.selected[rec.ID])
	}

	var rows []string
	for start := 0; start < len(rendered); start += cols {
		end := start + cols
		if end > len(rendered) {
			end = len(rendered)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// columns derives the grid width from the layout and terminal size.
func (m Model) columns() int {
	if m.cfg.Layout == config.LayoutStack {
		return 1
	}
	cols := m.width / (cardWidth + 4)
	if cols < 1 {
		cols = 1
	}
	return cols
}

func fieldString(rec card.Record, key string) string {
	if key == "" {
		return ""
	}
	v := rec.Get(key)
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

func truncate(s string, max int) string {
	if max < 1 || len(s) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return s[:max-1] + "…"
}
