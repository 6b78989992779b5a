package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// renderDetail draws the full record under the cursor. The body field is
// treated as markdown and rendered through glamour; everything else is a
// plain key/value listing.
func (m Model) renderDetail() string {
	items := m.res.PageItems
	if m.cursor >= len(items) {
		return ""
	}
	rec := items[m.cursor]

	var sb strings.Builder
	title := fieldString(rec, m.cfg.Template.TitleField)
	if title == "" {
		title = rec.ID
	}
	sb.WriteString(m.styles.Title.Render(title))
	sb.WriteString("\n\n")

	for _, f := range m.cfg.Fields {
		if f.Key == m.cfg.Template.BodyField {
			continue
		}
		v := rec.Get(f.Key)
		if v == nil {
			continue
		}
		sb.WriteString(m.styles.CardKey.Render(f.Label + ": "))
		sb.WriteString(fmt.Sprintf("%v", v))
		sb.WriteString("\n")
	}

	if body := fieldString(rec, m.cfg.Template.BodyField); body != "" {
		sb.WriteString("\n")
		if out, err := glamour.Render(body, "dark"); err == nil {
			sb.WriteString(out)
		} else {
			sb.WriteString(body)
		}
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render("esc to close"))
	return m.styles.Detail.Render(sb.String())
}
