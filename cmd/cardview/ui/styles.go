package ui

import "github.com/charmbracelet/lipgloss"

// cardWidth is the fixed interior width of one rendered card.
const cardWidth = 28

// Styles collects every lipgloss style the browser uses, so tests and
// alternative themes can swap them in one place.
type Styles struct {
	Header   lipgloss.Style
	Title    lipgloss.Style
	Counts   lipgloss.Style
	Status   lipgloss.Style
	Muted    lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	CardKey  lipgloss.Style
	CardVal  lipgloss.Style
	Detail   lipgloss.Style
}

// DefaultStyles is the standard dark-terminal theme.
func DefaultStyles() Styles {
	border := lipgloss.RoundedBorder()
	return Styles{
		Header:   lipgloss.NewStyle().Padding(0, 1),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Counts:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Padding(0, 1),
		Card:     lipgloss.NewStyle().Border(border).Padding(0, 1).Width(cardWidth),
		Cursor:   lipgloss.NewStyle().Border(border).BorderForeground(lipgloss.Color("12")).Padding(0, 1).Width(cardWidth),
		Selected: lipgloss.NewStyle().Border(border).BorderForeground(lipgloss.Color("10")).Padding(0, 1).Width(cardWidth),
		CardKey:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		CardVal:  lipgloss.NewStyle(),
		Detail:   lipgloss.NewStyle().Border(border).Padding(1, 2),
	}
}
