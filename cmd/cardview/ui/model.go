// Package ui is the terminal presentation layer of cardview. It owns no
// data logic: every control dispatches an action to the processing
// pipeline and re-renders from the returned result.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"cardview/internal/card"
	"cardview/internal/config"
	"cardview/internal/pipeline"
)

// RecordsReloadedMsg carries a freshly loaded dataset into the UI loop.
// The file watcher sends it through Program.Send, which serializes it
// with the rest of the event stream.
type RecordsReloadedMsg []card.Record

// Model is the bubbletea model of the card browser.
type Model struct {
	cfg  *config.ViewConfig
	pipe *pipeline.Pipeline
	res  pipeline.Result

	styles Styles
	keys   keyMap
	help   help.Model
	search textinput.Model

	searching bool
	detail    bool
	cursor    int
	selected  map[string]bool
	status    string

	// sortables flattens the sortable fields into an asc/desc cycle.
	sortables []string
	sortIdx   int

	// filterDef is the first option-backed filter, cycled with one key.
	filterDef *card.FilterDefinition
	filterIdx int

	debounce debouncer

	width, height int
}

// New builds the browser over an already-configured pipeline.
func New(cfg *config.ViewConfig, pipe *pipeline.Pipeline) Model {
	search := textinput.New()
	search.Placeholder = "search"
	search.Prompt = "/ "
	search.CharLimit = 120

	m := Model{
		cfg:       cfg,
		pipe:      pipe,
		res:       pipe.Result(),
		styles:    DefaultStyles(),
		keys:      defaultKeyMap(),
		help:      help.New(),
		search:    search,
		selected:  make(map[string]bool),
		sortIdx:   -1,
		filterIdx: -1,
	}
	for _, f := range cfg.Fields {
		if f.Sortable {
			m.sortables = append(m.sortables, f.Key)
		}
	}
	for i := range cfg.Fields {
		if flt := cfg.Fields[i].Filter; flt != nil && len(flt.Options) > 0 {
			m.filterDef = flt
			break
		}
	}
	return m
}

// Result exposes the last pipeline result, mainly for tests.
func (m Model) Result() pipeline.Result {
	return m.res
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case RecordsReloadedMsg:
		m.res = m.pipe.SetRecords([]card.Record(msg))
		m.status = fmt.Sprintf("reloaded %d records", len(msg))
		m.clampCursor()
		return m, nil

	case searchDebounceMsg:
		if m.debounce.current(msg) {
			m.res = m.pipe.SetSearchQuery(m.search.Value())
			m.clampCursor()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.Type {
		case tea.KeyEsc:
			m.searching = false
			m.search.Blur()
			m.search.SetValue("")
			m.res = m.pipe.SetSearchQuery("")
			m.clampCursor()
			return m, nil
		case tea.KeyEnter:
			m.searching = false
			m.search.Blur()
			m.res = m.pipe.SetSearchQuery(m.search.Value())
			m.clampCursor()
			return m, nil
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, tea.Batch(cmd, m.debounce.next())
		}
	}

	if m.detail {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			m.detail = false
		}
		if msg.String() == "q" {
			m.detail = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Sort):
		m.cycleSort()

	case key.Matches(msg, m.keys.Filter):
		m.cycleFilter()

	case key.Matches(msg, m.keys.NextPage):
		m.res = m.pipe.GoToPage(m.res.Page.CurrentPage + 1)
		m.clampCursor()

	case key.Matches(msg, m.keys.PrevPage):
		m.res = m.pipe.GoToPage(m.res.Page.CurrentPage - 1)
		m.clampCursor()

	case key.Matches(msg, m.keys.Reset):
		m.res = m.pipe.ResetAll()
		m.search.SetValue("")
		m.sortIdx = -1
		m.filterIdx = -1
		m.status = "view reset"
		m.clampCursor()

	case key.Matches(msg, m.keys.Select):
		if m.cfg.Selection && m.cursor < len(m.res.PageItems) {
			id := m.res.PageItems[m.cursor].ID
			m.selected[id] = !m.selected[id]
		}

	case key.Matches(msg, m.keys.Detail):
		if m.cursor < len(m.res.PageItems) {
			m.detail = true
		}

	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-m.columns())
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(m.columns())
	}

	return m, nil
}

// cycleSort walks sortable fields through asc, then desc, then back to
// the unsorted view.
func (m *Model) cycleSort() {
	if len(m.sortables) == 0 {
		return
	}
	m.sortIdx++
	if m.sortIdx >= len(m.sortables)*2 {
		m.sortIdx = -1
		m.res = m.pipe.UpdateSort(nil)
		m.status = "sort cleared"
		return
	}
	field := m.sortables[m.sortIdx/2]
	dir := card.Ascending
	if m.sortIdx%2 == 1 {
		dir = card.Descending
	}
	m.res = m.pipe.UpdateSort([]card.SortCriterion{{Field: field, Direction: dir}})
	m.status = fmt.Sprintf("sort: %s %s", field, dir)
	m.clampCursor()
}

// cycleFilter steps the first option-backed filter through its options
// and back to off.
func (m *Model) cycleFilter() {
	def := m.filterDef
	if def == nil {
		return
	}
	m.filterIdx++
	if m.filterIdx >= len(def.Options) {
		m.filterIdx = -1
		m.res = m.pipe.ClearFilter(def.ID)
		m.status = "filter cleared"
		m.clampCursor()
		return
	}
	option := def.Options[m.filterIdx]
	value := card.FilterValue{Raw: option}
	if def.Kind == card.FilterCheckbox || def.Multiple {
		value = card.FilterValue{Values: []string{option}}
	}
	m.res = m.pipe.UpdateFilter(def.ID, value)
	m.status = fmt.Sprintf("filter: %s = %s", def.ID, option)
	m.clampCursor()
}

func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= len(m.res.PageItems) {
		return
	}
	m.cursor = next
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.res.PageItems) {
		m.cursor = len(m.res.PageItems) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.detail {
		return m.renderDetail()
	}

	var sb strings.Builder
	sb.WriteString(m.renderHeader())
	sb.WriteString("\n")
	if m.searching {
		sb.WriteString(m.search.View())
		sb.WriteString("\n")
	}
	sb.WriteString(m.renderCards())
	sb.WriteString("\n")
	sb.WriteString(m.renderFooter())
	return sb.String()
}

func (m Model) renderHeader() string {
	title := m.cfg.Title
	if title == "" {
		title = "cardview"
	}
	counts := fmt.Sprintf("%d/%d records", m.res.FilteredCount, m.res.OriginalCount)
	if query := m.search.Value(); query != "" && !m.searching {
		counts += fmt.Sprintf("  search: %q", query)
	}
	return m.styles.Header.Render(
		m.styles.Title.Render(title) + "  " + m.styles.Counts.Render(counts),
	)
}

func (m Model) renderFooter() string {
	page := fmt.Sprintf("page %d/%d", m.res.Page.CurrentPage, m.res.Page.TotalPages())
	parts := []string{page}
	if m.cfg.Selection && len(m.selected) > 0 {
		n := 0
		for _, on := range m.selected {
			if on {
				n++
			}
		}
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d selected", n))
		}
	}
	if m.status != "" {
		parts = append(parts, m.styles.Status.Render(m.status))
	}
	line := m.styles.Muted.Render(strings.Join(parts, "  "))
	return line + "\n" + m.styles.Help.Render(m.help.View(m.keys))
}
