package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// searchDebounce is the settle time between the last search keystroke and
// the pipeline recompute. The core has no debounce of its own; rapid
// keystrokes are coalesced here, in the presentation layer.
const searchDebounce = 200 * time.Millisecond

// searchDebounceMsg fires after the settle time. The tag ties it to the
// keystroke generation that scheduled it; stale timers are dropped.
type searchDebounceMsg struct {
	tag int
}

// debouncer hands out generation tags. Each keystroke bumps the tag, so
// only the timer from the final keystroke in a burst survives.
type debouncer struct {
	tag int
}

func (d *debouncer) next() tea.Cmd {
	d.tag++
	tag := d.tag
	return tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{tag: tag}
	})
}

func (d *debouncer) current(msg searchDebounceMsg) bool {
	return msg.tag == d.tag
}
