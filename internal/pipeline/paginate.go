package pipeline

import "cardview/internal/card"

// Paginate slices the current page window out of the processed sequence
// and returns the repaired page state alongside it. The state's item
// total is taken from the sequence, and the current page is clamped, so
// callers can hand in a stale state after any upstream change. A zero
// item total yields an empty page, never an error.
func Paginate(records []card.Record, state card.PageState) ([]card.Record, card.PageState) {
	state = state.WithTotal(len(records))

	start := (state.CurrentPage - 1) * state.PageSize
	if start > len(records) {
		start = len(records)
	}
	end := start + state.PageSize
	if end > len(records) {
		end = len(records)
	}

	page := make([]card.Record, end-start)
	copy(page, records[start:end])
	return page, state
}
