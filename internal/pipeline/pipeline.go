// Package pipeline implements the client-side data processing pipeline of
// a card view: filter, search, sort, and pagination applied in that fixed
// order to an in-memory record slice. Sorting after filtering keeps sort
// cost proportional to the filtered set; searching after filtering gives
// "search within results" semantics. All stages are synchronous and run
// to completion inside one interaction.
package pipeline

import (
	"go.uber.org/zap"

	"cardview/internal/card"
)

// Result is what the presentation layer renders: the current page window,
// the counts before and after filtering/searching, and the repaired page
// state.
type Result struct {
	PageItems     []card.Record
	OriginalCount int
	FilteredCount int
	Page          card.PageState
}

// Pipeline owns the source records, the filter definitions, the view
// state, and a cache of the filtered+searched+sorted sequence. The cache
// is invalidated by dataset, filter, sort, and search changes; pagination
// reads it without recomputing. Pipeline is not safe for concurrent use:
// it is owned by a single UI event loop.
type Pipeline struct {
	logger *zap.Logger

	defs   []card.FilterDefinition
	source []card.Record

	state     ViewState
	processed []card.Record
	dirty     bool
}

// Option configures a Pipeline at construction.
type Option func(*Pipeline)

// WithLogger attaches a logger; stage counts are logged at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithState starts the pipeline from a prepared state instead of the
// empty one, e.g. a config-provided default sort.
func WithState(state ViewState) Option {
	return func(p *Pipeline) {
		p.state = state
	}
}

// New builds a pipeline over the given definitions and records.
func New(defs []card.FilterDefinition, records []card.Record, opts ...Option) *Pipeline {
	p := &Pipeline{
		logger: zap.NewNop(),
		defs:   defs,
		source: records,
		state:  NewViewState(nil, card.DefaultPageSize),
		dirty:  true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// State returns the current view state snapshot.
func (p *Pipeline) State() ViewState {
	return p.state
}

// Dispatch applies one action and returns the refreshed result.
func (p *Pipeline) Dispatch(action Action) Result {
	p.state = Apply(p.state, action)
	if recomputes(action) {
		p.dirty = true
	}
	return p.Result()
}

// Result recomputes the processed sequence if needed, paginates it, and
// reports the counts. Calling it repeatedly without state changes yields
// value-equal output.
func (p *Pipeline) Result() Result {
	if p.dirty {
		p.recompute()
	}
	items, page := Paginate(p.processed, p.state.Page)
	p.state.Page = page
	return Result{
		PageItems:     items,
		OriginalCount: len(p.source),
		FilteredCount: len(p.processed),
		Page:          page,
	}
}

// Processed returns a copy of the full filtered, searched, and sorted
// sequence, independent of pagination. Export collaborators project this.
func (p *Pipeline) Processed() []card.Record {
	if p.dirty {
		p.recompute()
	}
	out := make([]card.Record, len(p.processed))
	copy(out, p.processed)
	return out
}

// SetRecords replaces the source dataset and recomputes on next read. The
// page is re-clamped by the following Paginate since the total changed.
func (p *Pipeline) SetRecords(records []card.Record) Result {
	p.source = records
	p.dirty = true
	return p.Result()
}

// Mutators bound by the presentation layer to its controls. Each is a
// thin alias over Dispatch with the matching action.

func (p *Pipeline) UpdateFilter(id string, value card.FilterValue) Result {
	return p.Dispatch(SetFilter{ID: id, Value: value})
}

func (p *Pipeline) ClearFilter(id string) Result {
	return p.Dispatch(ClearFilter{ID: id})
}

func (p *Pipeline) UpdateSort(criteria []card.SortCriterion) Result {
	return p.Dispatch(SetSort{Criteria: criteria})
}

func (p *Pipeline) ToggleSort(field string) Result {
	return p.Dispatch(ToggleSort{Field: field})
}

func (p *Pipeline) SetSearchQuery(query string) Result {
	return p.Dispatch(SetSearchQuery{Query: query})
}

func (p *Pipeline) GoToPage(page int) Result {
	return p.Dispatch(GoToPage{Page: page})
}

func (p *Pipeline) SetPageSize(size int) Result {
	return p.Dispatch(SetPageSize{Size: size})
}

// ResetAll clears filters, sort, and search and returns to page 1.
func (p *Pipeline) ResetAll() Result {
	return p.Dispatch(Reset{})
}

func (p *Pipeline) recompute() {
	filtered := Filter(p.source, p.defs, p.state.Filters)
	searched := Search(filtered, p.state.Search)
	p.processed = Sort(searched, p.state.Sort)
	p.dirty = false
	p.logger.Debug("pipeline recomputed",
		zap.Int("source", len(p.source)),
		zap.Int("filtered", len(filtered)),
		zap.Int("searched", len(searched)),
		zap.Int("sort_keys", len(p.state.Sort)),
	)
}
