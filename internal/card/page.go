package card

// DefaultPageSize is used whenever a page size is missing or invalid.
const DefaultPageSize = 10

// PageState is the pagination window over a processed record sequence.
// CurrentPage is 1-based. The zero value is not valid; use NewPageState
// or let Clamped repair it.
type PageState struct {
	CurrentPage int `yaml:"current_page" json:"current_page"`
	PageSize    int `yaml:"page_size" json:"page_size"`
	TotalItems  int `yaml:"total_items" json:"total_items"`
}

// NewPageState returns page 1 of an empty sequence with the given size.
func NewPageState(pageSize int) PageState {
	return PageState{CurrentPage: 1, PageSize: pageSize}.Clamped()
}

// TotalPages is ceil(TotalItems / PageSize), never below 1: an empty
// sequence still has one (empty) page.
func (p PageState) TotalPages() int {
	size := p.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	pages := (p.TotalItems + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

// Clamped repairs invariant violations instead of reporting them: a
// non-positive page size falls back to the default, and the current page
// is forced into [1, TotalPages].
func (p PageState) Clamped() PageState {
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.TotalItems < 0 {
		p.TotalItems = 0
	}
	if p.CurrentPage < 1 {
		p.CurrentPage = 1
	}
	if max := p.TotalPages(); p.CurrentPage > max {
		p.CurrentPage = max
	}
	return p
}

// WithPage moves to the requested page, clamping out-of-range targets to
// the nearest bound.
func (p PageState) WithPage(page int) PageState {
	p.CurrentPage = page
	return p.Clamped()
}

// WithPageSize changes the page size and always returns to page 1, so a
// resize can never land on a page that no longer exists.
func (p PageState) WithPageSize(size int) PageState {
	p.PageSize = size
	p.CurrentPage = 1
	return p.Clamped()
}

// WithTotal records a new item total and re-clamps the current page, as
// required after any filter, search, or dataset change.
func (p PageState) WithTotal(total int) PageState {
	p.TotalItems = total
	return p.Clamped()
}
