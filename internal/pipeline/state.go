package pipeline

import "cardview/internal/card"

// ViewState is the complete user-driven state of one card view: the four
// independent, composable stages in their fixed order. Values are updated
// immutably through Apply; nothing here touches the dataset itself.
type ViewState struct {
	Filters card.ActiveFilters
	Sort    []card.SortCriterion
	Search  card.SearchConfig
	Page    card.PageState
}

// NewViewState returns an empty state with the given search fields and
// page size.
func NewViewState(searchFields []string, pageSize int) ViewState {
	return ViewState{
		Filters: card.ActiveFilters{},
		Search:  card.SearchConfig{Fields: searchFields},
		Page:    card.NewPageState(pageSize),
	}
}

// Action is one user interaction applied to a ViewState. The closed set
// of variants replaces the callback props of the source widget: the
// presentation layer emits actions, the pipeline consumes them.
type Action interface {
	isAction()
}

// SetFilter applies (or replaces) the value of one filter.
type SetFilter struct {
	ID    string
	Value card.FilterValue
}

// ClearFilter removes one filter's applied value.
type ClearFilter struct {
	ID string
}

// SetSort replaces the whole sort configuration.
type SetSort struct {
	Criteria []card.SortCriterion
}

// ToggleSort cycles a single field through asc -> desc -> unsorted,
// replacing any other criteria. This is the header-click behavior.
type ToggleSort struct {
	Field string
}

// SetSearchQuery updates the search text, keeping fields and match flags.
type SetSearchQuery struct {
	Query string
}

// GoToPage navigates to a page, clamped to the valid range.
type GoToPage struct {
	Page int
}

// SetPageSize changes the page size and returns to page 1.
type SetPageSize struct {
	Size int
}

// Reset clears filters, sort, and search, and returns to page 1.
type Reset struct{}

func (SetFilter) isAction()      {}
func (ClearFilter) isAction()    {}
func (SetSort) isAction()        {}
func (ToggleSort) isAction()     {}
func (SetSearchQuery) isAction() {}
func (GoToPage) isAction()       {}
func (SetPageSize) isAction()    {}
func (Reset) isAction()          {}

// recomputes reports whether an action invalidates the processed
// sequence. Pagination moves operate downstream of the cache and never
// trigger a recompute.
func recomputes(a Action) bool {
	switch a.(type) {
	case GoToPage, SetPageSize:
		return false
	default:
		return true
	}
}

// Apply is the pure reducer over ViewState. The input state is never
// mutated; maps and slices are copied before changing.
func Apply(state ViewState, action Action) ViewState {
	switch a := action.(type) {
	case SetFilter:
		filters := state.Filters.Clone()
		if a.Value.IsZero() {
			delete(filters, a.ID)
		} else {
			filters[a.ID] = a.Value
		}
		state.Filters = filters

	case ClearFilter:
		filters := state.Filters.Clone()
		delete(filters, a.ID)
		state.Filters = filters

	case SetSort:
		state.Sort = append([]card.SortCriterion(nil), a.Criteria...)

	case ToggleSort:
		state.Sort = toggleSort(state.Sort, a.Field)

	case SetSearchQuery:
		state.Search.Query = a.Query

	case GoToPage:
		state.Page = state.Page.WithPage(a.Page)

	case SetPageSize:
		state.Page = state.Page.WithPageSize(a.Size)

	case Reset:
		state.Filters = card.ActiveFilters{}
		state.Sort = nil
		state.Search.Query = ""
		state.Page = state.Page.WithPage(1)
	}
	return state
}

func toggleSort(current []card.SortCriterion, field string) []card.SortCriterion {
	if len(current) == 1 && current[0].Field == field {
		if current[0].Direction == card.Ascending {
			return []card.SortCriterion{{Field: field, Direction: card.Descending}}
		}
		return nil
	}
	return []card.SortCriterion{{Field: field, Direction: card.Ascending}}
}
