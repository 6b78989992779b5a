package pipeline

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardview/internal/card"
)

func demoDefs() []card.FilterDefinition {
	return []card.FilterDefinition{
		{ID: "status", Field: "status", Kind: card.FilterCheckbox, Options: []string{"active", "archived"}},
		{ID: "price", Field: "price", Kind: card.FilterNumber},
	}
}

// demoRecords builds 25 records; the first 15 are active, prices count
// down from 250 so the natural order is unsorted.
func demoRecords() []card.Record {
	out := make([]card.Record, 25)
	for i := range out {
		status := "archived"
		if i < 15 {
			status = "active"
		}
		out[i] = rec(fmt.Sprintf("r%02d", i),
			"name", fmt.Sprintf("item %02d", i),
			"status", status,
			"price", 250-i*10,
		)
	}
	return out
}

func newDemoPipeline() *Pipeline {
	state := NewViewState([]string{"name", "status"}, 10)
	return New(demoDefs(), demoRecords(), WithState(state))
}

func TestPipelineDefaultView(t *testing.T) {
	res := newDemoPipeline().Result()

	require.Len(t, res.PageItems, 10)
	assert.Equal(t, ids(demoRecords()[:10]), ids(res.PageItems))
	assert.Equal(t, 25, res.OriginalCount)
	assert.Equal(t, 25, res.FilteredCount)
	assert.Equal(t, 3, res.Page.TotalPages())
}

func TestPipelineFilterCounts(t *testing.T) {
	pipe := newDemoPipeline()
	res := pipe.UpdateFilter("status", card.FilterValue{Values: []string{"active"}})

	assert.Equal(t, 15, res.FilteredCount)
	assert.Equal(t, 25, res.OriginalCount)
}

func TestPipelineStageOrderSearchWithinFilteredResults(t *testing.T) {
	pipe := newDemoPipeline()
	pipe.UpdateFilter("status", card.FilterValue{Values: []string{"archived"}})
	res := pipe.SetSearchQuery("item")

	// All 25 names contain "item", but the search space is the filtered
	// view, not the full dataset.
	assert.Equal(t, 10, res.FilteredCount)
}

func TestPipelineSortAppliesToFilteredSet(t *testing.T) {
	pipe := newDemoPipeline()
	pipe.UpdateFilter("price", card.FilterValue{Condition: card.CondBetween, Values: []string{"100", "200"}})
	res := pipe.UpdateSort([]card.SortCriterion{{Field: "price", Direction: card.Ascending}})

	require.NotEmpty(t, res.PageItems)
	prices := make([]int, len(res.PageItems))
	for i, r := range res.PageItems {
		prices[i] = r.Get("price").(int)
	}
	for i := 1; i < len(prices); i++ {
		assert.LessOrEqual(t, prices[i-1], prices[i])
	}
	assert.GreaterOrEqual(t, prices[0], 100)
	assert.LessOrEqual(t, prices[len(prices)-1], 200)
}

func TestPipelineSortScenario(t *testing.T) {
	records := []card.Record{
		rec("a", "price", 300),
		rec("b", "price", 100),
		rec("c", "price", 200),
	}
	pipe := New(nil, records)
	res := pipe.UpdateSort([]card.SortCriterion{{Field: "price", Direction: card.Ascending}})

	assert.Equal(t, []string{"b", "c", "a"}, ids(res.PageItems))
}

func TestPipelineIdempotentResults(t *testing.T) {
	pipe := newDemoPipeline()
	pipe.UpdateFilter("status", card.FilterValue{Values: []string{"active"}})
	pipe.SetSearchQuery("item 0")
	pipe.UpdateSort([]card.SortCriterion{{Field: "price", Direction: card.Descending}})

	first := pipe.Result()
	second := pipe.Result()

	assert.Empty(t, cmp.Diff(first, second))
}

func TestPipelinePaginationDoesNotRecompute(t *testing.T) {
	records := demoRecords()
	pipe := New(demoDefs(), records, WithState(NewViewState(nil, 10)))
	pipe.Result()

	// Swap a record behind the pipeline's back through the shared slice.
	records[0] = rec("sneaky", "status", "active", "price", 1)

	// Pagination reads the cache: the swap must not be visible.
	res := pipe.GoToPage(1)
	assert.Equal(t, "r00", res.PageItems[0].ID)
	res = pipe.SetPageSize(5)
	assert.Equal(t, "r00", res.PageItems[0].ID)

	// A filter change recomputes and picks it up.
	res = pipe.Dispatch(SetFilter{})
	assert.Equal(t, "sneaky", res.PageItems[0].ID)
}

func TestPipelinePageSizeChangeResetsPage(t *testing.T) {
	pipe := newDemoPipeline()
	pipe.GoToPage(3)
	res := pipe.SetPageSize(20)

	assert.Equal(t, 1, res.Page.CurrentPage)
	assert.Equal(t, 20, res.Page.PageSize)
	assert.Len(t, res.PageItems, 20)
}

func TestPipelinePageClampedAfterFilterShrinksTotal(t *testing.T) {
	pipe := newDemoPipeline()
	pipe.GoToPage(3)
	res := pipe.UpdateFilter("status", card.FilterValue{Values: []string{"active"}})

	// 15 records at page size 10 leaves 2 pages.
	assert.Equal(t, 2, res.Page.CurrentPage)
}

func TestPipelineSetRecordsRecomputes(t *testing.T) {
	pipe := newDemoPipeline()
	res := pipe.SetRecords(demoRecords()[:5])

	assert.Equal(t, 5, res.OriginalCount)
	assert.Equal(t, 5, res.FilteredCount)
	assert.Equal(t, 1, res.Page.TotalPages())
}

func TestPipelineResetAll(t *testing.T) {
	pipe := newDemoPipeline()
	pipe.UpdateFilter("status", card.FilterValue{Values: []string{"active"}})
	pipe.SetSearchQuery("item 1")
	pipe.UpdateSort([]card.SortCriterion{{Field: "price", Direction: card.Ascending}})
	pipe.GoToPage(2)

	res := pipe.ResetAll()

	assert.Equal(t, 25, res.FilteredCount)
	assert.Equal(t, 1, res.Page.CurrentPage)
	assert.Equal(t, ids(demoRecords()[:10]), ids(res.PageItems))

	state := pipe.State()
	assert.Empty(t, state.Filters)
	assert.Empty(t, state.Sort)
	assert.Empty(t, state.Search.Query)
}

func TestPipelineProcessedIsIndependentCopy(t *testing.T) {
	pipe := newDemoPipeline()
	all := pipe.Processed()

	require.Len(t, all, 25)
	all[0] = rec("clobbered")
	assert.Equal(t, "r00", pipe.Processed()[0].ID)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	state := NewViewState([]string{"name"}, 10)
	state.Filters["status"] = card.FilterValue{Raw: "active"}

	next := Apply(state, SetFilter{ID: "price", Value: card.FilterValue{Condition: card.CondEquals, Raw: 1}})

	assert.Len(t, state.Filters, 1)
	assert.Len(t, next.Filters, 2)
}

func TestApplySetFilterWithZeroValueDeletes(t *testing.T) {
	state := NewViewState(nil, 10)
	state.Filters["status"] = card.FilterValue{Raw: "active"}

	next := Apply(state, SetFilter{ID: "status", Value: card.FilterValue{}})

	assert.Empty(t, next.Filters)
}

func TestApplyToggleSortCycles(t *testing.T) {
	state := NewViewState(nil, 10)

	state = Apply(state, ToggleSort{Field: "price"})
	require.Equal(t, []card.SortCriterion{{Field: "price", Direction: card.Ascending}}, state.Sort)

	state = Apply(state, ToggleSort{Field: "price"})
	require.Equal(t, []card.SortCriterion{{Field: "price", Direction: card.Descending}}, state.Sort)

	state = Apply(state, ToggleSort{Field: "price"})
	assert.Empty(t, state.Sort)

	// Toggling a different field replaces the criterion outright.
	state = Apply(state, ToggleSort{Field: "name"})
	state = Apply(state, ToggleSort{Field: "price"})
	assert.Equal(t, []card.SortCriterion{{Field: "price", Direction: card.Ascending}}, state.Sort)
}

func TestRecomputesClassification(t *testing.T) {
	assert.False(t, recomputes(GoToPage{Page: 2}))
	assert.False(t, recomputes(SetPageSize{Size: 5}))
	assert.True(t, recomputes(SetFilter{}))
	assert.True(t, recomputes(SetSearchQuery{}))
	assert.True(t, recomputes(SetSort{}))
	assert.True(t, recomputes(Reset{}))
}
