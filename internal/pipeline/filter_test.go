package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardview/internal/card"
)

func rec(id string, kv ...any) card.Record {
	fields := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		fields[kv[i].(string)] = kv[i+1]
	}
	return card.Record{ID: id, Fields: fields}
}

func ids(records []card.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

var testDefs = []card.FilterDefinition{
	{ID: "status", Field: "status", Kind: card.FilterDropdown, Options: []string{"active", "archived"}},
	{ID: "tags", Field: "tags", Kind: card.FilterCheckbox, Options: []string{"go", "cli", "web"}},
	{ID: "name", Field: "name", Kind: card.FilterConditional},
	{ID: "notes", Field: "notes", Kind: card.FilterText},
	{ID: "price", Field: "price", Kind: card.FilterNumber},
	{ID: "created", Field: "created", Kind: card.FilterDate},
	{ID: "updated", Field: "updated", Kind: card.FilterDate, Range: true},
	{ID: "weird", Field: "name", Kind: card.FilterKind("hologram")},
}

func TestMatchesEmptyFiltersPassesEverything(t *testing.T) {
	r := rec("1", "status", "active")
	assert.True(t, Matches(r, testDefs, card.ActiveFilters{}))
	assert.True(t, Matches(r, testDefs, nil))
}

func TestDropdownSingleSelect(t *testing.T) {
	active := card.ActiveFilters{"status": {Raw: "active"}}

	assert.True(t, Matches(rec("1", "status", "active"), testDefs, active))
	assert.False(t, Matches(rec("2", "status", "archived"), testDefs, active))
	assert.False(t, Matches(rec("3"), testDefs, active))
}

func TestCheckboxIntersection(t *testing.T) {
	active := card.ActiveFilters{"tags": {Values: []string{"go", "web"}}}

	assert.True(t, Matches(rec("1", "tags", []any{"go", "cli"}), testDefs, active))
	assert.True(t, Matches(rec("2", "tags", "web"), testDefs, active))
	assert.False(t, Matches(rec("3", "tags", []any{"cli"}), testDefs, active))
	assert.False(t, Matches(rec("4"), testDefs, active))

	// Empty selection is no constraint.
	assert.True(t, Matches(rec("5", "tags", []any{"cli"}), testDefs,
		card.ActiveFilters{"tags": {Values: []string{}}}))
}

func TestConditionalTextOperators(t *testing.T) {
	tests := []struct {
		name  string
		value card.FilterValue
		field any
		want  bool
	}{
		{"equals exact", card.FilterValue{Condition: card.CondEquals, Raw: "Anna"}, "Anna", true},
		{"equals case sensitive", card.FilterValue{Condition: card.CondEquals, Raw: "anna"}, "Anna", false},
		{"not equals", card.FilterValue{Condition: card.CondNotEquals, Raw: "Anna"}, "Beth", true},
		{"contains folds case", card.FilterValue{Condition: card.CondContains, Raw: "ANN"}, "Susann", true},
		{"not contains", card.FilterValue{Condition: card.CondNotContains, Raw: "ann"}, "Beth", true},
		{"starts with folds case", card.FilterValue{Condition: card.CondStartsWith, Raw: "an"}, "Anna", true},
		{"ends with folds case", card.FilterValue{Condition: card.CondEndsWith, Raw: "NA"}, "Anna", true},
		{"is empty on nil", card.FilterValue{Condition: card.CondIsEmpty}, nil, true},
		{"is empty on blank", card.FilterValue{Condition: card.CondIsEmpty}, "   ", true},
		{"is not empty", card.FilterValue{Condition: card.CondIsNotEmpty}, "x", true},
		{"unknown condition passes", card.FilterValue{Condition: "resembles", Raw: "x"}, "y", true},
		{"no condition passes", card.FilterValue{Raw: "x"}, "y", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := rec("1", "name", tt.field)
			got := Matches(r, testDefs, card.ActiveFilters{"name": tt.value})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlainTextFilter(t *testing.T) {
	active := card.ActiveFilters{"notes": {Raw: "urgent"}}

	assert.True(t, Matches(rec("1", "notes", "VERY Urgent indeed"), testDefs, active))
	assert.False(t, Matches(rec("2", "notes", "calm"), testDefs, active))
	assert.False(t, Matches(rec("3"), testDefs, active))
}

func TestNumericOperators(t *testing.T) {
	tests := []struct {
		name  string
		value card.FilterValue
		field any
		want  bool
	}{
		{"equals", card.FilterValue{Condition: card.CondEquals, Raw: "100"}, 100, true},
		{"equals numeric string field", card.FilterValue{Condition: card.CondEquals, Raw: 100}, "100", true},
		{"not equals", card.FilterValue{Condition: card.CondNotEquals, Raw: 100}, 99, true},
		{"greater than", card.FilterValue{Condition: card.CondGreaterThan, Raw: 100}, 150, true},
		{"greater or equal boundary", card.FilterValue{Condition: card.CondGreaterOrEqual, Raw: 100}, 100, true},
		{"less than", card.FilterValue{Condition: card.CondLessThan, Raw: 100}, 150, false},
		{"less or equal boundary", card.FilterValue{Condition: card.CondLessOrEqual, Raw: 100}, 100, true},
		{"between inside", card.FilterValue{Condition: card.CondBetween, Values: []string{"100", "200"}}, 150, true},
		{"between boundary", card.FilterValue{Condition: card.CondBetween, Values: []string{"100", "200"}}, 200, true},
		{"between outside", card.FilterValue{Condition: card.CondBetween, Values: []string{"100", "200"}}, 250, false},
		{"between reversed bounds", card.FilterValue{Condition: card.CondBetween, Values: []string{"200", "100"}}, 150, true},
		{"non numeric field fails", card.FilterValue{Condition: card.CondGreaterThan, Raw: 100}, "many", false},
		{"nil field fails comparison", card.FilterValue{Condition: card.CondGreaterThan, Raw: 100}, nil, false},
		{"is empty ignores format", card.FilterValue{Condition: card.CondIsEmpty}, nil, true},
		{"is not empty on text", card.FilterValue{Condition: card.CondIsNotEmpty}, "many", true},
		{"malformed between passes", card.FilterValue{Condition: card.CondBetween, Values: []string{"100"}}, 250, true},
		{"non numeric filter value passes", card.FilterValue{Condition: card.CondEquals, Raw: "lots"}, 100, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := rec("1", "price", tt.field)
			got := Matches(r, testDefs, card.ActiveFilters{"price": tt.value})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateSameDay(t *testing.T) {
	active := card.ActiveFilters{"created": {Raw: "2026-08-23"}}

	assert.True(t, Matches(rec("1", "created", "2026-08-23"), testDefs, active))
	assert.True(t, Matches(rec("2", "created", "2026-08-23 15:04"), testDefs, active))
	assert.False(t, Matches(rec("3", "created", "2026-08-24"), testDefs, active))
	assert.False(t, Matches(rec("4", "created", "not a date"), testDefs, active))

	// Unparseable filter date is a configuration error: no constraint.
	assert.True(t, Matches(rec("5", "created", "2026-08-24"), testDefs,
		card.ActiveFilters{"created": {Raw: "someday"}}))
}

func TestDateRange(t *testing.T) {
	tests := []struct {
		name  string
		value card.FilterValue
		field any
		want  bool
	}{
		{"inside", card.FilterValue{Start: "2026-01-01", End: "2026-12-31"}, "2026-08-23", true},
		{"start boundary", card.FilterValue{Start: "2026-08-23", End: "2026-12-31"}, "2026-08-23", true},
		{"end boundary", card.FilterValue{Start: "2026-01-01", End: "2026-08-23"}, "2026-08-23", true},
		{"before start", card.FilterValue{Start: "2026-09-01"}, "2026-08-23", false},
		{"after end", card.FilterValue{End: "2026-08-01"}, "2026-08-23", false},
		{"open start", card.FilterValue{End: "2026-12-31"}, "2026-08-23", true},
		{"unparseable record fails", card.FilterValue{Start: "2026-01-01"}, "soon", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := rec("1", "updated", tt.field)
			got := Matches(r, testDefs, card.ActiveFilters{"updated": tt.value})
			assert.Equal(t, tt.want, got)
		})
	}

	// A range filter with neither bound set passes everything, even
	// unparseable values.
	assert.True(t, Matches(rec("1", "updated", "soon"), testDefs,
		card.ActiveFilters{"updated": {Start: "", End: ""}}))
}

func TestUnknownKindFailsOpen(t *testing.T) {
	// A single misconfigured filter must not hide the dataset.
	active := card.ActiveFilters{"weird": {Raw: "anything"}}
	assert.True(t, Matches(rec("1", "name", "Anna"), testDefs, active))
}

func TestUnknownFilterIDFailsOpen(t *testing.T) {
	active := card.ActiveFilters{"ghost": {Raw: "anything"}}
	assert.True(t, Matches(rec("1", "name", "Anna"), testDefs, active))
}

func TestFiltersComposeWithAND(t *testing.T) {
	records := []card.Record{
		rec("1", "status", "active", "price", 150),
		rec("2", "status", "active", "price", 500),
		rec("3", "status", "archived", "price", 150),
	}
	f1 := card.ActiveFilters{"status": {Raw: "active"}}
	f2 := card.ActiveFilters{"price": {Condition: card.CondLessThan, Raw: 200}}
	both := card.ActiveFilters{
		"status": {Raw: "active"},
		"price":  {Condition: card.CondLessThan, Raw: 200},
	}

	combined := Filter(records, testDefs, both)
	sequential := Filter(Filter(records, testDefs, f1), testDefs, f2)

	require.Equal(t, ids(sequential), ids(combined))
	assert.Equal(t, []string{"1"}, ids(combined))
}

func TestFilterKeepsInputOrderAndInput(t *testing.T) {
	records := []card.Record{
		rec("b", "status", "active"),
		rec("a", "status", "active"),
		rec("c", "status", "archived"),
	}
	out := Filter(records, testDefs, card.ActiveFilters{"status": {Raw: "active"}})

	assert.Equal(t, []string{"b", "a"}, ids(out))
	assert.Equal(t, []string{"b", "a", "c"}, ids(records))
}
