package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cardview/internal/card"
)

func searchRecords() []card.Record {
	return []card.Record{
		rec("1", "name", "Anna", "city", "Lisbon"),
		rec("2", "name", "Susann", "city", "Berlin"),
		rec("3", "name", "Beth", "city", "Annecy"),
		rec("4", "name", nil),
	}
}

func TestSearchEmptyQueryPassesAll(t *testing.T) {
	records := searchRecords()
	out := Search(records, card.SearchConfig{Fields: []string{"name"}, Query: ""})

	assert.Equal(t, ids(records), ids(out))
}

func TestSearchSubstringCaseInsensitive(t *testing.T) {
	out := Search(searchRecords(), card.SearchConfig{
		Fields: []string{"name"},
		Query:  "ann",
	})

	assert.Equal(t, []string{"1", "2"}, ids(out))
}

func TestSearchCaseSensitive(t *testing.T) {
	out := Search(searchRecords(), card.SearchConfig{
		Fields:        []string{"name"},
		Query:         "Ann",
		CaseSensitive: true,
	})

	assert.Equal(t, []string{"1"}, ids(out))
}

func TestSearchExactMatch(t *testing.T) {
	out := Search(searchRecords(), card.SearchConfig{
		Fields:     []string{"name"},
		Query:      "anna",
		ExactMatch: true,
	})
	assert.Equal(t, []string{"1"}, ids(out))

	out = Search(searchRecords(), card.SearchConfig{
		Fields:        []string{"name"},
		Query:         "anna",
		ExactMatch:    true,
		CaseSensitive: true,
	})
	assert.Empty(t, ids(out))
}

func TestSearchAnyFieldMatches(t *testing.T) {
	out := Search(searchRecords(), card.SearchConfig{
		Fields: []string{"name", "city"},
		Query:  "ann",
	})

	// "Annecy" brings record 3 in through the city field.
	assert.Equal(t, []string{"1", "2", "3"}, ids(out))
}

func TestSearchNilValuesNeverMatch(t *testing.T) {
	out := Search(searchRecords(), card.SearchConfig{
		Fields: []string{"name"},
		Query:  "n",
	})

	assert.NotContains(t, ids(out), "4")
}

func TestSearchCoercesNonStringFields(t *testing.T) {
	records := []card.Record{rec("1", "qty", 1024)}
	out := Search(records, card.SearchConfig{Fields: []string{"qty"}, Query: "102"})

	assert.Equal(t, []string{"1"}, ids(out))
}
