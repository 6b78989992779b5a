package pipeline

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"cardview/internal/card"
)

// collator backs the string leg of value comparison. Collation order is
// locale-aware, unlike byte order: "a" sorts before "B".
var collator = collate.New(language.English, collate.Loose)

// Sort returns the records ordered by the given criteria. The input is
// never mutated; the sort is stable, so records equal under every
// criterion keep their original relative order. Empty criteria return a
// plain copy.
func Sort(records []card.Record, criteria []card.SortCriterion) []card.Record {
	out := make([]card.Record, len(records))
	copy(out, records)
	if len(criteria) == 0 {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		return compareRecords(out[i], out[j], criteria) < 0
	})
	return out
}

// compareRecords walks the criteria in order and returns the first
// nonzero comparison, negated for descending criteria. All-equal pairs
// return 0 and are left to the stable sort.
func compareRecords(a, b card.Record, criteria []card.SortCriterion) int {
	for _, c := range criteria {
		cmp := compareValues(a.Get(c.Field), b.Get(c.Field))
		if cmp == 0 {
			continue
		}
		if c.Direction == card.Descending {
			return -cmp
		}
		return cmp
	}
	return 0
}

// compareValues is the three-way comparison behind every criterion.
// Priority order: both nil equal; nil sorts first; both dates compare as
// timestamps; both numbers compare numerically; everything else compares
// as collated strings.
func compareValues(a, b any) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	if at, aok := toTime(a); aok {
		if bt, bok := toTime(b); bok {
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			default:
				return 0
			}
		}
	}

	if an, aok := toFloat(a); aok {
		if bn, bok := toFloat(b); bok {
			switch {
			case an < bn:
				return -1
			case an > bn:
				return 1
			default:
				return 0
			}
		}
	}

	return collator.CompareString(toString(a), toString(b))
}
