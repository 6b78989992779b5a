package pipeline

import (
	"strings"
	"time"

	"cardview/internal/card"
)

// predicate evaluates one applied filter against a record's field value.
type predicate func(def card.FilterDefinition, val card.FilterValue, field any) bool

// predicates dispatches on filter kind. A kind with no entry imposes no
// constraint: a misconfigured filter must never blank the whole view, so
// unknown kinds fail open rather than closed. Type-coercion failures on
// the record side, by contrast, fail the predicate (except emptiness
// checks, which are format-independent).
var predicates = map[card.FilterKind]predicate{
	card.FilterDate:        matchDate,
	card.FilterCheckbox:    matchCheckbox,
	card.FilterDropdown:    matchDropdown,
	card.FilterConditional: matchConditionalText,
	card.FilterText:        matchPlainText,
	card.FilterNumber:      matchNumeric,
}

// Matches reports whether the record satisfies every applied filter.
// Filters compose with AND; within a multi-value filter the record's
// values compose with OR against the selected set. Unset values, unknown
// filter IDs, and unknown kinds are vacuously true.
func Matches(rec card.Record, defs []card.FilterDefinition, active card.ActiveFilters) bool {
	for id, val := range active {
		if val.IsZero() {
			continue
		}
		def, ok := findDefinition(defs, id)
		if !ok {
			continue
		}
		match, ok := predicates[def.Kind]
		if !ok {
			continue
		}
		if !match(def, val, rec.Get(def.Field)) {
			return false
		}
	}
	return true
}

// Filter returns the records matching every applied filter, in input
// order. The input slice is never mutated.
func Filter(records []card.Record, defs []card.FilterDefinition, active card.ActiveFilters) []card.Record {
	out := make([]card.Record, 0, len(records))
	for _, rec := range records {
		if Matches(rec, defs, active) {
			out = append(out, rec)
		}
	}
	return out
}

func findDefinition(defs []card.FilterDefinition, id string) (card.FilterDefinition, bool) {
	for _, def := range defs {
		if def.ID == id {
			return def, true
		}
	}
	return card.FilterDefinition{}, false
}

// matchDate compares at calendar-day granularity. Ranges are inclusive of
// both bounds; an absent bound is unconstrained, and a range with neither
// bound passes everything. A bound that does not parse is a configuration
// error and is ignored; a record date that does not parse fails.
func matchDate(def card.FilterDefinition, val card.FilterValue, field any) bool {
	if def.Range || val.Start != "" || val.End != "" {
		if val.Start == "" && val.End == "" {
			return true
		}
		t, ok := toTime(field)
		if !ok {
			return false
		}
		day := dayOf(t)
		if start, ok := toTime(val.Start); ok && day.Before(dayOf(start)) {
			return false
		}
		if end, ok := toTime(val.End); ok && day.After(dayOf(end)) {
			return false
		}
		return true
	}

	want, ok := toTime(val.Raw)
	if !ok {
		return true
	}
	t, ok := toTime(field)
	if !ok {
		return false
	}
	return sameDay(t, want)
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// matchCheckbox passes when the record's values (treated as a list)
// intersect the selected set. An empty selection is no constraint.
func matchCheckbox(_ card.FilterDefinition, val card.FilterValue, field any) bool {
	if len(val.Values) == 0 {
		return true
	}
	for _, have := range valueList(field) {
		for _, want := range val.Values {
			if have == want {
				return true
			}
		}
	}
	return false
}

func matchDropdown(def card.FilterDefinition, val card.FilterValue, field any) bool {
	if def.Multiple {
		return matchCheckbox(def, val, field)
	}
	want := toString(val.Raw)
	if want == "" {
		return true
	}
	return toString(field) == want
}

// matchPlainText is a case-insensitive substring match on the raw value.
func matchPlainText(_ card.FilterDefinition, val card.FilterValue, field any) bool {
	query := toString(val.Raw)
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(toString(field)), strings.ToLower(query))
}

func matchConditionalText(_ card.FilterDefinition, val card.FilterValue, field any) bool {
	if val.Condition == "" {
		return true
	}
	have := toString(field)
	want := toString(val.Raw)
	switch val.Condition {
	case card.CondEquals:
		return have == want
	case card.CondNotEquals:
		return have != want
	case card.CondContains:
		return containsFold(have, want)
	case card.CondNotContains:
		return !containsFold(have, want)
	case card.CondStartsWith:
		return strings.HasPrefix(strings.ToLower(have), strings.ToLower(want))
	case card.CondEndsWith:
		return strings.HasSuffix(strings.ToLower(have), strings.ToLower(want))
	case card.CondIsEmpty:
		return isEmptyValue(field)
	case card.CondIsNotEmpty:
		return !isEmptyValue(field)
	default:
		return true
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func matchNumeric(_ card.FilterDefinition, val card.FilterValue, field any) bool {
	switch val.Condition {
	case "":
		return true
	case card.CondIsEmpty:
		return isEmptyValue(field)
	case card.CondIsNotEmpty:
		return !isEmptyValue(field)
	case card.CondBetween:
		low, high, ok := betweenBounds(val)
		if !ok {
			return true
		}
		n, ok := toFloat(field)
		return ok && n >= low && n <= high
	}

	want, ok := toFloat(val.Raw)
	if !ok {
		return true
	}
	n, ok := toFloat(field)
	if !ok {
		return false
	}
	switch val.Condition {
	case card.CondEquals:
		return n == want
	case card.CondNotEquals:
		return n != want
	case card.CondGreaterThan:
		return n > want
	case card.CondGreaterOrEqual:
		return n >= want
	case card.CondLessThan:
		return n < want
	case card.CondLessOrEqual:
		return n <= want
	default:
		return true
	}
}

// betweenBounds extracts the inclusive 2-element bound pair, accepting it
// either in Values or as a slice in Raw. A malformed pair is a
// configuration error, reported as not-ok so the filter imposes nothing.
func betweenBounds(val card.FilterValue) (low, high float64, ok bool) {
	pair := val.Values
	if len(pair) == 0 {
		if raw, isList := val.Raw.([]any); isList {
			pair = valueList(raw)
		}
	}
	if len(pair) != 2 {
		return 0, 0, false
	}
	low, okLow := toFloat(pair[0])
	high, okHigh := toFloat(pair[1])
	if !okLow || !okHigh {
		return 0, 0, false
	}
	if low > high {
		low, high = high, low
	}
	return low, high, true
}
