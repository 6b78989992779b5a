package card

// FilterKind identifies the matching strategy of a filter.
type FilterKind string

const (
	// FilterDate matches a single calendar day or a {start, end} range.
	FilterDate FilterKind = "date"
	// FilterCheckbox matches when the record's values intersect the
	// selected set.
	FilterCheckbox FilterKind = "checkbox"
	// FilterDropdown matches a single selected value, or set membership
	// when the definition is marked Multiple.
	FilterDropdown FilterKind = "dropdown"
	// FilterConditional matches a {condition, value} pair against the
	// text operator table.
	FilterConditional FilterKind = "conditional"
	// FilterText is a plain case-insensitive substring match.
	FilterText FilterKind = "text"
	// FilterNumber matches a {condition, value} pair against the numeric
	// operator table.
	FilterNumber FilterKind = "number"
)

// Condition names one operator of the conditional text/number tables.
type Condition string

const (
	CondEquals         Condition = "equals"
	CondNotEquals      Condition = "not_equals"
	CondContains       Condition = "contains"
	CondNotContains    Condition = "not_contains"
	CondStartsWith     Condition = "starts_with"
	CondEndsWith       Condition = "ends_with"
	CondGreaterThan    Condition = "greater_than"
	CondGreaterOrEqual Condition = "greater_or_equal"
	CondLessThan       Condition = "less_than"
	CondLessOrEqual    Condition = "less_or_equal"
	CondBetween        Condition = "between"
	CondIsEmpty        Condition = "is_empty"
	CondIsNotEmpty     Condition = "is_not_empty"
)

// TextConditions lists the operators valid for conditional text filters.
func TextConditions() []Condition {
	return []Condition{
		CondEquals, CondNotEquals, CondContains, CondNotContains,
		CondStartsWith, CondEndsWith, CondIsEmpty, CondIsNotEmpty,
	}
}

// NumberConditions lists the operators valid for numeric filters.
func NumberConditions() []Condition {
	return []Condition{
		CondEquals, CondNotEquals, CondGreaterThan, CondGreaterOrEqual,
		CondLessThan, CondLessOrEqual, CondBetween, CondIsEmpty,
		CondIsNotEmpty,
	}
}

// FilterDefinition is the static shape of one filter: which field it
// constrains, how it matches, and its kind-specific parameters.
type FilterDefinition struct {
	ID    string     `yaml:"id" json:"id"`
	Field string     `yaml:"field" json:"field"`
	Kind  FilterKind `yaml:"kind" json:"kind"`

	// Options enumerates the selectable values for checkbox and dropdown
	// filters.
	Options []string `yaml:"options,omitempty" json:"options,omitempty"`

	// Multiple marks a dropdown as multi-select.
	Multiple bool `yaml:"multiple,omitempty" json:"multiple,omitempty"`

	// Conditions restricts the operators offered for conditional and
	// number filters. Empty means the full table for the kind.
	Conditions []Condition `yaml:"conditions,omitempty" json:"conditions,omitempty"`

	// Range marks a date filter as a {start, end} range rather than a
	// single-day match.
	Range bool `yaml:"range,omitempty" json:"range,omitempty"`
}

// FilterValue is the currently applied value of one filter. Exactly which
// members are meaningful depends on the filter kind: Raw for plain text,
// dates, and single-select dropdowns; Condition+Raw for conditional and
// numeric filters; Values for checkbox and multi-select dropdowns; Start
// and End for date ranges. The zero value means "unset" and imposes no
// constraint.
type FilterValue struct {
	Raw       any       `yaml:"value,omitempty" json:"value,omitempty"`
	Condition Condition `yaml:"condition,omitempty" json:"condition,omitempty"`
	Values    []string  `yaml:"values,omitempty" json:"values,omitempty"`
	Start     string    `yaml:"start,omitempty" json:"start,omitempty"`
	End       string    `yaml:"end,omitempty" json:"end,omitempty"`
}

// IsZero reports whether the value is unset in every member.
func (v FilterValue) IsZero() bool {
	return v.Raw == nil && v.Condition == "" && len(v.Values) == 0 &&
		v.Start == "" && v.End == ""
}

// ActiveFilters maps filter-definition IDs to their applied values. An
// empty map means no filtering.
type ActiveFilters map[string]FilterValue

// Clone returns an independent copy of the map.
func (a ActiveFilters) Clone() ActiveFilters {
	out := make(ActiveFilters, len(a))
	for id, v := range a {
		out[id] = v
	}
	return out
}
