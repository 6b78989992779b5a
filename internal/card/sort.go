package card

// SortDirection is the order of one sort criterion.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// SortCriterion names a field and a direction. A sort configuration is an
// ordered slice of criteria: the first is the primary key, later entries
// break ties.
type SortCriterion struct {
	Field     string        `yaml:"field" json:"field"`
	Direction SortDirection `yaml:"direction" json:"direction"`
}

// SearchConfig selects which fields a text search inspects and how the
// query is matched. An empty Query disables searching.
type SearchConfig struct {
	Fields        []string `yaml:"fields" json:"fields"`
	Query         string   `yaml:"query" json:"query"`
	CaseSensitive bool     `yaml:"case_sensitive" json:"case_sensitive"`
	ExactMatch    bool     `yaml:"exact_match" json:"exact_match"`
}
