package pipeline

import (
	"strings"

	"cardview/internal/card"
)

// Search keeps the records where any configured field matches the query.
// An empty query keeps everything. Field values are coerced to strings;
// nil values never match. With ExactMatch the whole value must equal the
// query, otherwise a substring suffices, honoring CaseSensitive either
// way.
func Search(records []card.Record, cfg card.SearchConfig) []card.Record {
	if cfg.Query == "" {
		return records
	}
	out := make([]card.Record, 0, len(records))
	for _, rec := range records {
		if searchMatches(rec, cfg) {
			out = append(out, rec)
		}
	}
	return out
}

func searchMatches(rec card.Record, cfg card.SearchConfig) bool {
	query := cfg.Query
	if !cfg.CaseSensitive {
		query = strings.ToLower(query)
	}
	for _, field := range cfg.Fields {
		v := rec.Get(field)
		if v == nil {
			continue
		}
		s := toString(v)
		if !cfg.CaseSensitive {
			s = strings.ToLower(s)
		}
		if cfg.ExactMatch {
			if s == query {
				return true
			}
		} else if strings.Contains(s, query) {
			return true
		}
	}
	return false
}
