// Package config loads and validates the declarative view configuration:
// which fields a card shows, how they are filtered and sorted, and the
// presentation hints (layout, template, interaction flags) the terminal
// renderer consumes.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"cardview/internal/card"
)

// LayoutKind is the card arrangement requested by the configuration. The
// terminal renderer honors grid and stack; masonry and carousel degrade
// to grid.
type LayoutKind string

const (
	LayoutGrid     LayoutKind = "grid"
	LayoutMasonry  LayoutKind = "masonry"
	LayoutCarousel LayoutKind = "carousel"
	LayoutStack    LayoutKind = "stack"
)

// CardTemplate binds record fields to the card's content slots.
type CardTemplate struct {
	TitleField    string `yaml:"title_field"`
	SubtitleField string `yaml:"subtitle_field"`
	BodyField     string `yaml:"body_field"`
	ImageField    string `yaml:"image_field"`
}

// SearchDefaults configures the header search box.
type SearchDefaults struct {
	Fields        []string `yaml:"fields"`
	CaseSensitive bool     `yaml:"case_sensitive"`
	ExactMatch    bool     `yaml:"exact_match"`
}

// ViewConfig is the full declarative configuration of one card view.
type ViewConfig struct {
	Title    string                 `yaml:"title"`
	Layout   LayoutKind             `yaml:"layout"`
	IDField  string                 `yaml:"id_field"`
	Template CardTemplate           `yaml:"template"`
	Fields   []card.FieldDescriptor `yaml:"fields"`

	DefaultSort []card.SortCriterion `yaml:"default_sort"`
	Search      SearchDefaults       `yaml:"search"`
	PageSize    int                  `yaml:"page_size"`

	// Interaction flags for the presentation layer.
	Selection bool `yaml:"selection"`
	DragDrop  bool `yaml:"drag_drop"`
}

// Load reads, defaults, and validates a view configuration file.
func Load(path string) (*ViewConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg ViewConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults fills the members that may be omitted from the file.
func (c *ViewConfig) ApplyDefaults() {
	if c.Layout == "" {
		c.Layout = LayoutGrid
	}
	if c.PageSize <= 0 {
		c.PageSize = card.DefaultPageSize
	}
	if c.Template.TitleField == "" && len(c.Fields) > 0 {
		c.Template.TitleField = c.Fields[0].Key
	}
	if len(c.Search.Fields) == 0 {
		for _, f := range c.Fields {
			if f.Kind == card.FieldText || f.Kind == card.FieldStatus {
				c.Search.Fields = append(c.Search.Fields, f.Key)
			}
		}
	}
	for i := range c.Fields {
		if c.Fields[i].Label == "" {
			c.Fields[i].Label = c.Fields[i].Key
		}
		if c.Fields[i].Kind == "" {
			c.Fields[i].Kind = card.FieldText
		}
		if flt := c.Fields[i].Filter; flt != nil {
			if flt.ID == "" {
				flt.ID = c.Fields[i].Key
			}
			if flt.Field == "" {
				flt.Field = c.Fields[i].Key
			}
		}
	}
	for i := range c.DefaultSort {
		if c.DefaultSort[i].Direction == "" {
			c.DefaultSort[i].Direction = card.Ascending
		}
	}
}

// Validate rejects configurations the pipeline would silently ignore at
// runtime. Load-time strictness here does not change the runtime
// fail-open policy; it surfaces mistakes while they are still cheap.
func (c *ViewConfig) Validate() error {
	if len(c.Fields) == 0 {
		return fmt.Errorf("config: at least one field is required")
	}
	keys := make(map[string]bool, len(c.Fields))
	filterIDs := make(map[string]bool)
	for _, f := range c.Fields {
		if f.Key == "" {
			return fmt.Errorf("config: field with empty key")
		}
		if keys[f.Key] {
			return fmt.Errorf("config: duplicate field key %q", f.Key)
		}
		keys[f.Key] = true
		if f.Filter != nil {
			if filterIDs[f.Filter.ID] {
				return fmt.Errorf("config: duplicate filter id %q", f.Filter.ID)
			}
			filterIDs[f.Filter.ID] = true
			if !validFilterKind(f.Filter.Kind) {
				return fmt.Errorf("config: field %q: unknown filter kind %q", f.Key, f.Filter.Kind)
			}
		}
	}
	for _, s := range c.DefaultSort {
		if !keys[s.Field] {
			return fmt.Errorf("config: default sort references unknown field %q", s.Field)
		}
		if s.Direction != card.Ascending && s.Direction != card.Descending {
			return fmt.Errorf("config: sort field %q: bad direction %q", s.Field, s.Direction)
		}
	}
	for _, f := range c.Search.Fields {
		if !keys[f] {
			return fmt.Errorf("config: search references unknown field %q", f)
		}
	}
	return nil
}

func validFilterKind(k card.FilterKind) bool {
	switch k {
	case card.FilterDate, card.FilterCheckbox, card.FilterDropdown,
		card.FilterConditional, card.FilterText, card.FilterNumber:
		return true
	}
	return false
}

// FilterDefinitions collects the filter of every field that declares one.
func (c *ViewConfig) FilterDefinitions() []card.FilterDefinition {
	defs := make([]card.FilterDefinition, 0, len(c.Fields))
	for _, f := range c.Fields {
		if f.Filter != nil {
			defs = append(defs, *f.Filter)
		}
	}
	return defs
}

// SearchConfig returns the search stage configuration with an empty query.
func (c *ViewConfig) SearchConfig() card.SearchConfig {
	return card.SearchConfig{
		Fields:        append([]string(nil), c.Search.Fields...),
		CaseSensitive: c.Search.CaseSensitive,
		ExactMatch:    c.Search.ExactMatch,
	}
}
