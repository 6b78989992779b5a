// Package card defines the core value types shared by the view
// configuration, the processing pipeline, export, and the presentation
// layer. It exists as a leaf package so that none of those packages need
// to import each other.
package card

// Record is one data item displayed as a card: a stable, unique string
// identifier plus an opaque field map. No schema is enforced beyond the
// identifier; field values may be strings, numbers, date-like strings, or
// anything else.
type Record struct {
	ID     string
	Fields map[string]any
}

// Get returns the value of the named field, or nil when the field is
// absent. Absent and explicitly-nil fields are indistinguishable on
// purpose: both mean "no value" to every pipeline stage.
func (r Record) Get(key string) any {
	if r.Fields == nil {
		return nil
	}
	return r.Fields[key]
}

// Has reports whether the record carries the named field, nil or not.
func (r Record) Has(key string) bool {
	_, ok := r.Fields[key]
	return ok
}

// Clone returns a copy of the record with its own field map.
func (r Record) Clone() Record {
	fields := make(map[string]any, len(r.Fields))
	for k, v := range r.Fields {
		fields[k] = v
	}
	return Record{ID: r.ID, Fields: fields}
}

// FieldKind classifies a field for display and filtering purposes.
type FieldKind string

const (
	FieldText   FieldKind = "text"
	FieldNumber FieldKind = "number"
	FieldDate   FieldKind = "date"
	FieldImage  FieldKind = "image"
	FieldStatus FieldKind = "status"
	FieldCustom FieldKind = "custom"
)

// FieldDescriptor is the per-field metadata of a view: how one record
// field is labeled, sorted, and filtered. Edit configuration is carried
// declaratively for the presentation layer; the pipeline ignores it.
type FieldDescriptor struct {
	Key      string            `yaml:"key" json:"key"`
	Label    string            `yaml:"label" json:"label"`
	Kind     FieldKind         `yaml:"kind" json:"kind"`
	Sortable bool              `yaml:"sortable" json:"sortable"`
	Filter   *FilterDefinition `yaml:"filter,omitempty" json:"filter,omitempty"`
	Editable bool              `yaml:"editable,omitempty" json:"editable,omitempty"`
}
