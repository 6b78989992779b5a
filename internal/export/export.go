// Package export projects processed records to CSV or JSON. It is the
// download collaborator of the card view: a pure projection of whatever
// the pipeline produced, with no processing of its own.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"cardview/internal/card"
)

// WriteCSV writes a header row from the field labels followed by one row
// per record, in field-descriptor order. Missing fields render empty.
func WriteCSV(w io.Writer, fields []card.FieldDescriptor, records []card.Record) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(fields))
	for i, f := range fields {
		header[i] = f.Label
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}

	row := make([]string, len(fields))
	for _, rec := range records {
		for i, f := range fields {
			if v := rec.Get(f.Key); v != nil {
				row[i] = fmt.Sprintf("%v", v)
			} else {
				row[i] = ""
			}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// jsonRecord keeps the identifier visible alongside the fields.
type jsonRecord struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

// WriteJSON writes the records as an indented JSON array.
func WriteJSON(w io.Writer, records []card.Record) error {
	out := make([]jsonRecord, len(records))
	for i, rec := range records {
		out[i] = jsonRecord{ID: rec.ID, Fields: rec.Fields}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("export: encode json: %w", err)
	}
	return nil
}
