// Package dataset ingests record files for a card view. JSON arrays and
// CSV tables are the two supported shapes; either way the result is a
// slice of records with stable, unique string IDs.
package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"cardview/internal/card"
)

// LoadFile dispatches on the file extension: .json for a JSON array of
// objects, .csv for a header-row CSV. idField names the field carrying
// the record identifier; records without it get a minted UUID.
func LoadFile(path, idField string) ([]card.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadJSON(f, idField)
	case ".csv":
		return LoadCSV(f, idField)
	default:
		return nil, fmt.Errorf("dataset: unsupported extension %q", filepath.Ext(path))
	}
}

// LoadJSON reads an array of flat objects.
func LoadJSON(r io.Reader, idField string) ([]card.Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var rows []map[string]any
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	records := make([]card.Record, 0, len(rows))
	for _, fields := range rows {
		records = append(records, card.Record{
			ID:     recordID(fields, idField),
			Fields: fields,
		})
	}
	if err := checkUnique(records); err != nil {
		return nil, err
	}
	return records, nil
}

// LoadCSV reads a table whose first row names the fields. Cells stay
// strings; the pipeline coerces on demand.
func LoadCSV(r io.Reader, idField string) ([]card.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataset: empty CSV")
	}

	header := rows[0]
	records := make([]card.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		fields := make(map[string]any, len(header))
		for i, key := range header {
			if i < len(row) {
				fields[key] = row[i]
			}
		}
		records = append(records, card.Record{
			ID:     recordID(fields, idField),
			Fields: fields,
		})
	}
	if err := checkUnique(records); err != nil {
		return nil, err
	}
	return records, nil
}

func recordID(fields map[string]any, idField string) string {
	if idField != "" {
		if v, ok := fields[idField]; ok {
			if s := fmt.Sprintf("%v", v); s != "" {
				return s
			}
		}
	}
	return uuid.NewString()
}

func checkUnique(records []card.Record) error {
	seen := make(map[string]bool, len(records))
	for _, rec := range records {
		if seen[rec.ID] {
			return fmt.Errorf("dataset: duplicate record id %q", rec.ID)
		}
		seen[rec.ID] = true
	}
	return nil
}
