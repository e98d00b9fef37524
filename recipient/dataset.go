package recipient

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrMissingColumn is returned when a CSV header lacks a required column.
var ErrMissingColumn = errors.New("recipient: missing column")

// columns maps accepted header names to record fields. The location_
// prefixed names are those of the original recipient spreadsheet.
var columns = map[string]string{
	"name":                 "name",
	"gender":               "gender",
	"country":              "country",
	"location_country":     "country",
	"state":                "state",
	"location_state":       "state",
	"postal_code":          "postal_code",
	"location_postal_code": "postal_code",
	"city":                 "city",
	"location_city":        "city",
	"street":               "street",
	"location_street":      "street",
}

var requiredColumns = []string{"name", "country", "postal_code", "city", "street"}

// ReadCSV reads records from CSV with a header row. Column order is free;
// unknown columns are ignored. Rows are returned in file order and are not
// validated, see Record.Validate.
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("recipient: reading header: %w", err)
	}

	index := make(map[string]int)
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if field, ok := columns[h]; ok {
			index[field] = i
		}
	}
	for _, c := range requiredColumns {
		if _, ok := index[c]; !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, c)
		}
	}

	get := func(row []string, field string) string {
		i, ok := index[field]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, fmt.Errorf("recipient: reading line %d: %w", line, err)
		}
		records = append(records, Record{
			Name:       get(row, "name"),
			Gender:     get(row, "gender"),
			Country:    get(row, "country"),
			State:      get(row, "state"),
			PostalCode: get(row, "postal_code"),
			City:       get(row, "city"),
			Street:     get(row, "street"),
		})
	}
}

// ReadJSON reads a JSON array of records.
func ReadJSON(r io.Reader) ([]Record, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("recipient: decoding json: %w", err)
	}
	return records, nil
}

// Load reads a dataset file, choosing the format by extension (.json, anything
// else is CSV).
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("recipient: opening %s: %w", path, err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ReadJSON(f)
	}
	return ReadCSV(f)
}
