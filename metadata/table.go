// Package metadata loads and cleans per-variant NCBI sequence metadata
// exports. Column names are standardized to snake_case on load so that raw
// tab-separated exports and cleaned comma-separated artifacts present the
// same schema to callers.
package metadata

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/carbocation/pfx"

	"github.com/arog-bioinfo/covmeta"
)

// Column names after standardization.
const (
	DateColumn      = "isolate_collection_date"
	LocationColumn  = "geographic_location"
	AccessionColumn = "accession"
)

var (
	// ErrMissingColumn indicates a loaded table lacks a column the pipeline
	// depends on.
	ErrMissingColumn = errors.New("required column not found")

	// ErrEmptyTable indicates a table expected to hold at least one record
	// has none.
	ErrEmptyTable = errors.New("metadata table has no records")
)

// StandardizeColumn trims, lowercases, and underscore-joins a column name.
// "Isolate Collection date" becomes "isolate_collection_date".
func StandardizeColumn(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// Table is one variant's metadata in file order. Accession uniqueness is not
// enforced here.
type Table struct {
	Columns []string
	Rows    [][]string

	index map[string]int
}

// NewTable builds a Table from already-standardized columns and rows.
func NewTable(columns []string, rows [][]string) *Table {
	t := &Table{Columns: columns, Rows: rows, index: make(map[string]int)}
	for i, col := range columns {
		t.index[col] = i
	}
	return t
}

// Load reads a delimited metadata file into a Table, auto-detecting the
// delimiter and standardizing column names.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	delim := covmeta.DetermineDelimiter(f)
	if _, err := f.Seek(0, 0); err != nil {
		return nil, pfx.Err(err)
	}

	r := csv.NewReader(bufio.NewReader(f))
	r.Comma = delim
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %v", path, err))
	}
	if len(records) == 0 {
		return NewTable(nil, nil), nil
	}

	columns := make([]string, len(records[0]))
	for i, col := range records[0] {
		columns[i] = StandardizeColumn(col)
	}

	return NewTable(columns, records[1:]), nil
}

// Len is the record count.
func (t *Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex reports the position of a standardized column name.
func (t *Table) ColumnIndex(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// FirstAccession returns the accession of the first record, for spot-checking
// against a sequence archive.
func (t *Table) FirstAccession() (string, error) {
	col, ok := t.ColumnIndex(AccessionColumn)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingColumn, AccessionColumn)
	}
	if t.Len() == 0 {
		return "", ErrEmptyTable
	}
	return t.Rows[0][col], nil
}

// ParseDate leniently parses a collection date. Empty and unparseable values
// report ok=false and are treated as missing by callers.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	d, err := dateparse.ParseAny(value)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
