// Package pheno loads the externally produced viral-fitness phenotype
// tables. The tables are opaque here beyond the named target column: column
// names are kept exactly as exported, and every numeric value that fails to
// parse is treated as missing rather than rejected.
package pheno

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/montanaflynn/stats"
)

// ErrMissingColumn indicates the phenotype table lacks the requested column.
var ErrMissingColumn = errors.New("phenotype column not found")

// Table is a phenotype export with its original column names.
type Table struct {
	Columns []string
	Rows    [][]string

	index map[string]int
}

// Load reads a comma-separated phenotype table.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %v", path, err))
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: phenotype table is empty", path)
	}

	t := &Table{Columns: records[0], Rows: records[1:], index: make(map[string]int)}
	for i, col := range t.Columns {
		t.index[col] = i
	}

	return t, nil
}

// Len is the row count.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Values returns the parseable numeric values of a column, in row order.
// Missing and unparseable entries are skipped.
func (t *Table) Values(column string) ([]float64, error) {
	col, ok := t.index[column]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, column)
	}

	vals := make([]float64, 0, len(t.Rows))
	for _, row := range t.Rows {
		s := strings.TrimSpace(row[col])
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			continue
		}
		vals = append(vals, v)
	}

	return vals, nil
}

// Stats are the descriptive statistics of a target column, computed over its
// non-missing values.
type Stats struct {
	Count int
	Mean  float64
	Std   float64
	Min   float64
	Max   float64
}

// Describe computes descriptive statistics for the named target column.
func (t *Table) Describe(column string) (Stats, error) {
	vals, err := t.Values(column)
	if err != nil {
		return Stats{}, err
	}
	if len(vals) == 0 {
		return Stats{}, nil
	}

	data := stats.Float64Data(vals)
	st := Stats{Count: len(vals)}
	if st.Mean, err = stats.Mean(data); err != nil {
		return Stats{}, pfx.Err(err)
	}
	if len(vals) > 1 {
		if st.Std, err = stats.StandardDeviationSample(data); err != nil {
			return Stats{}, pfx.Err(err)
		}
	}
	if st.Min, err = stats.Min(data); err != nil {
		return Stats{}, pfx.Err(err)
	}
	if st.Max, err = stats.Max(data); err != nil {
		return Stats{}, pfx.Err(err)
	}

	return st, nil
}
