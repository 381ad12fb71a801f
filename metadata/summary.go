package metadata

import (
	"fmt"
	"strings"
	"time"

	"github.com/arog-bioinfo/covmeta/variant"
)

// MaxExampleLocations caps the distinct locations reported per variant.
// These are display examples in first-seen order, not a statistical sample.
const MaxExampleLocations = 5

// Summary holds the per-variant aggregates derived from one Table. It is
// computed fresh on each call and never mutated afterward.
type Summary struct {
	Key         string
	DisplayName string

	Sequences int

	// DateMin and DateMax span the parseable collection dates. HasDates is
	// false when no record carried one.
	DateMin  time.Time
	DateMax  time.Time
	HasDates bool

	// Countries counts distinct non-missing geographic locations.
	Countries int

	// ExampleLocations holds up to MaxExampleLocations distinct non-missing
	// locations in first-seen order.
	ExampleLocations []string
}

// Period renders the covered span as "YYYY-MM/YYYY-MM", or "-" when the
// variant has no parseable dates.
func (s Summary) Period() string {
	if !s.HasDates {
		return "-"
	}
	return s.DateMin.Format("2006-01") + "/" + s.DateMax.Format("2006-01")
}

// Summarize computes a variant's aggregates from its table. Unparseable
// collection dates are treated as missing and excluded from the date span.
func Summarize(t *Table, d variant.Dataset) (Summary, error) {
	dateCol, ok := t.ColumnIndex(DateColumn)
	if !ok {
		return Summary{}, fmt.Errorf("variant %s: %w: %s", d.Key, ErrMissingColumn, DateColumn)
	}
	locCol, ok := t.ColumnIndex(LocationColumn)
	if !ok {
		return Summary{}, fmt.Errorf("variant %s: %w: %s", d.Key, ErrMissingColumn, LocationColumn)
	}

	s := Summary{Key: d.Key, DisplayName: d.DisplayName, Sequences: t.Len()}

	seen := make(map[string]struct{})
	for _, row := range t.Rows {
		if date, ok := ParseDate(row[dateCol]); ok {
			if !s.HasDates || date.Before(s.DateMin) {
				s.DateMin = date
			}
			if !s.HasDates || date.After(s.DateMax) {
				s.DateMax = date
			}
			s.HasDates = true
		}

		loc := strings.TrimSpace(row[locCol])
		if loc == "" {
			continue
		}
		if _, dup := seen[loc]; dup {
			continue
		}
		seen[loc] = struct{}{}
		if len(s.ExampleLocations) < MaxExampleLocations {
			s.ExampleLocations = append(s.ExampleLocations, loc)
		}
	}
	s.Countries = len(seen)

	return s, nil
}

// PathFunc maps a variant dataset to the file that should be loaded for it.
type PathFunc func(variant.Dataset) string

// LoadAll loads every configured variant in mapping order, summarizing each.
// A missing or unreadable file aborts the whole batch so that partial
// results are never reported as complete; the returned error names the
// offending variant and path.
func LoadAll(cfg variant.Config, path PathFunc) (map[string]*Table, []Summary, error) {
	tables := make(map[string]*Table, len(cfg.Variants))
	summaries := make([]Summary, 0, len(cfg.Variants))

	for _, d := range cfg.Variants {
		p := path(d)
		t, err := Load(p)
		if err != nil {
			return nil, nil, fmt.Errorf("variant %s (%s): %w", d.Key, p, err)
		}

		s, err := Summarize(t, d)
		if err != nil {
			return nil, nil, err
		}

		tables[d.Key] = t
		summaries = append(summaries, s)
	}

	return tables, summaries, nil
}
