package metadata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arog-bioinfo/covmeta/variant"
)

func TestSummarize(t *testing.T) {
	table := NewTable([]string{"accession", "isolate_collection_date", "geographic_location"}, [][]string{
		{"OK0001.1", "2021-06-15", "Brazil"},
		{"OK0002.1", "2021-05-01", "USA"},
		{"OK0003.1", "not a date", "USA"},
		{"OK0004.1", "2021-05-20", ""},
		{"OK0005.1", "2021-05-21", "France"},
		{"OK0006.1", "2021-05-22", "Germany"},
		{"OK0007.1", "2021-05-23", "Japan"},
		{"OK0008.1", "2021-05-24", "Peru"},
		{"OK0009.1", "2021-05-25", "Kenya"},
	})

	s, err := Summarize(table, variant.Dataset{Key: "delta", DisplayName: "Delta"})
	if err != nil {
		t.Fatal(err)
	}

	if s.Sequences != 9 {
		t.Errorf("sequences: got %d", s.Sequences)
	}
	if s.Period() != "2021-05/2021-06" {
		t.Errorf("period: got %q", s.Period())
	}
	if s.Countries != 7 {
		t.Errorf("countries: got %d", s.Countries)
	}

	// First-seen order, capped, blanks removed.
	want := []string{"Brazil", "USA", "France", "Germany", "Japan"}
	if len(s.ExampleLocations) != len(want) {
		t.Fatalf("example locations: got %v", s.ExampleLocations)
	}
	for i := range want {
		if s.ExampleLocations[i] != want[i] {
			t.Errorf("example location %d: got %q, want %q", i, s.ExampleLocations[i], want[i])
		}
	}
}

func TestSummarizeNoDates(t *testing.T) {
	table := NewTable([]string{"isolate_collection_date", "geographic_location"}, [][]string{
		{"", "USA"},
	})

	s, err := Summarize(table, variant.Dataset{Key: "b1"})
	if err != nil {
		t.Fatal(err)
	}
	if s.HasDates {
		t.Error("expected no dates")
	}
	if s.Period() != "-" {
		t.Errorf("period: got %q", s.Period())
	}
}

func TestSummarizeMissingColumns(t *testing.T) {
	table := NewTable([]string{"accession"}, [][]string{{"OK0001.1"}})

	if _, err := Summarize(table, variant.Dataset{Key: "b1"}); err == nil {
		t.Fatal("expected an error for a missing date column")
	}
}

func testConfig(dir string, keys ...string) variant.Config {
	cfg := variant.Config{DataDir: dir}
	for _, k := range keys {
		cfg.Variants = append(cfg.Variants, variant.Dataset{Key: k, DisplayName: k, CleanStem: k + "_meta_clean"})
	}
	return cfg
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir, "delta", "omicron")

	for _, d := range cfg.Variants {
		if err := os.MkdirAll(filepath.Join(dir, d.Key), 0o755); err != nil {
			t.Fatal(err)
		}
		err := os.WriteFile(cfg.CleanPath(d), []byte(
			"accession,isolate_collection_date,geographic_location\n"+
				"OK0001.1,2021-05-01,USA\n"+
				"OK0002.1,2021-06-15,Brazil\n"), 0o644)
		if err != nil {
			t.Fatal(err)
		}
	}

	tables, summaries, err := LoadAll(cfg, cfg.CleanPath)
	if err != nil {
		t.Fatal(err)
	}

	total := 0
	for _, s := range summaries {
		total += s.Sequences
	}
	if total != 4 {
		t.Errorf("total: got %d", total)
	}
	if len(tables) != 2 {
		t.Errorf("tables: got %d", len(tables))
	}

	// Mapping order is preserved.
	if summaries[0].Key != "delta" || summaries[1].Key != "omicron" {
		t.Errorf("order: got %s, %s", summaries[0].Key, summaries[1].Key)
	}
}

func TestLoadAllFailFast(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir, "delta", "omicron")

	// Only the first variant's file exists.
	d := cfg.Variants[0]
	if err := os.MkdirAll(filepath.Join(dir, d.Key), 0o755); err != nil {
		t.Fatal(err)
	}
	err := os.WriteFile(cfg.CleanPath(d), []byte(
		"accession,isolate_collection_date,geographic_location\n"+
			"OK0001.1,2021-05-01,USA\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	tables, summaries, err := LoadAll(cfg, cfg.CleanPath)
	if err == nil {
		t.Fatal("expected a missing-file error")
	}
	if !strings.Contains(err.Error(), "omicron") {
		t.Errorf("error does not name the variant: %v", err)
	}
	if !strings.Contains(err.Error(), cfg.CleanPath(cfg.Variants[1])) {
		t.Errorf("error does not name the path: %v", err)
	}

	// No partial results claiming completeness.
	if tables != nil || summaries != nil {
		t.Error("expected no partial results")
	}
}
