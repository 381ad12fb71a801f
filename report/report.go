// Package report assembles the cross-variant summary: one row per variant in
// configuration order plus an explicit TOTAL row, optionally enriched with
// the external phenotype row count. The CSV artifact and the console output
// are rendered from the same rows so their totals always agree.
package report

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"

	"github.com/arog-bioinfo/covmeta/metadata"
)

// Row is one line of the summary table.
type Row struct {
	Variant    string `csv:"Variant"`
	Sequences  int    `csv:"Sequences"`
	Period     string `csv:"Period"`
	Countries  string `csv:"Countries"`
	Phenotypes string `csv:"Phenotypes"`
}

// Report is the terminal artifact of a pipeline run.
type Report struct {
	Summaries []metadata.Summary

	// PhenoRows is the external phenotype table's row count; zero or
	// negative means enrichment was not performed and the Phenotypes column
	// is left blank.
	PhenoRows int
}

// Build assembles a report from per-variant summaries in their given order.
func Build(summaries []metadata.Summary, phenoRows int) Report {
	return Report{Summaries: summaries, PhenoRows: phenoRows}
}

// TotalSequences is the grand total across all variants.
func (r Report) TotalSequences() int {
	total := 0
	for _, s := range r.Summaries {
		total += s.Sequences
	}
	return total
}

// totalPeriod spans the earliest and latest dates across all variants.
func (r Report) totalPeriod() string {
	var span metadata.Summary
	for _, s := range r.Summaries {
		if !s.HasDates {
			continue
		}
		if !span.HasDates || s.DateMin.Before(span.DateMin) {
			span.DateMin = s.DateMin
		}
		if !span.HasDates || s.DateMax.After(span.DateMax) {
			span.DateMax = s.DateMax
		}
		span.HasDates = true
	}
	return span.Period()
}

// Rows renders the table: one row per variant plus the TOTAL row.
func (r Report) Rows() []Row {
	phenoCell := ""
	if r.PhenoRows > 0 {
		phenoCell = strconv.Itoa(r.PhenoRows)
	}

	rows := make([]Row, 0, len(r.Summaries)+1)
	for _, s := range r.Summaries {
		rows = append(rows, Row{
			Variant:    s.DisplayName,
			Sequences:  s.Sequences,
			Period:     s.Period(),
			Countries:  strconv.Itoa(s.Countries),
			Phenotypes: phenoCell,
		})
	}

	rows = append(rows, Row{
		Variant:    "TOTAL",
		Sequences:  r.TotalSequences(),
		Period:     r.totalPeriod(),
		Countries:  "-",
		Phenotypes: phenoCell,
	})

	return rows
}

// WriteCSV writes the summary table, overwriting any existing file.
func (r Report) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	rows := r.Rows()
	return pfx.Err(gocsv.MarshalFile(&rows, f))
}

// Print renders the human-readable table.
func (r Report) Print(w io.Writer) {
	rows := r.Rows()
	fmt.Fprintf(w, "%-20s %10s  %-15s %9s  %s\n", "Variant", "Sequences", "Period", "Countries", "Phenotypes")
	for _, row := range rows {
		fmt.Fprintf(w, "%-20s %10d  %-15s %9s  %s\n", row.Variant, row.Sequences, row.Period, row.Countries, row.Phenotypes)
	}
}
