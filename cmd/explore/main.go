// explore is the exploratory-analysis pipeline: it loads every variant's raw
// metadata export, summarizes sequence counts, date spans and country counts,
// optionally enriches the summary with the external phenotype table, renders
// the figures, and writes the combined data_summary.csv.
//
// A missing metadata file aborts the whole run. A missing phenotype table
// only skips enrichment: the base report is still produced.
package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/arog-bioinfo/covmeta"
	_ "github.com/arog-bioinfo/covmeta/buildinfoprint"
	"github.com/arog-bioinfo/covmeta/metadata"
	"github.com/arog-bioinfo/covmeta/pheno"
	"github.com/arog-bioinfo/covmeta/report"
	"github.com/arog-bioinfo/covmeta/variant"
)

func main() {
	cfg := variant.DefaultConfig()

	var dataDir, resultsDir, phenoDir, target string

	flag.StringVar(&dataDir, "data", cfg.DataDir, "Directory holding the per-variant data folders.")
	flag.StringVar(&resultsDir, "results", cfg.ResultsDir, "Directory for figures and the summary CSV.")
	flag.StringVar(&phenoDir, "pheno", cfg.PhenoDir, "Directory holding the external phenotype tables.")
	flag.StringVar(&target, "target", cfg.TargetColumn, "Phenotype column to summarize.")
	flag.Parse()

	cfg.DataDir = covmeta.ExpandHome(dataDir)
	cfg.ResultsDir = covmeta.ExpandHome(resultsDir)
	cfg.PhenoDir = covmeta.ExpandHome(phenoDir)
	cfg.TargetColumn = target

	if err := os.MkdirAll(cfg.ResultsDir, 0o755); err != nil {
		log.Fatalln(err)
	}

	// Per-variant metadata. Missing files abort here.
	_, summaries, err := metadata.LoadAll(cfg, cfg.MetaPath)
	if err != nil {
		log.Fatalln(err)
	}

	for _, s := range summaries {
		log.Printf("%-20s %8d sequences (%s), %d countries\n", s.DisplayName, s.Sequences, s.Period(), s.Countries)
	}

	// External phenotypes. Absence only skips enrichment.
	phenoRows, fitness, st := loadPhenotypes(cfg)

	rep := report.Build(summaries, phenoRows)

	if err := report.RenderSequenceCounts(summaries, filepath.Join(cfg.ResultsDir, "01_sequences_per_variant.png")); err != nil {
		log.Fatalln(err)
	}
	if err := report.RenderTimeline(summaries, filepath.Join(cfg.ResultsDir, "02_variant_timeline.png")); err != nil {
		log.Fatalln(err)
	}
	if len(fitness) > 0 {
		if err := report.RenderFitnessHistogram(fitness, st, filepath.Join(cfg.ResultsDir, "03_fitness_distribution.png")); err != nil {
			log.Fatalln(err)
		}
	}

	summaryCSV := filepath.Join(cfg.ResultsDir, "data_summary.csv")
	if err := rep.WriteCSV(summaryCSV); err != nil {
		log.Fatalln(err)
	}
	log.Printf("wrote %s\n", summaryCSV)

	rep.Print(os.Stdout)
}

// loadPhenotypes loads the clade phenotype table and describes the target
// column. A missing table is reported and skipped; a present table with a
// missing target column is fatal.
func loadPhenotypes(cfg variant.Config) (rows int, fitness []float64, st pheno.Stats) {
	path := cfg.CladePhenoPath()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		log.Printf("phenotype table not found (%s), skipping enrichment\n", path)
		return 0, nil, pheno.Stats{}
	}

	t, err := pheno.Load(path)
	if err != nil {
		log.Fatalln(err)
	}

	fitness, err = t.Values(cfg.TargetColumn)
	if err != nil {
		log.Fatalln(err)
	}
	st, err = t.Describe(cfg.TargetColumn)
	if err != nil {
		log.Fatalln(err)
	}

	log.Printf("clade phenotypes: %d rows, %q valid values %d/%d, mean %.3f, std %.3f, min %.3f, max %.3f\n",
		t.Len(), cfg.TargetColumn, st.Count, t.Len(), st.Mean, st.Std, st.Min, st.Max)

	return t.Len(), fitness, st
}
