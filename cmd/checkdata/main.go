// checkdata loads every variant's cleaned metadata, reports basic per-variant
// aggregates, and spot-checks one metadata accession per variant against a
// bounded sample of its sequence archive. The accession check is a sanity
// check on file pairing, not a full cross-reference: it samples at most -cap
// archive identifiers and tests a single accession.
package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"github.com/arog-bioinfo/covmeta"
	_ "github.com/arog-bioinfo/covmeta/buildinfoprint"
	"github.com/arog-bioinfo/covmeta/fastaindex"
	"github.com/arog-bioinfo/covmeta/metadata"
	"github.com/arog-bioinfo/covmeta/variant"
)

func main() {
	var dataDir string
	var sampleCap int

	flag.StringVar(&dataDir, "data", "data", "Directory holding the per-variant data folders.")
	flag.IntVar(&sampleCap, "cap", variant.DefaultSampleCap, "Maximum distinct archive accessions to sample per variant.")
	flag.Parse()

	cfg := variant.DefaultConfig()
	cfg.DataDir = covmeta.ExpandHome(dataDir)
	cfg.SampleCap = sampleCap

	tables, summaries, err := metadata.LoadAll(cfg, cfg.CleanPath)
	if err != nil {
		log.Fatalln(err)
	}

	for _, s := range summaries {
		log.Printf("%s rows: %d\n", s.Key, s.Sequences)
		log.Printf("%s collection date range: %s\n", s.Key, s.Period())
		log.Printf("%s example locations: %s\n", s.Key, strings.Join(s.ExampleLocations, "; "))
	}

	for _, d := range cfg.Variants {
		ix, err := fastaindex.Build(cfg.FastaPath(d), cfg.SampleCap)
		if err != nil {
			log.Fatalln(err)
		}

		acc, err := tables[d.Key].FirstAccession()
		if errors.Is(err, metadata.ErrEmptyTable) {
			// Fatal for this variant's reconciliation only.
			log.Printf("%s: %v, skipping accession check\n", d.Key, err)
			continue
		} else if err != nil {
			log.Fatalln(err)
		}

		// A mismatch is informational: the sample is bounded, so absence
		// does not prove the archive and metadata disagree.
		log.Printf("%s sampled accession %s: in archive sample of %d? %v\n",
			d.Key, acc, ix.Len(), ix.Contains(acc))
	}
}
