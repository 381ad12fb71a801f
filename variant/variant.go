// Package variant holds the static configuration that partitions all inputs:
// which SARS-CoV-2 variants are in play and where their files live on disk.
// Changing the variant set means editing the mapping returned by
// DefaultConfig (or passing your own); there is no dynamic discovery.
package variant

import "path/filepath"

// DefaultSampleCap bounds the number of distinct FASTA accessions collected
// per variant during reconciliation. It is a sanity-check budget, not an
// exhaustive cross-reference.
const DefaultSampleCap = 10000

// DefaultTargetColumn is the phenotype column summarized by default.
const DefaultTargetColumn = "clade growth"

// Dataset identifies one viral variant and the stems used to locate its
// files under the data directory.
type Dataset struct {
	// Key is the short code, which doubles as the per-variant directory name.
	Key string

	// DisplayName is the human-facing lineage name (e.g. "Omicron BA.1").
	DisplayName string

	// CleanStem is the filename stem of the cleaned metadata CSV. Usually
	// Key + "_meta_clean", but not always (omicron_ba1 keeps the historical
	// "omicron_meta_clean" stem).
	CleanStem string
}

// Config is the full configuration surface for one pipeline run. All paths
// and caps are injectable; DefaultConfig matches the repository's layout.
type Config struct {
	DataDir      string
	ResultsDir   string
	PhenoDir     string
	SampleCap    int
	TargetColumn string

	// Variants are processed strictly in slice order.
	Variants []Dataset
}

// DefaultConfig returns the six-variant mapping and directory layout the
// analysis scripts were written against.
func DefaultConfig() Config {
	return Config{
		DataDir:      "data",
		ResultsDir:   filepath.Join("results", "figures"),
		PhenoDir:     filepath.Join("external", "SARS2-spike-predictor-phenos", "results"),
		SampleCap:    DefaultSampleCap,
		TargetColumn: DefaultTargetColumn,
		Variants: []Dataset{
			{Key: "b1", DisplayName: "B.1", CleanStem: "b1_meta_clean"},
			{Key: "beta", DisplayName: "Beta", CleanStem: "beta_meta_clean"},
			{Key: "delta", DisplayName: "Delta", CleanStem: "delta_meta_clean"},
			{Key: "omicron_ba1", DisplayName: "Omicron BA.1", CleanStem: "omicron_meta_clean"},
			{Key: "ba2", DisplayName: "BA.2", CleanStem: "ba2_meta_clean"},
			{Key: "xbb15", DisplayName: "XBB.1.5", CleanStem: "xbb15_meta_clean"},
		},
	}
}

// MetaPath is the raw tab-separated NCBI metadata export for a variant.
func (c Config) MetaPath(d Dataset) string {
	return filepath.Join(c.DataDir, d.Key, d.Key+"_meta.tsv")
}

// CleanPath is the normalized comma-separated metadata artifact for a variant.
func (c Config) CleanPath(d Dataset) string {
	return filepath.Join(c.DataDir, d.Key, d.CleanStem+".csv")
}

// FastaPath is the variant's sequence archive as laid out by NCBI Datasets.
func (c Config) FastaPath(d Dataset) string {
	return filepath.Join(c.DataDir, d.Key, "ncbi_dataset", "data", "genomic.fna")
}

// CladePhenoPath is the external clade phenotype table.
func (c Config) CladePhenoPath() string {
	return filepath.Join(c.PhenoDir, "clade_phenotypes.csv")
}

// MutationPhenoPath is the external mutation phenotype table.
func (c Config) MutationPhenoPath() string {
	return filepath.Join(c.PhenoDir, "mutation_phenotypes.csv")
}
