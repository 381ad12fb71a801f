package variant

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfigPaths(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.Variants) != 6 {
		t.Fatalf("got %d variants", len(cfg.Variants))
	}
	if cfg.SampleCap != DefaultSampleCap {
		t.Errorf("sample cap: got %d", cfg.SampleCap)
	}

	b1 := cfg.Variants[0]
	if got := cfg.MetaPath(b1); got != filepath.Join("data", "b1", "b1_meta.tsv") {
		t.Errorf("meta path: got %q", got)
	}
	if got := cfg.FastaPath(b1); got != filepath.Join("data", "b1", "ncbi_dataset", "data", "genomic.fna") {
		t.Errorf("fasta path: got %q", got)
	}
}

func TestOmicronCleanStem(t *testing.T) {
	cfg := DefaultConfig()

	for _, d := range cfg.Variants {
		if d.Key != "omicron_ba1" {
			continue
		}
		// Historical stem: the cleaned file is not named after the key.
		if got := cfg.CleanPath(d); got != filepath.Join("data", "omicron_ba1", "omicron_meta_clean.csv") {
			t.Errorf("clean path: got %q", got)
		}
		return
	}

	t.Fatal("omicron_ba1 not in the default mapping")
}
