// phenocols peeks at the external phenotype exports: it prints each table's
// leading column names and row count, which is usually all that is needed to
// confirm a fresh drop of the predictor results is shaped as expected.
package main

import (
	"flag"
	"log"
	"strings"

	"github.com/arog-bioinfo/covmeta"
	_ "github.com/arog-bioinfo/covmeta/buildinfoprint"
	"github.com/arog-bioinfo/covmeta/pheno"
	"github.com/arog-bioinfo/covmeta/variant"
)

func main() {
	cfg := variant.DefaultConfig()

	var phenoDir string
	flag.StringVar(&phenoDir, "pheno", cfg.PhenoDir, "Directory holding the external phenotype tables.")
	flag.Parse()

	cfg.PhenoDir = covmeta.ExpandHome(phenoDir)

	clade := peek("clade phenotypes", cfg.CladePhenoPath())
	mutation := peek("mutation phenotypes", cfg.MutationPhenoPath())

	log.Printf("clade rows: %d, mutation rows: %d\n", clade, mutation)
}

func peek(name, path string) int {
	t, err := pheno.Load(path)
	if err != nil {
		log.Fatalln(err)
	}

	cols := t.Columns
	if len(cols) > 10 {
		cols = cols[:10]
	}
	log.Printf("%s columns: %s\n", name, strings.Join(cols, ", "))

	return t.Len()
}
