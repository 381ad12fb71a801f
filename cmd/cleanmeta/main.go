// cleanmeta normalizes raw tab-separated NCBI metadata exports into
// comma-separated artifacts: column names become snake_case and rows without
// an isolate collection date are dropped. Run it on a single file with
// -in/-out, or on every variant in the standard layout with -all.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/arog-bioinfo/covmeta"
	_ "github.com/arog-bioinfo/covmeta/buildinfoprint"
	"github.com/arog-bioinfo/covmeta/metadata"
	"github.com/arog-bioinfo/covmeta/variant"
)

func main() {
	var in, out, dataDir string
	var all bool

	flag.StringVar(&in, "in", "", "Path to a raw tab-separated metadata export.")
	flag.StringVar(&out, "out", "", "Path for the cleaned comma-separated output.")
	flag.BoolVar(&all, "all", false, "Clean every variant in the standard data layout instead of one file.")
	flag.StringVar(&dataDir, "data", "data", "Data directory for -all.")
	flag.Parse()

	if all {
		cfg := variant.DefaultConfig()
		cfg.DataDir = covmeta.ExpandHome(dataDir)

		for _, d := range cfg.Variants {
			clean(cfg.MetaPath(d), cfg.CleanPath(d))
		}
		return
	}

	if in == "" || out == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	clean(covmeta.ExpandHome(in), covmeta.ExpandHome(out))
}

func clean(in, out string) {
	kept, dropped, err := metadata.Normalize(in, out)
	if err != nil {
		log.Fatalln(err)
	}

	log.Printf("%s: kept %d rows, dropped %d without a collection date -> %s\n", in, kept, dropped, out)
}
