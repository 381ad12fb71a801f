package metadata

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/carbocation/pfx"
)

// Normalize reads the raw tab-separated export at tsvPath and writes a
// comma-separated artifact to csvPath with standardized column names,
// keeping only rows that carry an isolate collection date. Row and column
// order are otherwise preserved, so reruns on the same input are
// byte-identical. Any existing file at csvPath is overwritten.
//
// The export must contain a column that standardizes to
// isolate_collection_date; its absence is fatal.
func Normalize(tsvPath, csvPath string) (kept, dropped int, err error) {
	in, err := os.Open(tsvPath)
	if err != nil {
		return 0, 0, pfx.Err(err)
	}
	defer in.Close()

	r := csv.NewReader(bufio.NewReader(in))
	r.Comma = '\t'
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return 0, 0, pfx.Err(fmt.Errorf("%s: header: %v", tsvPath, err))
	}

	dateCol := -1
	for i, col := range header {
		header[i] = StandardizeColumn(col)
		if header[i] == DateColumn {
			dateCol = i
		}
	}
	if dateCol < 0 {
		return 0, 0, fmt.Errorf("%s: %w: %s", tsvPath, ErrMissingColumn, DateColumn)
	}

	out, err := os.Create(csvPath)
	if err != nil {
		return 0, 0, pfx.Err(err)
	}
	defer out.Close()

	bw := bufio.NewWriter(out)
	w := csv.NewWriter(bw)
	if err := w.Write(header); err != nil {
		return 0, 0, pfx.Err(err)
	}

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return kept, dropped, pfx.Err(fmt.Errorf("%s: %v", tsvPath, err))
		}

		if strings.TrimSpace(row[dateCol]) == "" {
			dropped++
			continue
		}
		if err := w.Write(row); err != nil {
			return kept, dropped, pfx.Err(err)
		}
		kept++
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return kept, dropped, pfx.Err(err)
	}
	if err := bw.Flush(); err != nil {
		return kept, dropped, pfx.Err(err)
	}

	return kept, dropped, nil
}
