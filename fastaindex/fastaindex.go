// Package fastaindex builds a bounded membership set of accession
// identifiers from a FASTA-style sequence archive. The index is a
// point-in-time spot-check structure, rebuilt per invocation and never
// persisted; it must not be presented as an exhaustive archive validation.
package fastaindex

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/carbocation/pfx"
)

// Index is a set of accession identifiers taken from archive header lines.
type Index map[string]struct{}

// Build scans the archive at path, collecting up to n distinct identifiers.
// n <= 0 means unbounded.
func Build(path string, n int) (Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	return Scan(f, n)
}

// Scan reads FASTA-style text from r. A line beginning with '>' starts a new
// sequence record; the identifier is the first whitespace-delimited token of
// the trimmed header with the marker stripped. Non-header lines are ignored.
// Scanning stops once n distinct identifiers have been collected.
func Scan(r io.Reader, n int) (Index, error) {
	ix := make(Index)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, ">") {
			continue
		}

		header := strings.TrimSpace(line[1:])
		fields := strings.Fields(header)
		if len(fields) == 0 {
			continue
		}
		ix[fields[0]] = struct{}{}

		if n > 0 && len(ix) >= n {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	return ix, nil
}

// Contains reports whether acc is in the index. Matching is case-sensitive
// exact string equality.
func (ix Index) Contains(acc string) bool {
	_, ok := ix[acc]
	return ok
}

// Len is the number of distinct identifiers collected.
func (ix Index) Len() int {
	return len(ix)
}
