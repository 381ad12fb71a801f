package fastaindex

import (
	"fmt"
	"strings"
	"testing"
)

func TestScan(t *testing.T) {
	archive := ">ABC123.1 Severe acute respiratory syndrome coronavirus 2\n" +
		"ACGTACGT\n" +
		"ACGTACGT\n" +
		">XYZ999.2 Severe acute respiratory syndrome coronavirus 2\n" +
		"ACGT\n"

	ix, err := Scan(strings.NewReader(archive), 10)
	if err != nil {
		t.Fatal(err)
	}

	if ix.Len() != 2 {
		t.Fatalf("got %d identifiers", ix.Len())
	}
	if !ix.Contains("ABC123.1") {
		t.Error("ABC123.1 should be present")
	}
	if !ix.Contains("XYZ999.2") {
		t.Error("XYZ999.2 should be present")
	}
	if ix.Contains("QQQ000.1") {
		t.Error("QQQ000.1 should be absent")
	}
}

func TestScanCaseSensitive(t *testing.T) {
	ix, err := Scan(strings.NewReader(">ABC123.1 desc\nACGT\n"), 10)
	if err != nil {
		t.Fatal(err)
	}

	if ix.Contains("abc123.1") {
		t.Error("membership must be case-sensitive")
	}
}

func TestScanStopsAtCap(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 50; i++ {
		fmt.Fprintf(&sb, ">ACC%04d.1 desc\nACGT\n", i)
	}

	ix, err := Scan(strings.NewReader(sb.String()), 10)
	if err != nil {
		t.Fatal(err)
	}

	if ix.Len() != 10 {
		t.Errorf("got %d identifiers, want the cap of 10", ix.Len())
	}
}

func TestScanIgnoresBlankHeaders(t *testing.T) {
	ix, err := Scan(strings.NewReader(">\n>  \n>ABC123.1\nACGT\n"), 0)
	if err != nil {
		t.Fatal(err)
	}

	if ix.Len() != 1 {
		t.Errorf("got %d identifiers", ix.Len())
	}
}

func TestBuildMissingFile(t *testing.T) {
	if _, err := Build(t.TempDir()+"/genomic.fna", 10); err == nil {
		t.Fatal("expected an error for a missing archive")
	}
}
