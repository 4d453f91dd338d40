package sequence

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseFASTA(t *testing.T) {
	input := `>sp|P1|first protein
ARND
CEQG

; comment
>second
arnd ceqg
`
	got, err := ParseFASTA(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseFASTA: %v", err)
	}
	want := []Record{
		{Header: "sp|P1|first protein", Sequence: "ARNDCEQG"},
		{Header: "second", Sequence: "arndceqg"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseFASTA mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFASTADataBeforeHeader(t *testing.T) {
	if _, err := ParseFASTA(strings.NewReader("ARND\n>x\nARND\n")); err == nil {
		t.Fatal("expected error for sequence data before header")
	}
}

func TestLoadPair(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pair.fasta")
	if err := os.WriteFile(path, []byte(">a\nARND\n>b\nARNE\n>c\nAAAA\n"), 0644); err != nil {
		t.Fatal(err)
	}

	first, second, err := LoadPair(path)
	if err != nil {
		t.Fatalf("LoadPair: %v", err)
	}
	if first != "ARND" || second != "ARNE" {
		t.Errorf("LoadPair = (%q, %q), want (%q, %q)", first, second, "ARND", "ARNE")
	}
}

func TestLoadPairTooFewRecords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "one.fasta")
	if err := os.WriteFile(path, []byte(">a\nARND\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadPair(path); err == nil {
		t.Fatal("expected error for single record")
	}
}
