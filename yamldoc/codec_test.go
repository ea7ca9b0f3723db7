package yamldoc

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const twoDocs = `---
b: 1.000000000000000000001
a: [1, 2, 3]
Atomic structure:
  positions:
  - N: [0.0, 0.0, 0.0107161998748779]
  - N: [0.0, 0.0, 1.10427379608154]
---
WARNINGS:
- The norm of the residue is too large, need to recalculate input wavefunctions
`

func TestLoadAll(Te *testing.T) {
	docs, err := LoadAll(strings.NewReader(twoDocs))
	if err != nil {
		Te.Fatal(err)
	}
	if len(docs) != 2 {
		Te.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if diff := cmp.Diff([]string{"b", "a", "Atomic structure"}, docs[0].Keys()); diff != "" {
		Te.Errorf("key order not kept (-want +got):\n%s", diff)
	}
	if s, _ := String(docs[0].Get("b")); s != "1.000000000000000000001" {
		Te.Errorf("scalar text not kept: %q", s)
	}
	if !docs[1].Has("WARNINGS") || docs[1].Len() != 1 {
		Te.Error("second document not read properly")
	}
}

func TestRoundTrip(Te *testing.T) {
	docs, err := LoadAll(strings.NewReader(twoDocs))
	if err != nil {
		Te.Fatal(err)
	}
	var buf bytes.Buffer
	if err := DumpAll(&buf, docs); err != nil {
		Te.Fatal(err)
	}
	if strings.Count(buf.String(), "---\n") != 2 {
		Te.Errorf("each document should start with a marker:\n%s", buf.String())
	}
	again, err := LoadAll(&buf)
	if err != nil {
		Te.Fatal(err)
	}
	if len(again) != len(docs) {
		Te.Fatalf("expected %d documents, got %d", len(docs), len(again))
	}
	for i := range docs {
		if !docs[i].Equal(again[i]) {
			Te.Errorf("document %d changed in the round trip", i)
		}
	}
}

func TestLoadOne(Te *testing.T) {
	if _, err := Load(strings.NewReader(twoDocs)); err == nil {
		Te.Error("Load should fail on a stream with two documents")
	}
	d, err := Load(strings.NewReader("Energy (Hartree): -19.88466\n"))
	if err != nil {
		Te.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Dump(&buf, d); err != nil {
		Te.Fatal(err)
	}
	if buf.String() != "Energy (Hartree): -19.88466\n" {
		Te.Errorf("unexpected dump %q", buf.String())
	}
	if _, err := LoadAll(strings.NewReader("a: [1, 2\n")); err == nil {
		Te.Error("malformed yaml should give an error")
	}
}

func TestEmptyDocument(Te *testing.T) {
	docs, err := LoadAll(strings.NewReader("---\n---\na: 1\n"))
	if err != nil {
		Te.Fatal(err)
	}
	if len(docs) != 2 {
		Te.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if !docs[0].Empty() || docs[0].Len() != 0 || docs[0].Get("a") != nil {
		Te.Error("first document should be empty")
	}
	if docs[1].Empty() {
		Te.Error("second document should not be empty")
	}
}

func TestCompressedFiles(Te *testing.T) {
	docs, err := LoadAll(strings.NewReader(twoDocs))
	if err != nil {
		Te.Fatal(err)
	}
	dir := Te.TempDir()
	for _, name := range []string{"log.yaml", "log.yaml.gz", "log.yaml.zst"} {
		name = filepath.Join(dir, name)
		if err := DumpFile(name, docs...); err != nil {
			Te.Fatal(err)
		}
		again, err := LoadFile(name)
		if err != nil {
			Te.Fatal(err)
		}
		if len(again) != 2 || !again[0].Equal(docs[0]) || !again[1].Equal(docs[1]) {
			Te.Errorf("%s: documents changed when written and read back", name)
		}
	}
	if _, err := LoadFile(filepath.Join(dir, "nothere.yaml")); err == nil {
		Te.Error("expected an error for a missing file")
	}
}

func TestFormat(Te *testing.T) {
	for name, want := range map[string]string{
		"log.yaml":     Plain,
		"log.yaml.GZ":  Gzip,
		"log.yaml.zst": Zstd,
		"log.zstd":     Zstd,
	} {
		if got := Format(name); got != want {
			Te.Errorf("Format(%q) = %q, want %q", name, got, want)
		}
	}
}
