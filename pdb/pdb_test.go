package pdb_test

import (
	"bytes"
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/andrew-torda/pdbtools/pdb"
	"github.com/andrew-torda/pdbtools/pkg/common"
)

var somePdb = `HEADER    PLANT PROTEIN                           30-APR-81   1CRN
TITLE     WATER STRUCTURE OF A HYDROPHOBIC PROTEIN AT ATOMIC RESOLUTION
ATOM      1  N   THR A   1      17.047  14.099   3.625  1.00 13.79           N
ATOM      2  CA  THR A   1      16.967  12.784   4.338  1.00 10.80           C
ATOM      3  CA  THR A   2      13.286  12.484   5.238  1.00  9.18           C
END
`

var someCif = `data_1CRN
#
_entry.id   1CRN
loop_
_atom_site.group_PDB
`

func gz(s string) []byte {
	var b bytes.Buffer
	w := gzip.NewWriter(&b)
	w.Write([]byte(s))
	w.Close()
	return b.Bytes()
}

// TestBrokenFile checks if we get sensible error messages when we open
// something that is not a PDB file.
func TestBrokenFile(t *testing.T) {
	cif := filepath.Join(t.TempDir(), "x.cif")
	os.WriteFile(cif, []byte(someCif), 0644)
	testfiles := []string{
		"/does/not/exist",
		t.TempDir(),
		cif,
	}
	for _, s := range testfiles {
		if _, err := ReadFile(s); err == nil {
			t.Error("Did not get expected error on", s)
		}
	}
}

func TestReadFile(t *testing.T) {
	fname, err := common.WrtTemp(somePdb)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	doc, err := ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Len() != 6 || !strings.HasPrefix(doc.Line(4), "ATOM      3  CA  THR A   2") {
		t.Error("got", doc.Lines())
	}
}

func TestReadFileGz(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "1crn.pdb.gz")
	if err := os.WriteFile(fname, gz(somePdb), 0644); err != nil {
		t.Fatal(err)
	}
	doc, err := ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Len() != 6 {
		t.Error("wanted 6 lines, got", doc.Len())
	}
}

func TestReadFileEmpty(t *testing.T) {
	fname, _ := common.WrtTemp("")
	defer os.Remove(fname)
	doc, err := ReadFile(fname)
	if err != nil || !doc.Empty() {
		t.Error("empty file gave", doc.Lines(), err)
	}
}

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(strings.ReplaceAll(somePdb, "\n", "\r\n")))
	if err != nil {
		t.Fatal(err)
	}
	if strings.HasSuffix(doc.Line(0), "\r") {
		t.Error("carriage return kept")
	}
	if _, err := Parse(gz(someCif)); !errors.Is(err, ErrMmcif) {
		t.Error("gzipped mmcif gave", err)
	}
}

var fnameTypes = []struct {
	fname string
	ftype Format
}{
	{"boo.mmcif", MmcifFmt},
	{"boo.mmcif.gz", MmcifFmt},
	{"boo.cif", MmcifFmt},
	{"a/b/c.ent", OldFmt},
	{"a/b.ent.gz", OldFmt},
	{"a.pdb", OldFmt},
	{"a.pdb.gz", OldFmt},
	{"1HIV", UnkFmt},
	{"notes.txt", UnkFmt},
}

func TestFormatFromName(t *testing.T) {
	for _, f := range fnameTypes {
		if r := FormatFromName(f.fname); r != f.ftype {
			t.Error("in", t.Name(), "working on ", f.fname, "got", r)
		}
	}
}

func TestSniff(t *testing.T) {
	if Sniff([]byte(somePdb)) != OldFmt || Sniff([]byte(someCif)) != MmcifFmt || Sniff([]byte("hello\nthere")) != UnkFmt {
		t.Error("Sniff")
	}
}

func TestWriteFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "out.pdb")
	lines := []string{"HEADER    X", "END"}
	if err := WriteFile(fname, lines); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(fname)
	if string(b) != "HEADER    X\nEND\n" {
		t.Errorf("got %q", b)
	}
}

func TestLogWhere(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "log")
	lg, err := LogWhere(fname)
	if err != nil {
		t.Fatal(err)
	}
	lg.Println("hello")
	if b, _ := os.ReadFile(fname); !strings.Contains(string(b), "pdb_test.go") {
		t.Errorf("log file has %q", b)
	}
	if _, err := LogWhere(""); err != nil {
		t.Error(err)
	}
}
