package pdbtools

import (
	"slices"
	"testing"

	"github.com/andrew-torda/pdbtools/pdb/oldfmt"
)

func TestValidators(t *testing.T) {
	for _, c := range []struct {
		f    func(string) bool
		name string
		s    string
		want bool
	}{
		{ValidDimension, "dimension", "2.5", true},
		{ValidDimension, "dimension", "80", true},
		{ValidDimension, "dimension", "80.5", false},
		{ValidDimension, "dimension", "100000", false},
		{ValidDimension, "dimension", "NaN", false},
		{ValidDimension, "dimension", "0", false},
		{ValidDimension, "dimension", "-1", false},
		{ValidDimension, "dimension", "Inf", false},
		{ValidDimension, "dimension", "six", false},
		{ValidFilename, "filename", "1HIV_A", true},
		{ValidFilename, "filename", "two words", true},
		{ValidFilename, "filename", "", false},
		{ValidFilename, "filename", " lead", false},
		{ValidFilename, "filename", "trail ", false},
		{ValidFilename, "filename", "dir/file", false},
		{ValidFilename, "filename", "..", false},
	} {
		if got := c.f(c.s); got != c.want {
			t.Errorf("%s %q got %v", c.name, c.s, got)
		}
	}
}

func TestChainMessage(t *testing.T) {
	seen := make(map[string]bool)
	for _, a := range []string{"", "AB", "7"} {
		_, err := oldfmt.ParseChainID(a)
		if err == nil {
			t.Fatalf("%q was accepted", a)
		}
		m := chainMessage(a, err)
		if seen[m] {
			t.Errorf("%q gave the same message as another bad ID: %s", a, m)
		}
		seen[m] = true
	}
}

func TestWithExt(t *testing.T) {
	for _, c := range [][3]string{
		{"plot", ".png", "plot.png"},
		{"plot.jpg", ".png", "plot.jpg"},
		{"1HIV", ".pdb", "1HIV.pdb"},
	} {
		if got := withExt(c[0], c[1]); got != c[2] {
			t.Errorf("withExt(%q, %q) = %q", c[0], c[1], got)
		}
	}
}

func TestParseDetails(t *testing.T) {
	tags, bad, quit := parseDetails("7,1, 1 ,x,")
	want := []oldfmt.Tag{oldfmt.TagJrnlTitle, oldfmt.TagHeader}
	if !slices.Equal(tags, want) || quit {
		t.Errorf("got %v %v", tags, quit)
	}
	if !slices.Equal(bad, []string{"x", ""}) {
		t.Errorf("bad options %q", bad)
	}
	if _, _, quit := parseDetails("2,Q"); !quit {
		t.Error("Q did not quit")
	}
}
