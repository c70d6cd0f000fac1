package common_test

import (
	"os"
	"testing"

	. "github.com/andrew-torda/pdbtools/pkg/common"
)

func TestIsQuit(t *testing.T) {
	var cases = []struct {
		s     string
		words []string
		quit  bool
	}{
		{"q", QuitWords, true},
		{"quit", QuitWords, true},
		{"Q", ChainQuitWords, false},
		{"quit", ChainQuitWords, true},
		{"", QuitWords, false},
	}
	for _, c := range cases {
		if IsQuit(c.s, c.words) != c.quit {
			t.Errorf("IsQuit(%q, %v) wrong", c.s, c.words)
		}
	}
}

func TestWrtTemp(t *testing.T) {
	fname, err := WrtTemp("hello")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	if b, _ := os.ReadFile(fname); string(b) != "hello" {
		t.Errorf("got %q", b)
	}
}
