package pdbtools

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/andrew-torda/pdbtools/pdb/oldfmt"
	"github.com/andrew-torda/pdbtools/pkg/tfplot"
)

// chainMessage says what is wrong with a chain ID the user typed.
// Each way of being wrong gets its own words.
func chainMessage(s string, err error) string {
	switch {
	case errors.Is(err, oldfmt.ErrEmptyID):
		return "You did not give a chain ID."
	case errors.Is(err, oldfmt.ErrMultiCharID):
		return fmt.Sprintf("%q is too long. A chain ID is one character.", s)
	case errors.Is(err, oldfmt.ErrNumericID):
		return fmt.Sprintf("%q is a digit. Chain IDs may not be numbers.", s)
	}
	return fmt.Sprintf("%q is not valid here.", s)
}

// ValidDimension says if s is a number of inches we can plot. The
// upper limit is what tfplot will draw at its default resolution.
func ValidDimension(s string) bool {
	x, err := strconv.ParseFloat(s, 64)
	return err == nil && x > 0 && x <= tfplot.MaxInches
}

// ValidFilename accepts a plain name in the current directory.
func ValidFilename(s string) bool {
	if s == "" || s != strings.TrimSpace(s) {
		return false
	}
	if strings.ContainsRune(s, '/') || strings.ContainsRune(s, filepath.Separator) {
		return false
	}
	return s != "." && s != ".."
}

// withExt adds ext to fname if it does not have an extension already.
func withExt(fname, ext string) string {
	if filepath.Ext(fname) == "" {
		return fname + ext
	}
	return fname
}
