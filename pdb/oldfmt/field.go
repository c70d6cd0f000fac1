package oldfmt

import (
	"strconv"
	"strings"
)

// The accessors below are for ATOM and HETATM lines. They do not check
// the record type, only that the line is long enough. Text fields come
// back as they are in the file, numbers are parsed after trimming
// blanks.

// cut returns the span or a ShortLineError.
func cut(line string, s Span, field string) (string, error) {
	if !s.fits(line) {
		return "", &ShortLineError{Line: -1, Field: field, Need: s.End, Have: len(line)}
	}
	return s.get(line), nil
}

// RecordName is the first six columns, blanks removed.
func RecordName(line string) (string, error) {
	s, err := cut(line, ColRecord, "record name")
	return strings.TrimSpace(s), err
}

// AtomName returns the four atom name columns untrimmed, since the
// position within the field matters.
func AtomName(line string) (string, error) {
	return cut(line, ColAtomName, "atom name")
}

// IsCAlpha says if the line is an alpha carbon. Short lines are not.
func IsCAlpha(line string) bool {
	return ColAtomName.fits(line) && ColAtomName.get(line) == caMarker
}

// ResName is the three letter residue code.
func ResName(line string) (string, error) {
	return cut(line, ColResName, "residue name")
}

// Chain returns the byte in the chain column.
func Chain(line string) (byte, error) {
	s, err := cut(line, ColChain, "chain id")
	if err != nil {
		return 0, err
	}
	return s[0], nil
}

func atoi(line string, s Span, field string) (int, error) {
	txt, err := cut(line, s, field)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(txt))
	if err != nil {
		return 0, &FieldError{Line: -1, Field: field, Text: txt, Err: err}
	}
	return n, nil
}

// Serial is the atom serial number.
func Serial(line string) (int, error) { return atoi(line, ColSerial, "atom serial") }

// ResSeq is the residue sequence number.
func ResSeq(line string) (int, error) { return atoi(line, ColResSeq, "residue number") }

// TempFactor is the temperature (B) factor.
func TempFactor(line string) (float64, error) {
	const field = "temperature factor"
	txt, err := cut(line, ColTempFactor, field)
	if err != nil {
		return 0, err
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(txt), 64)
	if err != nil {
		return 0, &FieldError{Line: -1, Field: field, Text: txt, Err: err}
	}
	return x, nil
}

// WithChainID returns line with the chain column set to id. Nothing
// else changes and the length stays the same.
func WithChainID(line string, id ChainID) (string, error) {
	if !ColChain.fits(line) {
		return line, &ShortLineError{Line: -1, Field: "chain id", Need: ColChain.End, Have: len(line)}
	}
	b := []byte(line)
	b[ColChain.Start] = byte(id)
	return string(b), nil
}
