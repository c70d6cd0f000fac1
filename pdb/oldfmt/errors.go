package oldfmt

import (
	"errors"
	"fmt"
)

// Two broad kinds of failure. Input that is badly formed is ErrSyntax.
// Input that is fine, but refers to something not in the file, is
// ErrNotFound. Use errors.Is to check for either.
var (
	ErrSyntax   = errors.New("syntax error")
	ErrNotFound = errors.New("not found")
)

// Chain identifiers can be wrong in three ways and the caller may want
// to say which.
var (
	ErrEmptyID     = fmt.Errorf("%w: chain id is empty", ErrSyntax)
	ErrMultiCharID = fmt.Errorf("%w: chain id must be one character", ErrSyntax)
	ErrNumericID   = fmt.Errorf("%w: chain id may not be a number", ErrSyntax)
)

var (
	ErrChainNotFound  = fmt.Errorf("%w: chain", ErrNotFound)
	ErrUnknownResidue = fmt.Errorf("%w: residue not in the standard table", ErrNotFound)
)

// A ShortLineError is returned when an ATOM or HETATM line ends before
// the column we want. It is neither ErrSyntax nor ErrNotFound.
type ShortLineError struct {
	Line  int    // index in the document, or -1 if we do not know
	Field string // name of the column we wanted
	Need  int    // bytes needed
	Have  int    // bytes in the line
}

func (e *ShortLineError) Error() string {
	if e.Line < 0 {
		return fmt.Sprintf("line too short for %s: need %d bytes, have %d",
			e.Field, e.Need, e.Have)
	}
	return fmt.Sprintf("line %d too short for %s: need %d bytes, have %d",
		e.Line+1, e.Field, e.Need, e.Have)
}

// A FieldError is a numeric column which we could not parse.
type FieldError struct {
	Line  int
	Field string
	Text  string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Line < 0 {
		return fmt.Sprintf("bad %s %q: %v", e.Field, e.Text, e.Err)
	}
	return fmt.Sprintf("line %d: bad %s %q: %v", e.Line+1, e.Field, e.Text, e.Err)
}

func (e *FieldError) Unwrap() []error { return []error{ErrSyntax, e.Err} }

// atLine fills in the line number of errors coming back from the
// single line accessors.
func atLine(err error, i int) error {
	var sl *ShortLineError
	if errors.As(err, &sl) {
		sl.Line = i
		return err
	}
	var fe *FieldError
	if errors.As(err, &fe) {
		fe.Line = i
	}
	return err
}
