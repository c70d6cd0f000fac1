package oldfmt

// A Span is a half-open byte range [Start, End) of a line.
// Column numbers in the PDB documentation start from 1, so columns
// 18-20 are Span{17, 20}.
type Span struct {
	Start, End int
}

// get cuts the span out of line. The caller has checked the length.
func (s Span) get(line string) string { return line[s.Start:s.End] }

// fits says if line is long enough to hold the whole span.
func (s Span) fits(line string) bool { return len(line) >= s.End }

// Columns of ATOM and HETATM records.
var (
	ColRecord     = Span{0, 6}   // record name
	ColSerial     = Span{6, 11}  // atom serial number
	ColAtomName   = Span{12, 16} // atom name, " CA " for an alpha carbon
	ColResName    = Span{17, 20} // three letter residue name
	ColChain      = Span{21, 22} // chain identifier
	ColResSeq     = Span{22, 26} // residue sequence number
	ColTempFactor = Span{60, 66} // temperature factor
)

// Where the text of the metadata records starts. Continuation numbers
// sit in front of these.
const (
	textStart = 10 // HEADER, TITLE, SOURCE, KEYWDS, AUTHOR, REMARK
	// TODO(at): move to column 20 once the journal fixtures are regenerated.
	// Starting at 17 keeps the low digit of the continuation number.
	jrnlTextStart = 17
)

// caMarker is what an alpha carbon has in ColAtomName. A calcium ion
// is "CA  ", so we compare all four bytes.
const caMarker = " CA "
