package oldfmt

// A Document is the lines of a PDB file in the order they were read.
// The order matters. It tells us which atoms belong together and which
// lines continue a record. Once made, a Document is never changed.
type Document struct {
	lines []string
}

// NewDocument makes a Document from a copy of lines.
func NewDocument(lines []string) Document {
	l := make([]string, len(lines))
	copy(l, lines)
	return Document{lines: l}
}

// Len is the number of lines.
func (d Document) Len() int { return len(d.lines) }

// Line returns line i.
func (d Document) Line(i int) string { return d.lines[i] }

// Lines returns a copy of all the lines.
func (d Document) Lines() []string {
	l := make([]string, len(d.lines))
	copy(l, d.lines)
	return l
}

// Empty is true if nothing has been read.
func (d Document) Empty() bool { return len(d.lines) == 0 }

// Equal says if two documents have the same lines.
func (d Document) Equal(e Document) bool {
	if len(d.lines) != len(e.lines) {
		return false
	}
	for i := range d.lines {
		if d.lines[i] != e.lines[i] {
			return false
		}
	}
	return true
}

// A RecordFilter picks residue lines by record type.
type RecordFilter byte

const (
	AtomAndHetatm RecordFilter = iota
	AtomOnly
	HetatmOnly
)

// FilterFor maps what a user typed to a filter. "ATOM" and "HETATM"
// pick one record type, anything else means both.
func FilterFor(s string) RecordFilter {
	switch s {
	case "ATOM":
		return AtomOnly
	case "HETATM":
		return HetatmOnly
	}
	return AtomAndHetatm
}

func (f RecordFilter) accepts(t Tag) bool {
	switch f {
	case AtomOnly:
		return t == TagAtom
	case HetatmOnly:
		return t == TagHetatm
	}
	return t.residueBearing()
}

// Select returns the residue lines of chain id allowed by filter, in
// document order. Lines too short to have a chain column are skipped.
func (d Document) Select(filter RecordFilter, id ChainID) []string {
	var out []string
	for _, line := range d.lines {
		if !filter.accepts(Classify(line)) {
			continue
		}
		if c, err := Chain(line); err == nil && c == byte(id) {
			out = append(out, line)
		}
	}
	return out
}
