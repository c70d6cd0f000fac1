package oldfmt

import "strings"

// Details maps metadata record types to their text, gathered over all
// the continuation lines. An empty value means the record was not in
// the file.
type Details map[Tag]string

// MetadataTags are the records Aggregate knows how to collect, in the
// order people usually want to see them.
var MetadataTags = []Tag{
	TagHeader, TagTitle, TagSource, TagKeywds, TagAuthor, TagResolution, TagJrnlTitle,
}

// textOffset is where the text starts for a metadata record.
func textOffset(t Tag) int {
	if t == TagJrnlTitle {
		return jrnlTextStart
	}
	return textStart
}

// Aggregate collects the text of each wanted record type. Pieces are
// joined as they are, then runs of blanks become one space and the
// result is wrapped at 80 columns. Every wanted tag is a key in the
// result, possibly with an empty value.
func Aggregate(doc Document, wanted []Tag) Details {
	acc := make(map[Tag]*strings.Builder, len(wanted))
	for _, t := range wanted {
		acc[t] = new(strings.Builder)
	}
	for _, line := range doc.lines {
		t := Classify(line)
		b, ok := acc[t]
		if !ok {
			continue
		}
		line = dropPad(line)
		if off := textOffset(t); len(line) > off {
			b.WriteString(line[off:])
		}
	}
	d := make(Details, len(acc))
	for t, b := range acc {
		d[t] = Wrap80(strings.Join(strings.Fields(b.String()), " "))
	}
	return d
}

// dropPad removes the last byte of a line when it is white space. The
// last column of a PDB line is padding or a leftover line terminator.
func dropPad(line string) string {
	if n := len(line); n > 0 {
		switch line[n-1] {
		case ' ', '\t', '\r', '\n':
			return line[:n-1]
		}
	}
	return line
}

// Missing returns the tags which were asked for but not found, in
// MetadataTags order.
func (d Details) Missing() []Tag {
	var out []Tag
	for _, t := range MetadataTags {
		if v, ok := d[t]; ok && v == "" {
			out = append(out, t)
		}
	}
	return out
}
