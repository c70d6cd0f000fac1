package oldfmt

import "strings"

// A Tag says what kind of record a line holds.
type Tag byte

const (
	TagOther Tag = iota
	TagAtom
	TagHetatm
	TagHeader
	TagTitle
	TagSource
	TagKeywds
	TagAuthor
	TagResolution // REMARK   2 RESOLUTION.
	TagJrnlTitle  // JRNL        TITL
)

// prefixes is searched in order and the first match wins.
var prefixes = []struct {
	s   string
	tag Tag
}{
	{"ATOM", TagAtom},
	{"HETATM", TagHetatm},
	{"HEADER", TagHeader},
	{"TITLE", TagTitle},
	{"SOURCE", TagSource},
	{"KEYWDS", TagKeywds},
	{"AUTHOR", TagAuthor},
	{"REMARK   2 RESOLUTION.", TagResolution},
	{"JRNL        TITL", TagJrnlTitle},
}

// Classify looks at the start of a line and says what record it is.
// Lines of any length are fine. Anything we do not know is TagOther.
func Classify(line string) Tag {
	for _, p := range prefixes {
		if strings.HasPrefix(line, p.s) {
			return p.tag
		}
	}
	return TagOther
}

var tagNames = [...]string{
	TagOther:      "OTHER",
	TagAtom:       "ATOM",
	TagHetatm:     "HETATM",
	TagHeader:     "HEADER",
	TagTitle:      "TITLE",
	TagSource:     "SOURCE",
	TagKeywds:     "KEYWDS",
	TagAuthor:     "AUTHOR",
	TagResolution: "RESOLUTION",
	TagJrnlTitle:  "JOURNAL TITLE",
}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return "OTHER"
}

// residueBearing is true for the two records with residue columns.
func (t Tag) residueBearing() bool { return t == TagAtom || t == TagHetatm }
