package oldfmt

import "strings"

// LineWidth is the width of PDB files and of everything we print.
const LineWidth = 80

// Wrap breaks s into lines of width bytes, joined by newlines. It does
// not look for word boundaries. If width <= 0, s comes back unchanged.
func Wrap(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/width)
	for len(s) > width {
		b.WriteString(s[:width])
		b.WriteByte('\n')
		s = s[width:]
	}
	b.WriteString(s)
	return b.String()
}

// Wrap80 is Wrap at LineWidth. Metadata and sequences both go through
// here so they break in the same places.
func Wrap80(s string) string { return Wrap(s, LineWidth) }
