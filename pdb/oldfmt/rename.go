package oldfmt

import "fmt"

// RenameChain returns a new Document where every ATOM and HETATM line
// of chain from is moved to chain to. All other lines and all other
// columns are copied unchanged. If no line carries from, the error wraps
// ErrChainNotFound and the original document comes back.
func RenameChain(doc Document, from, to ChainID) (Document, error) {
	if !HasChain(doc, from) {
		return doc, fmt.Errorf("%w: %c", ErrChainNotFound, from)
	}
	out := make([]string, len(doc.lines))
	for i, line := range doc.lines {
		out[i] = line
		if !Classify(line).residueBearing() {
			continue
		}
		if c, err := Chain(line); err != nil || c != byte(from) {
			continue
		}
		l, err := WithChainID(line, to)
		if err != nil { // cannot happen, Chain() worked
			return doc, atLine(err, i)
		}
		out[i] = l
	}
	return Document{lines: out}, nil
}
