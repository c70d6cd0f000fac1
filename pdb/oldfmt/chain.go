package oldfmt

import "strings"

// A ChainID is the one character chain identifier. Make them with
// ParseChainID when they come from a user.
type ChainID byte

func (c ChainID) String() string { return string(rune(c)) }

// ParseChainID checks what a user typed. It must be exactly one
// character and not a digit. Each way of failing has its own error.
func ParseChainID(s string) (ChainID, error) {
	switch {
	case s == "":
		return 0, ErrEmptyID
	case len(s) != 1:
		return 0, ErrMultiCharID
	case s[0] >= '0' && s[0] <= '9':
		return 0, ErrNumericID
	}
	return ChainID(s[0]), nil
}

// Chains returns the chain ids of the alpha carbon ATOM lines, in the
// order we first see them.
func Chains(doc Document) ([]ChainID, error) {
	var ids []ChainID
	seen := make(map[byte]bool)
	for i, line := range doc.lines {
		if Classify(line) != TagAtom || !IsCAlpha(line) {
			continue
		}
		c, err := Chain(line)
		if err != nil {
			return nil, atLine(err, i)
		}
		if !seen[c] {
			seen[c] = true
			ids = append(ids, ChainID(c))
		}
	}
	return ids, nil
}

// HasChain says if any ATOM or HETATM line carries id.
func HasChain(doc Document, id ChainID) bool {
	for _, line := range doc.lines {
		if !Classify(line).residueBearing() {
			continue
		}
		if c, err := Chain(line); err == nil && c == byte(id) {
			return true
		}
	}
	return false
}

// ResidueSequence returns the one letter sequence of chain id.
// We look only at alpha carbon ATOM lines and take a residue each time
// the residue number goes up, so alternate locations and repeated
// atoms do not add extra residues. Non-standard residues are left out.
// A chain which is not there gives an empty string and no error.
func ResidueSequence(doc Document, id ChainID) (string, error) {
	var b strings.Builder
	first := true
	last := 0
	for i, line := range doc.lines {
		if Classify(line) != TagAtom || !IsCAlpha(line) {
			continue
		}
		c, err := Chain(line)
		if err != nil {
			return "", atLine(err, i)
		}
		if c != byte(id) {
			continue
		}
		num, err := ResSeq(line)
		if err != nil {
			return "", atLine(err, i)
		}
		if !first && num <= last {
			continue
		}
		first, last = false, num
		name, _ := ResName(line) // ResSeq worked, so the line is long enough
		if one, err := OneLetter(name); err == nil {
			b.WriteByte(one)
		}
	}
	return b.String(), nil
}

// NonStandard lists the residues on alpha carbon ATOM or HETATM lines
// whose names are not in the standard table. Each residue is listed once,
// in the order met.
func NonStandard(doc Document) ([]Residue, error) {
	var out []Residue
	seen := make(map[Residue]bool)
	for i, line := range doc.lines {
		if !Classify(line).residueBearing() || !IsCAlpha(line) {
			continue
		}
		name, err := ResName(line)
		if err != nil {
			return nil, atLine(err, i)
		}
		if IsStandard(name) {
			continue
		}
		c, err := Chain(line)
		if err != nil {
			return nil, atLine(err, i)
		}
		num, err := ResSeq(line)
		if err != nil {
			return nil, atLine(err, i)
		}
		r := Residue{Chain: ChainID(c), Name: name, Num: num}
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	return out, nil
}
