package oldfmt

import "fmt"

// threeToOne holds only the twenty standard amino acids. ASX, GLX, UNK
// and friends are not here and count as non-standard.
var threeToOne = map[string]byte{
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLU": 'E', "GLN": 'Q', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',
}

// OneLetter translates a three letter residue code. Codes outside the
// standard twenty give an error wrapping ErrUnknownResidue.
func OneLetter(code string) (byte, error) {
	if c, ok := threeToOne[code]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownResidue, code)
}

// IsStandard says if code is one of the twenty amino acids.
func IsStandard(code string) bool {
	_, ok := threeToOne[code]
	return ok
}

// A Residue is one amino acid as named in an ATOM or HETATM line.
type Residue struct {
	Chain ChainID
	Name  string // three letter code, as in the file
	Num   int    // residue sequence number
}

func (r Residue) String() string {
	return fmt.Sprintf("%s %d chain %c", r.Name, r.Num, r.Chain)
}
