package oldfmt

import (
	"github.com/andrew-torda/matrix"
)

// An Atom holds the few columns of an ATOM record that we plot.
type Atom struct {
	Serial     int
	TempFactor float64
	Residue    Residue
}

// Atoms returns the ATOM records of chain id in file order. A chain
// which is not there gives an empty slice. Lines that end before the
// temperature factor column give a ShortLineError.
func Atoms(doc Document, id ChainID) ([]Atom, error) {
	var atoms []Atom
	for i, line := range doc.lines {
		if Classify(line) != TagAtom {
			continue
		}
		if c, err := Chain(line); err != nil || c != byte(id) {
			continue
		}
		a, err := parseAtom(line)
		if err != nil {
			return nil, atLine(err, i)
		}
		a.Residue.Chain = id
		atoms = append(atoms, a)
	}
	return atoms, nil
}

func parseAtom(line string) (Atom, error) {
	var a Atom
	var err error
	if !ColTempFactor.fits(line) {
		return a, &ShortLineError{Line: -1, Field: "temperature factor",
			Need: ColTempFactor.End, Have: len(line)}
	}
	if a.Serial, err = Serial(line); err != nil {
		return a, err
	}
	if a.Residue.Num, err = ResSeq(line); err != nil {
		return a, err
	}
	if a.TempFactor, err = TempFactor(line); err != nil {
		return a, err
	}
	a.Residue.Name = ColResName.get(line)
	return a, nil
}

// TempFactorSeries puts serial numbers in column 0 and temperature
// factors in column 1 of a matrix with one row per atom.
func TempFactorSeries(atoms []Atom) *matrix.FMatrix2d {
	m := matrix.NewFMatrix2d(len(atoms), 2)
	for i, a := range atoms {
		m.Mat[i][0] = float32(a.Serial)
		m.Mat[i][1] = float32(a.TempFactor)
	}
	return m
}
