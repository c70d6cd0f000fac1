package oldfmt_test

import (
	"fmt"

	"github.com/andrew-torda/pdbtools/pdb/oldfmt"
)

// atom writes an ATOM or HETATM line with every column where the PDB
// format puts it. The line is 80 bytes long.
func atom(rec string, serial int, name, res string, chain byte, resnum int, bfac float64) string {
	return fmt.Sprintf("%-6s%5d %-4s %3s %c%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s  ",
		rec, serial, name, res, chain, resnum, 1.0, 2.0, 3.0, 1.0, bfac, name[1:2])
}

// small is a two chain protein with a water and a selenomethionine.
var small = []string{
	"HEADER    HYDROLASE                               15-MAY-92   1ABC              ",
	"TITLE     CRYSTAL STRUCTURE OF A SMALL                                          ",
	"TITLE    2 TEST   PROTEIN                                                       ",
	"REMARK   2 RESOLUTION.    2.40 ANGSTROMS.                                       ",
	atom("ATOM", 1, " N", "ALA", 'A', 1, 10.5),
	atom("ATOM", 2, " CA", "ALA", 'A', 1, 11.5),
	atom("ATOM", 3, " CA", "GLY", 'A', 2, 12.5),
	atom("HETATM", 4, " CA", "MSE", 'A', 3, 13.5),
	atom("ATOM", 5, " CA", "TRP", 'A', 4, 14.5),
	"TER       6      TRP A   4                                                      ",
	atom("ATOM", 7, " CA", "LYS", 'C', 1, 20.0),
	atom("HETATM", 8, " O", "HOH", 'C', 101, 30.0),
	"END                                                                             ",
}

func smallDoc() oldfmt.Document { return oldfmt.NewDocument(small) }
