package pdbtools

import (
	"fmt"
	"strings"

	"github.com/andrew-torda/pdbtools/pdb/oldfmt"
	"github.com/andrew-torda/pdbtools/pkg/common"
)

const menuText = `
Choose an option by number:
    1 - Give a PDB ID to read the local copy or download the file
    2 - Print details from the current PDB file
    3 - Print the protein residues of a chain
    4 - Write the protein residues of one or all chains as FASTA
    5 - Print residue lines from a file, or write them to a file
    6 - Change a chain ID in the current PDB file
    7 - Print non-standard protein residues
    8 - Plot the temperature factor of a chain
    Q, q or quit - Quit
`

const detailText = `
Choose the details you want, separated by commas:
    1 - Header
    2 - Title
    3 - Source
    4 - Keywords
    5 - Authors
    6 - Resolution
    7 - Journal title
`

// detailTags maps the answers to detailText onto record tags.
var detailTags = map[string]oldfmt.Tag{
	"1": oldfmt.TagHeader,
	"2": oldfmt.TagTitle,
	"3": oldfmt.TagSource,
	"4": oldfmt.TagKeywds,
	"5": oldfmt.TagAuthor,
	"6": oldfmt.TagResolution,
	"7": oldfmt.TagJrnlTitle,
}

// Prompts. They are here so tests can find them.
const (
	promptMain      = "Main option (Enter shows the list): "
	promptID        = "PDB ID: "
	promptDetails   = "Options: "
	promptChain     = "Chain ID: "
	promptChainAll  = "Chain ID (Enter for all chains): "
	promptOldChain  = "Chain ID to change: "
	promptNewChain  = "New chain ID (one character, not a digit): "
	promptFasta     = "FASTA file to write (e.g. protein_resA): "
	promptLineFile  = "File to read or write (e.g. 1HIV): "
	promptReadWrite = "Read (r) or write (anything else): "
	promptRecord    = "Record type, ATOM or HETATM (anything else for both): "
	promptHeight    = "Plot height in inches: "
	promptWidth     = "Plot width in inches: "
	promptPlotFile  = "Plot file (e.g. 1HIV_A_tempfact): "
)

func (s *Session) printMenu() {
	fmt.Fprint(s.Out, menuText)
	if s.curID == "" {
		fmt.Fprintln(s.Out, "\nNo PDB file has been read yet. Use option 1 first.")
	} else {
		fmt.Fprintln(s.Out, "\nCurrent PDB ID:", s.curID)
	}
}

// parseDetails splits a comma separated answer into tags. Unknown
// options are returned separately. quit is true if any item is a
// quit word.
func parseDetails(answer string) (tags []oldfmt.Tag, bad []string, quit bool) {
	seen := make(map[oldfmt.Tag]bool)
	for _, opt := range strings.Split(answer, ",") {
		opt = strings.TrimSpace(opt)
		if common.IsQuit(opt, common.QuitWords) {
			return nil, nil, true
		}
		t, ok := detailTags[opt]
		if !ok {
			bad = append(bad, opt)
			continue
		}
		if !seen[t] {
			seen[t] = true
			tags = append(tags, t)
		}
	}
	return tags, bad, false
}
