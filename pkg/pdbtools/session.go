// Package pdbtools is the interactive program. You load a PDB file by
// its ID, look at its header details and chains, write sequences as
// FASTA, pull out residue lines, rename chains and plot temperature
// factors.
//
// All the state lives in a Session, so tests can drive it with a
// strings.Reader and look at what comes out.
package pdbtools

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/andrew-torda/pdbtools/pdb"
	"github.com/andrew-torda/pdbtools/pdb/fetch"
	"github.com/andrew-torda/pdbtools/pdb/oldfmt"
	"github.com/andrew-torda/pdbtools/pkg/common"
	"github.com/andrew-torda/pdbtools/pkg/tfplot"
)

// errQuit is how the handlers say the user wants out.
var errQuit = errors.New("quit")

var (
	warnColour = color.New(color.FgYellow)
	okColour   = color.New(color.FgGreen)
)

// Session is one run of the program.
type Session struct {
	In      io.Reader
	Out     io.Writer
	Fetcher *fetch.Fetcher
	Log     *log.Logger
	Dir     string // where files are read and written, default "."

	scnnr *bufio.Scanner
	doc   oldfmt.Document
	curID string
}

// NewSession is a session reading from in and writing to out.
func NewSession(in io.Reader, out io.Writer, f *fetch.Fetcher) *Session {
	return &Session{In: in, Out: out, Fetcher: f, Dir: "."}
}

// SetDocument makes doc the current file, as if it had been loaded
// under the name id.
func (s *Session) SetDocument(id string, doc oldfmt.Document) {
	s.curID, s.doc = id, doc
}

// Document is the current file, possibly after chain renaming.
func (s *Session) Document() oldfmt.Document { return s.doc }

// CurrentID is the ID of the current file, "" if there is none.
func (s *Session) CurrentID() string { return s.curID }

func (s *Session) logf(format string, v ...any) {
	if s.Log != nil {
		s.Log.Output(2, fmt.Sprintf(format, v...))
	}
}

func (s *Session) warn(format string, v ...any) {
	warnColour.Fprintf(s.Out, format+"\n", v...)
}

func (s *Session) say(format string, v ...any) {
	okColour.Fprintf(s.Out, format+"\n", v...)
}

func (s *Session) path(fname, ext string) string {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, withExt(fname, ext))
}

// ask prints prompt and returns the next line of input. The end of
// input counts as quitting.
func (s *Session) ask(prompt string) (string, error) {
	if s.scnnr == nil {
		s.scnnr = bufio.NewScanner(s.In)
	}
	fmt.Fprint(s.Out, prompt)
	if !s.scnnr.Scan() {
		if err := s.scnnr.Err(); err != nil {
			return "", err
		}
		fmt.Fprintln(s.Out)
		return "", errQuit
	}
	return strings.TrimSuffix(s.scnnr.Text(), "\r"), nil
}

// askQuit is ask, but an answer in quit gives errQuit.
func (s *Session) askQuit(prompt string, quit []string) (string, error) {
	a, err := s.ask(prompt)
	if err != nil {
		return "", err
	}
	if common.IsQuit(a, quit) {
		return "", errQuit
	}
	return a, nil
}

// askValid keeps asking until check is happy or we are told to quit.
func (s *Session) askValid(prompt string, check func(string) bool, quit []string) (string, error) {
	for {
		a, err := s.askQuit(prompt, quit)
		if err != nil {
			return "", err
		}
		if check(a) {
			return a, nil
		}
		s.warn("%q is not valid here.", a)
	}
}

// askChain asks for a chain ID until it gets a good one. Only "quit"
// quits, since q is a perfectly good chain.
func (s *Session) askChain(prompt string) (oldfmt.ChainID, error) {
	c, _, err := s.chainLoop(prompt, false)
	return c, err
}

// askChainOrAll is askChain, but an empty answer means every chain.
func (s *Session) askChainOrAll(prompt string) (c oldfmt.ChainID, all bool, err error) {
	return s.chainLoop(prompt, true)
}

func (s *Session) chainLoop(prompt string, emptyOK bool) (oldfmt.ChainID, bool, error) {
	for {
		a, err := s.askQuit(prompt, common.ChainQuitWords)
		if err != nil {
			return 0, false, err
		}
		if a == "" && emptyOK {
			return 0, true, nil
		}
		c, err := oldfmt.ParseChainID(a)
		if err == nil {
			return c, false, nil
		}
		s.warn("%s", chainMessage(a, err))
	}
}

// Run reads options until the user quits or the input ends. It only
// returns an error if reading the input fails.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.Out, "Welcome to pdbtools.")
	s.printMenu()
	for {
		opt, err := s.ask(promptMain)
		if err == nil {
			if common.IsQuit(opt, common.QuitWords) {
				break
			}
			err = s.dispatch(ctx, opt)
		}
		if errors.Is(err, errQuit) {
			break
		}
		if err != nil {
			return err
		}
	}
	fmt.Fprintln(s.Out, "You have quit the program.")
	return nil
}

// worksEmpty are the answers we act on before a file is loaded.
// Anything else, even an option not on the menu, gets told to load
// a file first.
var worksEmpty = map[string]bool{"": true, "1": true, "5": true}

func (s *Session) dispatch(ctx context.Context, opt string) error {
	if !worksEmpty[opt] && s.doc.Empty() {
		s.warn("No PDB file has been read yet. Use option 1 first.")
		return nil
	}
	switch opt {
	case "":
		s.printMenu()
		return nil
	case "1":
		return s.load(ctx)
	case "2":
		return s.details()
	case "3":
		return s.residues()
	case "4":
		return s.fasta()
	case "5":
		return s.residueLines()
	case "6":
		return s.rename()
	case "7":
		s.nonStandard()
		return nil
	case "8":
		return s.plot()
	}
	s.warn("Option %q is not on the menu. Press Enter to see the list.", opt)
	return nil
}

// maxListed is how many cached IDs we show before giving up.
const maxListed = 20

// listCached prints the IDs we could load without downloading.
func (s *Session) listCached(ctx context.Context) {
	if s.Fetcher == nil || s.Fetcher.Cache == nil {
		return
	}
	ids, err := s.Fetcher.Cache.List(ctx)
	if err != nil {
		s.logf("listing cache: %v", err)
		return
	}
	if len(ids) == 0 {
		return
	}
	more := ""
	if len(ids) > maxListed {
		more = fmt.Sprintf(" and %d more", len(ids)-maxListed)
		ids = ids[:maxListed]
	}
	fmt.Fprintf(s.Out, "Already here: %s%s\n", strings.Join(ids, " "), more)
}

// load is option 1. If the download fails, the old file stays current.
func (s *Session) load(ctx context.Context) error {
	s.listCached(ctx)
	a, err := s.askQuit(promptID, common.QuitWords)
	if err != nil {
		return err
	}
	id, err := fetch.CheckID(a)
	if err != nil {
		s.warn("%q is not a PDB ID. They look like 1ABC.", a)
		return nil
	}
	if s.Fetcher == nil {
		s.warn("There is no way to get files in this session.")
		return nil
	}
	doc, err := s.Fetcher.Get(ctx, id)
	if err != nil {
		s.logf("load %s: %v", id, err)
		s.warn("A file for PDB ID %s could not be found or downloaded.", id)
		return nil
	}
	s.SetDocument(id, doc)
	s.say("Read %d lines for %s.", doc.Len(), id)
	return nil
}

// details is option 2.
func (s *Session) details() error {
	fmt.Fprint(s.Out, detailText)
	a, err := s.ask(promptDetails)
	if err != nil {
		return err
	}
	tags, bad, quit := parseDetails(a)
	if quit {
		return errQuit
	}
	for _, b := range bad {
		s.warn("Option %q could not be found.", b)
	}
	d := oldfmt.Aggregate(s.doc, tags)
	for _, t := range tags {
		if v := d[t]; v != "" {
			fmt.Fprintf(s.Out, "%s:\n%s\n", t, v)
		}
	}
	for _, t := range d.Missing() {
		s.warn("%s could not be found in the file.", t)
	}
	return nil
}

// residues is option 3.
func (s *Session) residues() error {
	c, err := s.askChain(promptChain)
	if err != nil {
		return err
	}
	if !oldfmt.HasChain(s.doc, c) {
		s.warn("Chain %s could not be found in the file.", c)
		return nil
	}
	seq, err := oldfmt.ResidueSequence(s.doc, c)
	switch {
	case err != nil:
		s.warn("Chain %s: %v", c, err)
	case seq == "":
		s.warn("Chain %s has no protein residues.", c)
	default:
		fmt.Fprintln(s.Out, oldfmt.Wrap80(seq))
	}
	return nil
}

// fasta is option 4. An empty chain ID means every chain.
func (s *Session) fasta() error {
	fname, err := s.askValid(promptFasta, ValidFilename, common.QuitWords)
	if err != nil {
		return err
	}
	c, all, err := s.askChainOrAll(promptChainAll)
	if err != nil {
		return err
	}
	var ids []oldfmt.ChainID
	if all {
		if ids, err = oldfmt.Chains(s.doc); err != nil {
			s.warn("%v", err)
			return nil
		}
	} else {
		if !oldfmt.HasChain(s.doc, c) {
			s.warn("Chain %s could not be found in the file.", c)
			return nil
		}
		ids = []oldfmt.ChainID{c}
	}
	var sb strings.Builder
	for _, c := range ids {
		seq, err := oldfmt.ResidueSequence(s.doc, c)
		if err != nil {
			s.warn("Chain %s: %v", c, err)
			return nil
		}
		if seq == "" {
			continue
		}
		sb.WriteString(oldfmt.ToFasta(s.curID, c, seq))
	}
	if sb.Len() == 0 {
		s.warn("No protein residues were found to write.")
		return nil
	}
	p := s.path(fname, ".fasta")
	if err := os.WriteFile(p, []byte(sb.String()), 0o644); err != nil {
		s.warn("Writing %s: %v", p, err)
		return nil
	}
	s.logf("wrote %d chains to %s", len(ids), p)
	s.say("Wrote %s.", p)
	return nil
}

// residueLines is option 5. Reading works without a current file,
// writing needs one.
func (s *Session) residueLines() error {
	fname, err := s.askValid(promptLineFile, ValidFilename, common.QuitWords)
	if err != nil {
		return err
	}
	rw, err := s.askQuit(promptReadWrite, common.QuitWords)
	if err != nil {
		return err
	}
	reading := strings.ToLower(rw) == "r"
	if !reading && s.doc.Empty() {
		s.warn("There is nothing to write. Read a PDB file with option 1 first.")
		return nil
	}
	c, err := s.askChain(promptChain)
	if err != nil {
		return err
	}
	rec, err := s.askQuit(promptRecord, common.QuitWords)
	if err != nil {
		return err
	}
	filter := oldfmt.FilterFor(rec)
	p := s.path(fname, ".pdb")
	if reading {
		doc, err := pdb.ReadFile(p)
		if errors.Is(err, fs.ErrNotExist) {
			s.warn("File %s could not be found.", p)
			return nil
		}
		if err != nil {
			s.warn("Reading %s: %v", p, err)
			return nil
		}
		lines := doc.Select(filter, c)
		if len(lines) == 0 {
			s.warn("No residue lines for chain %s could be found in %s.", c, p)
			return nil
		}
		for _, l := range lines {
			fmt.Fprintln(s.Out, l)
		}
		return nil
	}
	lines := s.doc.Select(filter, c)
	if len(lines) == 0 {
		s.warn("No residue lines for chain %s could be found.", c)
		return nil
	}
	if err := pdb.WriteFile(p, lines); err != nil {
		s.warn("Writing %s: %v", p, err)
		return nil
	}
	s.logf("wrote %d lines to %s", len(lines), p)
	s.say("Wrote %d lines to %s.", len(lines), p)
	return nil
}

// rename is option 6. The current ID does not change.
func (s *Session) rename() error {
	from, err := s.askChain(promptOldChain)
	if err != nil {
		return err
	}
	to, err := s.askChain(promptNewChain)
	if err != nil {
		return err
	}
	doc, err := oldfmt.RenameChain(s.doc, from, to)
	if errors.Is(err, oldfmt.ErrChainNotFound) {
		s.warn("Chain %s could not be found in the file.", from)
		return nil
	}
	if err != nil {
		s.warn("Renaming chain %s: %v", from, err)
		return nil
	}
	s.doc = doc
	s.say("Chain %s is now chain %s.", from, to)
	return nil
}

// nonStandard is option 7.
func (s *Session) nonStandard() {
	res, err := oldfmt.NonStandard(s.doc)
	if err != nil {
		s.warn("%v", err)
		return
	}
	if len(res) == 0 {
		s.say("No non-standard residues were found.")
		return
	}
	fmt.Fprintln(s.Out, "Non-standard residues:")
	for _, r := range res {
		fmt.Fprintln(s.Out, "   ", r)
	}
}

// plot is option 8.
func (s *Session) plot() error {
	c, err := s.askChain(promptChain)
	if err != nil {
		return err
	}
	hs, err := s.askValid(promptHeight, ValidDimension, common.QuitWords)
	if err != nil {
		return err
	}
	ws, err := s.askValid(promptWidth, ValidDimension, common.QuitWords)
	if err != nil {
		return err
	}
	fname, err := s.askValid(promptPlotFile, ValidFilename, common.QuitWords)
	if err != nil {
		return err
	}
	atoms, err := oldfmt.Atoms(s.doc, c)
	if err != nil {
		s.warn("Chain %s: %v", c, err)
		return nil
	}
	if len(atoms) == 0 {
		s.warn("Chain %s could not be found in the file.", c)
		return nil
	}
	h, _ := strconv.ParseFloat(hs, 64)
	w, _ := strconv.ParseFloat(ws, 64)
	p := s.path(fname, ".png")
	fp, err := os.Create(p)
	if err != nil {
		s.warn("Creating %s: %v", p, err)
		return nil
	}
	opt := tfplot.Options{
		Title:    fmt.Sprintf("%s chain %s temperature factor", s.curID, c),
		WidthIn:  w,
		HeightIn: h,
	}
	err = tfplot.Render(fp, oldfmt.TempFactorSeries(atoms), opt)
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(p)
		s.warn("Plotting chain %s: %v", c, err)
		return nil
	}
	s.say("Plot of %d atoms written to %s.", len(atoms), p)
	return nil
}
