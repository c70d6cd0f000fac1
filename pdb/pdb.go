// This is the upper level for reading PDB files from disk.
// Decide if a file is compressed or not, and what format
// it is in. Then hand the lines to the oldfmt package.
// mmcif files are recognised, but only so we can say we do not read them.

package pdb

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/edsrzf/mmap-go"

	"github.com/andrew-torda/pdbtools/pdb/oldfmt"
	"github.com/andrew-torda/pdbtools/pdb/zwrap"
)

// Format is what we think is in a file.
type Format byte

const (
	OldFmt Format = iota
	MmcifFmt
	UnkFmt
)

// ErrMmcif is returned if we are given an mmcif file.
var ErrMmcif = errors.New("file is mmcif, only old style PDB files are read")

// maxLine is the longest line we will accept. Real PDB lines are 80.
const maxLine = 64 * 1024

// comparefirst says if two words are the same, looking at the
// the length of the shorter
func comparefirst(s, t string) bool {
	l := len(s)
	if len(t) < l {
		l = len(t)
	}
	return l > 0 && s[:l] == t[:l]
}

// Sniff looks at the first lines of some data and guesses if it is in
// old PDB format or in mmcif.
func Sniff(data []byte) Format {
	pdbWords := []string{"HEADER", "COMPND", "SOURCE", "REMARK", "SEQRES", "HETATM", "ATOM  "}
	mmcifWords := []string{"data_", "_entry.id", "loop_"}
	const maxTestLines = 5000
	scnnr := bufio.NewScanner(bytes.NewReader(data))
	scnnr.Buffer(nil, maxLine)
	for i := 0; scnnr.Scan() && i < maxTestLines; i++ {
		s := scnnr.Text()
		if len(s) < 4 {
			continue
		}
		for _, w := range mmcifWords {
			if comparefirst(s, w) {
				return MmcifFmt
			}
		}
		for _, w := range pdbWords {
			if comparefirst(s, w) {
				return OldFmt
			}
		}
	}
	return UnkFmt
}

// FormatFromName decides what format we have from the file name. We
// cannot use filepath.Ext, since it will return .gz if we feed it
// a.pdb.gz.
func FormatFromName(fname string) Format {
	s := filepath.Base(fname)
	i := strings.IndexByte(s, '.')
	if i == -1 {
		return UnkFmt
	}
	s = strings.ToLower(s[i+1:]) // change .ent to ent
	switch {
	case strings.Contains(s, "pdb") || strings.Contains(s, "ent"):
		return OldFmt
	case strings.Contains(s, "cif"):
		return MmcifFmt
	}
	return UnkFmt
}

// Read splits text into a Document. A trailing carriage return on a
// line is removed.
func Read(r io.Reader) (oldfmt.Document, error) {
	var lines []string
	scnnr := bufio.NewScanner(r)
	scnnr.Buffer(nil, maxLine)
	for scnnr.Scan() {
		lines = append(lines, strings.TrimSuffix(scnnr.Text(), "\r"))
	}
	if err := scnnr.Err(); err != nil {
		return oldfmt.Document{}, err
	}
	return oldfmt.NewDocument(lines), nil
}

// Parse turns the bytes of a file, possibly gzipped, into a Document.
// If the content is mmcif, we return ErrMmcif.
func Parse(data []byte) (oldfmt.Document, error) {
	if zwrap.IsGzip(data) {
		zr, err := zwrap.Wrap(io.NopCloser(bytes.NewReader(data)))
		if err != nil {
			return oldfmt.Document{}, err
		}
		defer zr.Close()
		if data, err = io.ReadAll(zr); err != nil {
			return oldfmt.Document{}, err
		}
	}
	if Sniff(data) == MmcifFmt {
		return oldfmt.Document{}, ErrMmcif
	}
	return Read(bytes.NewReader(data))
}

// ReadFile reads a PDB file. Plain files are memory mapped, gzipped
// ones are decompressed. Empty files give an empty Document.
func ReadFile(fname string) (oldfmt.Document, error) {
	if FormatFromName(fname) == MmcifFmt {
		return oldfmt.Document{}, fmt.Errorf("%s: %w", fname, ErrMmcif)
	}
	fp, err := os.Open(fname)
	if err != nil {
		return oldfmt.Document{}, err
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return oldfmt.Document{}, err
	}
	if fi.IsDir() {
		return oldfmt.Document{}, fmt.Errorf("%s is a directory", fname)
	}
	if fi.Size() == 0 {
		return oldfmt.Document{}, nil
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return oldfmt.Document{}, fmt.Errorf("mapping %s: %w", fname, err)
	}
	defer mm.Unmap()
	doc, err := Parse(mm)
	if err != nil {
		return doc, fmt.Errorf("%s: %w", fname, err)
	}
	return doc, nil
}

// WriteLines writes lines, each followed by a newline.
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		bw.WriteString(l)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteFile writes lines to a file, replacing anything there.
func WriteFile(fname string, lines []string) error {
	fp, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := WriteLines(fp, lines); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}

// LogWhere decides where to send logged output.
// If dest is "", it will be trashed. If dest is "stdout", we
// write to standard output. Anything else is a file we append to.
func LogWhere(dest string) (*log.Logger, error) {
	var iowriter io.Writer
	switch dest {
	case "":
		iowriter = io.Discard
	case "stdout":
		iowriter = os.Stdout
	default:
		var err error
		iowriter, err = os.OpenFile(dest, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
	}
	return log.New(iowriter, "", log.Lshortfile), nil
}
