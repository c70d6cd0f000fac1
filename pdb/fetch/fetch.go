// Package fetch gets PDB files from the protein data bank web sites.
// Files we already have are taken from a cache. The sites are tried in
// order until one of them gives us the file.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/andrew-torda/pdbtools/pdb"
	"github.com/andrew-torda/pdbtools/pdb/cache"
	"github.com/andrew-torda/pdbtools/pdb/oldfmt"
	"github.com/andrew-torda/pdbtools/pdb/zwrap"
)

var (
	// ErrBadID is for strings that cannot be PDB IDs.
	ErrBadID = errors.New("not a PDB ID")
	// ErrUnavailable means no site would give us the file.
	ErrUnavailable = errors.New("could not download PDB file")
	// ErrNotPDB is a download which is not an old style PDB file, such
	// as an error page served with status 200. It is never cached.
	ErrNotPDB = errors.New("not an old style PDB file")
)

// StatusError is what we return when a site answers, but not with 200.
type StatusError struct {
	URL    string
	Status string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s", e.URL, e.Status)
}

// Site is one place to download from. The URL is Base + id + Suffix,
// with the id in the case the site wants.
type Site struct {
	Base    string
	Suffix  string
	Lower   bool // site wants lower case IDs
	Gzipped bool
}

// URL for a given PDB ID.
func (s Site) URL(id string) string {
	if s.Lower {
		id = strings.ToLower(id)
	}
	return s.Base + id + s.Suffix
}

// DefaultSites is where we look, in order.
var DefaultSites = []Site{
	{Base: "https://files.rcsb.org/download/", Suffix: ".pdb"},
	{Base: "https://files.rcsb.org/download/", Suffix: ".pdb.gz", Gzipped: true},
	{Base: "https://www.ebi.ac.uk/pdbe/entry-files/download/pdb", Suffix: ".ent", Lower: true},
}

// CheckID says if id looks like a PDB ID: four characters, the first
// a digit and the rest letters or digits. It returns the upper case form.
func CheckID(id string) (string, error) {
	id = strings.ToUpper(strings.TrimSpace(id))
	if len(id) != 4 || id[0] < '0' || id[0] > '9' {
		return "", fmt.Errorf("%w: %q", ErrBadID, id)
	}
	for i := 1; i < len(id); i++ {
		c := id[i]
		if (c < '0' || c > '9') && (c < 'A' || c > 'Z') {
			return "", fmt.Errorf("%w: %q", ErrBadID, id)
		}
	}
	return id, nil
}

// Fetcher holds what we need to go and get files. The zero value is
// usable and goes to the default sites with no cache.
type Fetcher struct {
	Client  *http.Client
	Sites   []Site
	Cache   cache.Store
	Log     *log.Logger
	Metrics *Metrics
}

func (f *Fetcher) client() *http.Client {
	if f.Client == nil {
		return http.DefaultClient
	}
	return f.Client
}

func (f *Fetcher) sites() []Site {
	if len(f.Sites) == 0 {
		return DefaultSites
	}
	return f.Sites
}

func (f *Fetcher) logf(format string, v ...any) {
	if f.Log != nil {
		f.Log.Output(2, fmt.Sprintf(format, v...))
	}
}

// fromSite downloads one file. If the site sends gzipped data, we
// decompress it here.
func (f *Fetcher) fromSite(ctx context.Context, site Site, id string) ([]byte, error) {
	url := site.URL(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.client().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{URL: url, Status: resp.Status, Code: resp.StatusCode}
	}
	var body io.ReadCloser = resp.Body
	if site.Gzipped {
		zr, err := zwrap.WrapMaybe(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", url, err)
		}
		body = zr
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", url, err)
	}
	if len(b) == 0 {
		return nil, fmt.Errorf("%s: empty file", url)
	}
	if fmtGuess := pdb.Sniff(b); fmtGuess != pdb.OldFmt {
		if fmtGuess == pdb.MmcifFmt {
			return nil, fmt.Errorf("%s: %w: %w", url, ErrNotPDB, pdb.ErrMmcif)
		}
		return nil, fmt.Errorf("%s: %w", url, ErrNotPDB)
	}
	return b, nil
}

// Bytes returns the raw text of the PDB file for id. The cache is
// checked first and filled on a successful download.
func (f *Fetcher) Bytes(ctx context.Context, id string) ([]byte, error) {
	id, err := CheckID(id)
	if err != nil {
		return nil, err
	}
	if f.Cache != nil {
		b, err := f.Cache.Get(ctx, id)
		switch {
		case err == nil:
			f.logf("%s from %s cache", id, f.Cache.Driver())
			f.Metrics.count(sourceCache)
			return b, nil
		case !errors.Is(err, cache.ErrNotFound):
			f.logf("cache lookup %s: %v", id, err)
		}
	}
	var errs []error
	for _, site := range f.sites() {
		b, err := f.fromSite(ctx, site, id)
		if err != nil {
			f.logf("%v", err)
			errs = append(errs, err)
			if ctx.Err() != nil {
				break
			}
			continue
		}
		f.logf("%s from %s, %d bytes", id, site.URL(id), len(b))
		f.Metrics.count(sourceRemote)
		if f.Cache != nil {
			if err := f.Cache.Put(ctx, id, b); err != nil {
				f.logf("cache store %s: %v", id, err)
			}
		}
		return b, nil
	}
	f.Metrics.fail()
	return nil, fmt.Errorf("%w %s: %w", ErrUnavailable, id, errors.Join(errs...))
}

// Get fetches and parses the file for id.
func (f *Fetcher) Get(ctx context.Context, id string) (oldfmt.Document, error) {
	b, err := f.Bytes(ctx, id)
	if err != nil {
		return oldfmt.Document{}, err
	}
	return pdb.Parse(b)
}
