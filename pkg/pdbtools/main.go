package pdbtools

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrew-torda/pdbtools/pdb"
	"github.com/andrew-torda/pdbtools/pdb/cache"
	"github.com/andrew-torda/pdbtools/pdb/fetch"
)

// CmdFlag is literally command line flags after parsing. Empty cache
// settings mean we take them from the environment.
type CmdFlag struct {
	CacheDriver string        // fs, memory, sqlite or s3
	Dir         string        // directory for the fs cache
	DBPath      string        // database for the sqlite cache
	LogDest     string        // "", "stdout" or a file name
	Metrics     string        // write prometheus counters here on exit
	Preload     string        // PDB file to start with
	Timeout     time.Duration // for each download
}

// cacheConfig is the environment, overridden by anything set in flags.
func (flags *CmdFlag) cacheConfig() cache.Config {
	cfg := cache.ConfigFromEnv()
	if flags.CacheDriver != "" {
		cfg.Driver = cache.Driver(flags.CacheDriver)
	}
	if flags.Dir != "" {
		cfg.Dir = flags.Dir
	}
	if flags.DBPath != "" {
		cfg.DBPath = flags.DBPath
	}
	return cfg
}

// idFromName makes 1abc out of /some/where/1abc.pdb.gz
func idFromName(fname string) string {
	s := filepath.Base(fname)
	if i := strings.IndexByte(s, '.'); i > 0 {
		s = s[:i]
	}
	return strings.ToUpper(s)
}

// Mymain sets up the cache, downloader and logging, then runs a
// session reading from in and writing to out.
func Mymain(ctx context.Context, flags *CmdFlag, in io.Reader, out io.Writer) error {
	logger, err := pdb.LogWhere(flags.LogDest)
	if err != nil {
		return fmt.Errorf("log file: %w", err)
	}
	store, err := cache.Open(ctx, flags.cacheConfig())
	if err != nil {
		return fmt.Errorf("opening cache: %w", err)
	}
	defer store.Close()
	logger.Printf("cache driver %s", store.Driver())

	reg := prometheus.NewRegistry()
	f := &fetch.Fetcher{
		Client:  &http.Client{Timeout: flags.Timeout},
		Cache:   store,
		Log:     logger,
		Metrics: fetch.NewMetrics(reg),
	}
	s := NewSession(in, out, f)
	s.Log = logger
	if flags.Preload != "" {
		doc, err := pdb.ReadFile(flags.Preload)
		if err != nil {
			return err
		}
		s.SetDocument(idFromName(flags.Preload), doc)
	}
	err = s.Run(ctx)
	if flags.Metrics != "" {
		if merr := prometheus.WriteToTextfile(flags.Metrics, reg); merr != nil && err == nil {
			err = fmt.Errorf("writing metrics: %w", merr)
		}
	}
	return err
}
