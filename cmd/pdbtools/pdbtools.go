// Interactive PDB file tool.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path"
	"time"

	"github.com/andrew-torda/pdbtools/pkg/common"
	"github.com/andrew-torda/pdbtools/pkg/pdbtools"
)

// usage
func usage() int {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[opts]")
	flag.PrintDefaults()
	return common.ExitUsageError
}

func main() {
	var flags pdbtools.CmdFlag
	flag.StringVar(&flags.CacheDriver, "cache", "", "cache driver fs, memory, sqlite or s3 (default from environment, else fs)")
	flag.StringVar(&flags.Dir, "dir", "", "directory for the fs cache")
	flag.StringVar(&flags.DBPath, "db", "", "database file for the sqlite cache")
	flag.StringVar(&flags.LogDest, "l", "", "log to this file, or stdout")
	flag.StringVar(&flags.Metrics, "metrics", "", "write download counters to this file on exit")
	flag.StringVar(&flags.Preload, "f", "", "start with this PDB file")
	flag.DurationVar(&flags.Timeout, "timeout", 30*time.Second, "timeout for each download")
	flag.Parse()
	if flag.NArg() != 0 {
		os.Exit(usage())
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := pdbtools.Mymain(ctx, &flags, os.Stdin, os.Stdout)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(common.ExitFailure)
	}
	os.Exit(common.ExitSuccess)
}
