// Package cache keeps the raw bytes of PDB files we have already
// downloaded so we do not fetch them twice. Entries are keyed by the
// upper case PDB ID.
//
// There are several backends. The default keeps <ID>.pdb files in a
// directory, which is also what you get if you download files by hand.
package cache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Driver identifies a storage backend.
type Driver string

const (
	DriverFilesystem Driver = "fs"
	DriverMemory     Driver = "memory"
	DriverSqlite     Driver = "sqlite"
	DriverS3         Driver = "s3"
)

var (
	// ErrNotFound is returned by Get when the entry is not cached.
	ErrNotFound = errors.New("not in cache")
	// ErrBadKey is returned for IDs that cannot be used as keys.
	ErrBadKey = errors.New("invalid cache key")
)

// Store is what every backend provides.
type Store interface {
	Get(ctx context.Context, id string) ([]byte, error)
	Put(ctx context.Context, id string, data []byte) error
	List(ctx context.Context) ([]string, error)
	Driver() Driver
	Close() error
}

// Key turns an ID into the form we store it under.
func Key(id string) (string, error) {
	k := strings.ToUpper(strings.TrimSpace(id))
	if k == "" || strings.ContainsAny(k, `/\:`) || strings.Contains(k, "..") {
		return "", fmt.Errorf("%w: %q", ErrBadKey, id)
	}
	return k, nil
}

// Config says which backend to open and how.
type Config struct {
	Driver Driver
	Dir    string // fs: directory holding <ID>.pdb files
	DBPath string // sqlite: database file
	S3     S3Config
}

// Environment variables read by ConfigFromEnv:
//
//	PDBTOOLS_CACHE_DRIVER  fs|memory|sqlite|s3 (default fs)
//	PDBTOOLS_CACHE_DIR     directory for fs (default .)
//	PDBTOOLS_CACHE_DB      database file for sqlite (default pdbcache.db)
//	PDBTOOLS_S3_BUCKET, PDBTOOLS_S3_REGION, PDBTOOLS_S3_ENDPOINT,
//	PDBTOOLS_S3_PREFIX, PDBTOOLS_S3_PATH_STYLE=true|false
func ConfigFromEnv() Config {
	cfg := Config{
		Driver: Driver(os.Getenv("PDBTOOLS_CACHE_DRIVER")),
		Dir:    os.Getenv("PDBTOOLS_CACHE_DIR"),
		DBPath: os.Getenv("PDBTOOLS_CACHE_DB"),
		S3: S3Config{
			Bucket:    os.Getenv("PDBTOOLS_S3_BUCKET"),
			Region:    os.Getenv("PDBTOOLS_S3_REGION"),
			Endpoint:  os.Getenv("PDBTOOLS_S3_ENDPOINT"),
			Prefix:    os.Getenv("PDBTOOLS_S3_PREFIX"),
			PathStyle: strings.EqualFold(os.Getenv("PDBTOOLS_S3_PATH_STYLE"), "true"),
		},
	}
	if cfg.Driver == "" {
		cfg.Driver = DriverFilesystem
	}
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "pdbcache.db"
	}
	return cfg
}

// Open returns the Store named by cfg.Driver.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Driver {
	case DriverFilesystem, "":
		return NewFilesystem(cfg.Dir)
	case DriverMemory:
		return NewMemory(), nil
	case DriverSqlite:
		return NewSqlite(ctx, cfg.DBPath)
	case DriverS3:
		return NewS3(ctx, cfg.S3)
	}
	return nil, fmt.Errorf("unknown cache driver %q", cfg.Driver)
}
