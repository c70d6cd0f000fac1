package cache

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const fsSuffix = ".pdb"

// Filesystem keeps each entry as <dir>/<ID>.pdb.
type Filesystem struct {
	dir string
}

// NewFilesystem returns a store in dir, creating the directory if it
// is not there.
func NewFilesystem(dir string) (*Filesystem, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Filesystem{dir: dir}, nil
}

func (s *Filesystem) Driver() Driver { return DriverFilesystem }
func (s *Filesystem) Close() error   { return nil }

// Path is where the entry for id lives, whether or not it is there.
func (s *Filesystem) Path(id string) (string, error) {
	k, err := Key(id)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.dir, k+fsSuffix), nil
}

func (s *Filesystem) Get(_ context.Context, id string) ([]byte, error) {
	p, err := s.Path(id)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	return b, err
}

// Put writes to a temporary file and renames it, so a reader never
// sees half a file.
func (s *Filesystem) Put(_ context.Context, id string, data []byte) error {
	p, err := s.Path(id)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), p)
}

func (s *Filesystem) List(_ context.Context) ([]string, error) {
	ents, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, e := range ents {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, fsSuffix) {
			continue
		}
		id := strings.TrimSuffix(name, fsSuffix)
		if id == strings.ToUpper(id) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}
