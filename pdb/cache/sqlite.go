package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Sqlite keeps every entry as a row in one table of a database file.
type Sqlite struct {
	db   *sql.DB
	path string
}

// NewSqlite opens, or creates, the database at path.
func NewSqlite(ctx context.Context, path string) (*Sqlite, error) {
	if path == "" {
		path = "pdbcache.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS pdb_files (
		id TEXT PRIMARY KEY,
		body BLOB NOT NULL,
		fetched_at TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create pdb_files table: %w", err)
	}
	return &Sqlite{db: db, path: path}, nil
}

func (s *Sqlite) Driver() Driver { return DriverSqlite }
func (s *Sqlite) Close() error   { return s.db.Close() }

func (s *Sqlite) Get(ctx context.Context, id string) ([]byte, error) {
	k, err := Key(id)
	if err != nil {
		return nil, err
	}
	var body []byte
	err = s.db.QueryRowContext(ctx, `SELECT body FROM pdb_files WHERE id = ?`, k).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", k, err)
	}
	return body, nil
}

func (s *Sqlite) Put(ctx context.Context, id string, data []byte) error {
	k, err := Key(id)
	if err != nil {
		return err
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO pdb_files (id, body, fetched_at) VALUES (?, ?, ?)`,
		k, data, now); err != nil {
		return fmt.Errorf("insert %s: %w", k, err)
	}
	return nil
}

func (s *Sqlite) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM pdb_files ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select ids: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
