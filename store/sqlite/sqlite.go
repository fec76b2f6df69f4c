/*
Package sqlite provides the SQLite-backed snapshot store.

PURPOSE:
  The planner persists its whole state container as one JSON blob under
  a single namespaced key - the server-side analog of browser local
  storage. SQLite gives that blob a durable home without inventing a
  relational schema for what is, by design, an opaque snapshot.

SCHEMA:
  kv(key TEXT PRIMARY KEY, value BLOB, updated_at TEXT)

  One row per namespace key. Writes are upserts; reads of a missing key
  return (nil, nil), which callers treat as "no snapshot yet".

EXAMPLE:
  kv, err := sqlite.New("./alfie.db")
  ...
  err = store.RestoreFrom(ctx, kv)

SEE ALSO:
  - state/snapshot.go: The SnapshotStore interface and snapshot shape
  - store/memory: In-memory implementation for tests
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store is a SnapshotStore backed by a SQLite database.
type Store struct {
	db *sql.DB
}

// New opens (creating if needed) the database at path. Use ":memory:"
// for an ephemeral database.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at TEXT NOT NULL
);`

// Put upserts the value for key.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339))
	return err
}

// Get returns the value for key, or (nil, nil) when absent.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Delete removes the key. Deleting an absent key is a no-op.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	return err
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }
