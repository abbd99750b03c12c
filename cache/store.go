// Package cache gives the remember TTL hint a local consumer: a
// sqlite-backed response store and a Transport decorator that serves
// remembered reads from it.
package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	key        TEXT PRIMARY KEY,
	payload    BLOB NOT NULL,
	expires_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS entries_expires_at ON entries (expires_at);
`

// Store persists response payloads with an expiry timestamp.
// Use ":memory:" as the path for an ephemeral store.
type Store struct {
	db *sql.DB
}

// Open opens (and if needed initializes) a cache store at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing cache store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the payload stored under key if it has not expired as of now.
// Expired rows are evicted on the way out.
func (s *Store) Get(key string, now time.Time) ([]byte, bool, error) {
	var payload []byte
	var expiresAt int64
	err := s.db.QueryRow(
		`SELECT payload, expires_at FROM entries WHERE key = ?`, key,
	).Scan(&payload, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading cache entry: %w", err)
	}

	if expiresAt <= now.Unix() {
		if _, err := s.db.Exec(`DELETE FROM entries WHERE key = ?`, key); err != nil {
			return nil, false, fmt.Errorf("evicting cache entry: %w", err)
		}
		return nil, false, nil
	}
	return payload, true, nil
}

// Put stores payload under key until now+ttl. An existing entry is replaced.
func (s *Store) Put(key string, payload []byte, ttl time.Duration, now time.Time) error {
	_, err := s.db.Exec(
		`INSERT INTO entries (key, payload, expires_at) VALUES (?, ?, ?)
		 ON CONFLICT (key) DO UPDATE SET payload = excluded.payload, expires_at = excluded.expires_at`,
		key, payload, now.Add(ttl).Unix(),
	)
	if err != nil {
		return fmt.Errorf("writing cache entry: %w", err)
	}
	return nil
}

// Purge removes every entry that has expired as of now.
func (s *Store) Purge(now time.Time) error {
	if _, err := s.db.Exec(`DELETE FROM entries WHERE expires_at <= ?`, now.Unix()); err != nil {
		return fmt.Errorf("purging cache: %w", err)
	}
	return nil
}
