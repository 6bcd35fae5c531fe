// Package store is the durable local key/value store the client core falls
// back to when the backend is unreachable. It mirrors the semantics of a
// browser's localStorage: string keys, JSON-encoded values, no expiry.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver
)

// Store is the durable key/value contract shared by the SQLite-backed and
// in-memory implementations. Get reports whether the key was present and,
// when it was, decodes the stored JSON into the target.
type Store interface {
	Get(key string, into any) (bool, error)
	Set(key string, value any) error
	Delete(key string) error
}

// DB is the SQLite-backed Store.
type DB struct {
	db *sql.DB
}

// Open creates (if needed) and opens the store at the given path.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	const sqlStmt = `
	CREATE TABLE IF NOT EXISTS kv (
		key   TEXT NOT NULL PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	if _, err := db.Exec(sqlStmt); err != nil {
		return nil, fmt.Errorf("failed to migrate local store: %w", err)
	}
	return &DB{db: db}, nil
}

// Close closes the underlying database.
func (s *DB) Close() error {
	return s.db.Close()
}

// Get decodes the value stored under key into the target.
func (s *DB) Get(key string, into any) (bool, error) {
	var raw string
	row := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key)
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), into); err != nil {
		return false, fmt.Errorf("corrupt entry for key %q: %w", key, err)
	}
	return true, nil
}

// Set stores the JSON encoding of value under key, replacing any previous
// entry.
func (s *DB) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		"INSERT INTO kv(key, value) VALUES(?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, string(raw),
	)
	return err
}

// Delete removes the entry for key. Deleting a missing key is not an error.
func (s *DB) Delete(key string) error {
	_, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key)
	return err
}
