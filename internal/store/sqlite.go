package store

import (
	"database/sql"
	"os"
	"path/filepath"

	"nelo/internal/errors"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements the Store interface on top of a single-table
// SQLite database. Each key holds one blob; writes are whole-value
// replacements, matching the persistence contract of the repository.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLite store instance at the given path. The
// special path ":memory:" creates a throwaway in-process database.
func New(dbPath string) (*SQLiteStore, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, errors.NewStorageError("create database directory", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}
	// A single connection serializes writes so a sequence of mutations
	// always persists in order.
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, errors.NewStorageError("ensure schema", err)
	}
	return s, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`
	_, err := s.db.Exec(ddl)
	return err
}

// Get returns the blob stored under key, if any
func (s *SQLiteStore) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.NewStorageError("read value", err)
	}
	return value, true, nil
}

// Put stores the blob under key, replacing any previous value
func (s *SQLiteStore) Put(key string, value []byte) error {
	query := `
	INSERT INTO kv (key, value) VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	if _, err := s.db.Exec(query, key, value); err != nil {
		return errors.NewStorageError("write value", err)
	}
	return nil
}

// Delete removes the key if present
func (s *SQLiteStore) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return errors.NewStorageError("delete value", err)
	}
	return nil
}
