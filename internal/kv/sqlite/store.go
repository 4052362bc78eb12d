// Package sqlite implements kv.Store on a single-table SQLite database.
// It is the durable local store backing the persistence layer, the moral
// equivalent of a browser's localStorage partition.
package sqlite

import (
	"database/sql"
	"errors"

	"github.com/globalnotes/notes-workspace/internal/kv"
)

type Store struct {
	db *sql.DB
}

var _ kv.Store = (*Store)(nil)

// NewStore opens (or creates) the database file and ensures the KV schema.
func NewStore(path string) (*Store, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	return NewStoreWithDB(db)
}

// NewStoreWithDB wires an existing connection (used by tests and the factory).
func NewStoreWithDB(db *sql.DB) (*Store, error) {
	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func ensureSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS KVEntries (
        Key TEXT PRIMARY KEY,
        Value TEXT NOT NULL
    );`)
	return err
}

func (s *Store) Get(key string) (string, bool, error) {
	var v string
	err := s.db.QueryRow(`SELECT Value FROM KVEntries WHERE Key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(`INSERT INTO KVEntries (Key, Value) VALUES (?, ?)
        ON CONFLICT(Key) DO UPDATE SET Value = excluded.Value`, key, value)
	return err
}

func (s *Store) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM KVEntries WHERE Key = ?`, key)
	return err
}

func (s *Store) Close() error { return s.db.Close() }
