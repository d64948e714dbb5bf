package storage

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteEngine persists keys in a single kv table inside a local SQLite
// file. Access from one process is serialized by the driver; nothing here
// coordinates multiple processes.
type SQLiteEngine struct {
	db *sqlx.DB
}

// NewSQLiteEngine opens the SQLite database at path, creating the file and
// the kv table if needed.
func NewSQLiteEngine(path string) (*SQLiteEngine, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite store at %s: %w", path, err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value BLOB NOT NULL)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create kv table: %w", err)
	}

	return &SQLiteEngine{db: db}, nil
}

func (e *SQLiteEngine) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := e.db.Get(&value, `SELECT value FROM kv WHERE key = ?`, key)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return value, true, nil
}

func (e *SQLiteEngine) Set(key string, value []byte) error {
	_, err := e.db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

func (e *SQLiteEngine) Delete(key string) error {
	if _, err := e.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (e *SQLiteEngine) Close() error {
	return e.db.Close()
}
