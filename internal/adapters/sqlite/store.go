package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"spellsheet/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// ErrSchemaVersion is returned by Open for a database with an unknown schema
var ErrSchemaVersion = errors.New("unsupported schema version")

// Store implements ports.Store as a key/value table in a SQLite file
type Store struct {
	db     *sql.DB
	dbPath string
}

// Ensure Store implements ports.Store
var _ ports.Store = (*Store)(nil)

// Open opens (creating if needed) the store at dbPath.
// Use ":memory:" for a throwaway database.
func Open(dbPath string) (*Store, error) {
	dbPath = expandHome(dbPath)

	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn(dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps ":memory:" databases coherent and matches
	// the single-session model.
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	s := &Store{db: db, dbPath: dbPath}
	if err := s.checkSchema(); err != nil {
		db.Close()
		return nil, err
	}
	if err := s.updateMeta(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to update metadata: %w", err)
	}

	return s, nil
}

// Path returns the database file path
func (s *Store) Path() string {
	return s.dbPath
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SchemaVersion returns the schema version recorded in the database, or ""
// for a database that has none yet
func (s *Store) SchemaVersion() (string, error) {
	var version string
	err := s.db.QueryRow(`SELECT value FROM meta WHERE key = 'schema_version'`).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

// checkSchema refuses databases written with a different schema version
func (s *Store) checkSchema() error {
	version, err := s.SchemaVersion()
	if err != nil {
		return err
	}
	if version != "" && version != schemaVersion {
		return fmt.Errorf("%w: database has %s, want %s", ErrSchemaVersion, version, schemaVersion)
	}
	return nil
}

// Get returns the value stored under key
func (s *Store) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key
func (s *Store) Set(key string, value []byte) error {
	if _, err := s.db.Exec(upsertSQL, key, value, time.Now().UnixMilli()); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// BeginTx starts a transaction for atomic multi-key writes
func (s *Store) BeginTx() (ports.StoreTx, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &storeTx{tx: tx}, nil
}

const upsertSQL = `
	INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
`

func (s *Store) updateMeta() error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion)
	return err
}

func dsn(dbPath string) string {
	if dbPath == ":memory:" {
		return dbPath
	}
	return "file:" + dbPath + "?_pragma=journal_mode(WAL)"
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
