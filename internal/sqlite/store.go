package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/moodeng-app/moodeng/pkg/types"
)

// dbFileName is the SQLite database file inside DataDir.
const dbFileName = "moodeng.db"

// Store is the shared storage handle all repositories run on. One logical
// table maps to one SQLite table of JSON records; a single Put or Delete is
// one atomic statement, and ClearAll runs as one transaction so readers
// never observe a partial wipe.
type Store struct {
	mu     sync.RWMutex
	opened bool
	config types.Config
	db     *sql.DB
}

// NewStore creates a Store. The store is not opened; call Open with a Config.
func NewStore() *Store {
	return &Store{}
}

// Open initializes the store: creates DataDir if needed, opens the database
// file, and applies schema and index DDL. Open is idempotent; redundant
// calls converge on the already-open connection.
func (s *Store) Open(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.opened {
		return nil
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("%w: creating data dir: %v", types.ErrIO, err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return fmt.Errorf("%w: opening database: %v", types.ErrIO, err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("%w: creating tables: %v", types.ErrIO, err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("%w: creating indexes: %v", types.ErrIO, err)
		}
	}

	s.db = db
	s.config = config
	s.opened = true
	return nil
}

// Close releases the database connection. Idempotent; after Close all
// operations return ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.opened {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("%w: closing database: %v", types.ErrIO, err)
	}
	s.db = nil
	s.opened = false
	return nil
}

// DataDir returns the configured data directory of an open store.
func (s *Store) DataDir() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config.DataDir
}

// checkTable validates the table name. Caller must hold the lock.
func (s *Store) checkTable(table string) error {
	if !s.opened {
		return types.ErrStoreClosed
	}
	if _, ok := tableIndexes[table]; !ok {
		return types.ErrTableNotFound
	}
	return nil
}

// Add inserts a record under a key that must not already exist.
// Returns ErrDuplicateKey if the key is taken.
func (s *Store) Add(table, key string, record any) error {
	if key == "" {
		return types.ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkTable(table); err != nil {
		return err
	}

	var exists int
	err := s.db.QueryRow(
		fmt.Sprintf("SELECT 1 FROM %s WHERE key = ?", table), key,
	).Scan(&exists)
	if err == nil {
		return types.ErrDuplicateKey
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("%w: checking %s/%s: %v", types.ErrIO, table, key, err)
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: encoding %s record: %v", types.ErrValidation, table, err)
	}
	if _, err := s.db.Exec(
		fmt.Sprintf("INSERT INTO %s (key, record) VALUES (?, ?)", table),
		key, string(data),
	); err != nil {
		return fmt.Errorf("%w: inserting %s/%s: %v", types.ErrIO, table, key, err)
	}
	return nil
}

// Put stores a record under a key, replacing any existing record.
func (s *Store) Put(table, key string, record any) error {
	if key == "" {
		return types.ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkTable(table); err != nil {
		return err
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: encoding %s record: %v", types.ErrValidation, table, err)
	}
	if _, err := s.db.Exec(
		fmt.Sprintf("INSERT INTO %s (key, record) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET record = excluded.record", table),
		key, string(data),
	); err != nil {
		return fmt.Errorf("%w: putting %s/%s: %v", types.ErrIO, table, key, err)
	}
	return nil
}

// Get retrieves the record stored under key and unmarshals it into out.
// Returns ErrNotFound if the key is absent.
func (s *Store) Get(table, key string, out any) error {
	if key == "" {
		return types.ErrInvalidID
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkTable(table); err != nil {
		return err
	}

	var data string
	err := s.db.QueryRow(
		fmt.Sprintf("SELECT record FROM %s WHERE key = ?", table), key,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return types.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: getting %s/%s: %v", types.ErrIO, table, key, err)
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		return fmt.Errorf("%w: decoding %s/%s: %v", types.ErrIO, table, key, err)
	}
	return nil
}

// GetAll returns every record in the table in insertion order.
func (s *Store) GetAll(table string) ([]json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkTable(table); err != nil {
		return nil, err
	}
	return s.queryRecords(fmt.Sprintf("SELECT record FROM %s ORDER BY rowid ASC", table))
}

// QueryByIndex returns the records whose indexed field equals value, in
// index order with insertion order breaking ties. A nil value matches
// records where the field is null. Returns ErrIndexNotFound for an index
// the table does not carry.
func (s *Store) QueryByIndex(table, index string, value any) ([]json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkTable(table); err != nil {
		return nil, err
	}

	path, ok := tableIndexes[table][index]
	if !ok {
		return nil, types.ErrIndexNotFound
	}

	if value == nil {
		return s.queryRecords(fmt.Sprintf(
			"SELECT record FROM %s WHERE json_extract(record, '%s') IS NULL ORDER BY json_extract(record, '%s') ASC, rowid ASC",
			table, path, path,
		))
	}
	return s.queryRecords(fmt.Sprintf(
		"SELECT record FROM %s WHERE json_extract(record, '%s') = ? ORDER BY json_extract(record, '%s') ASC, rowid ASC",
		table, path, path,
	), indexValue(value))
}

// Delete removes the record stored under key.
// Returns ErrNotFound if the key is absent.
func (s *Store) Delete(table, key string) error {
	if key == "" {
		return types.ErrInvalidID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkTable(table); err != nil {
		return err
	}

	res, err := s.db.Exec(fmt.Sprintf("DELETE FROM %s WHERE key = ?", table), key)
	if err != nil {
		return fmt.Errorf("%w: deleting %s/%s: %v", types.ErrIO, table, key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: deleting %s/%s: %v", types.ErrIO, table, key, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// ClearAll empties every table in a single transaction.
func (s *Store) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.opened {
		return types.ErrStoreClosed
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: beginning wipe: %v", types.ErrIO, err)
	}
	defer tx.Rollback()

	for _, table := range types.StandardTableNames {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("%w: clearing %s: %v", types.ErrIO, table, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing wipe: %v", types.ErrIO, err)
	}
	return nil
}

// queryRecords runs a SELECT returning one record column per row.
// Caller must hold the lock.
func (s *Store) queryRecords(query string, args ...any) ([]json.RawMessage, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying records: %v", types.ErrIO, err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("%w: scanning record: %v", types.ErrIO, err)
		}
		records = append(records, json.RawMessage(data))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating records: %v", types.ErrIO, err)
	}
	return records, nil
}

// indexValue converts a Go value into the representation json_extract
// produces for it. JSON booleans come back as integers.
func indexValue(v any) any {
	if b, ok := v.(bool); ok {
		if b {
			return int64(1)
		}
		return int64(0)
	}
	return v
}
