// This file provides JSONL snapshot export and import for the store, with
// atomic file writes. Snapshots are one file per table, one record per line.
package sqlite

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/moodeng-app/moodeng/pkg/types"
)

// ExportJSONL writes every table to <dir>/<table>.jsonl in insertion order.
// Each file is written atomically via the temp-file, fsync, rename pattern.
func (s *Store) ExportJSONL(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: creating export dir: %v", types.ErrIO, err)
	}
	for _, table := range types.StandardTableNames {
		records, err := s.GetAll(table)
		if err != nil {
			return fmt.Errorf("exporting %s: %w", table, err)
		}
		if err := writeJSONL(filepath.Join(dir, table+".jsonl"), records); err != nil {
			return fmt.Errorf("exporting %s: %w", table, err)
		}
	}
	return nil
}

// ImportJSONL loads <dir>/<table>.jsonl files into the store, replacing
// records that share a key. A missing file skips its table; malformed lines
// are skipped. The whole import runs as one transaction.
func (s *Store) ImportJSONL(dir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.opened {
		return types.ErrStoreClosed
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: beginning import: %v", types.ErrIO, err)
	}
	defer tx.Rollback()

	for _, table := range types.StandardTableNames {
		records, err := readJSONL(filepath.Join(dir, table+".jsonl"))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("%w: reading %s.jsonl: %v", types.ErrIO, table, err)
		}
		for _, rec := range records {
			key, ok := recordKey(table, rec)
			if !ok {
				continue
			}
			if _, err := tx.Exec(
				fmt.Sprintf("INSERT INTO %s (key, record) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET record = excluded.record", table),
				key, string(rec),
			); err != nil {
				return fmt.Errorf("%w: importing into %s: %v", types.ErrIO, table, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing import: %v", types.ErrIO, err)
	}
	return nil
}

// recordKey resolves the storage key of an exported record. The workspace
// singleton uses its constant key; everything else is keyed by id.
func recordKey(table string, rec json.RawMessage) (string, bool) {
	if table == types.WorkspaceTable {
		return types.WorkspaceKey, true
	}
	var obj struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec, &obj); err != nil || obj.ID == "" {
		return "", false
	}
	return obj.ID, true
}

// readJSONL reads a JSONL file and returns each non-empty, parseable line.
// Malformed lines are skipped.
func readJSONL(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []json.RawMessage
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 || !json.Valid(line) {
			continue
		}
		cp := make([]byte, len(line))
		copy(cp, line)
		records = append(records, json.RawMessage(cp))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// writeJSONL atomically writes records to a JSONL file using the temp-file,
// fsync, rename pattern.
func writeJSONL(path string, records []json.RawMessage) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", types.ErrIO, err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err := w.Write(rec); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("%w: writing record: %v", types.ErrIO, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("%w: writing newline: %v", types.ErrIO, err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: flushing buffer: %v", types.ErrIO, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: syncing temp file: %v", types.ErrIO, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing temp file: %v", types.ErrIO, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: renaming temp file: %v", types.ErrIO, err)
	}
	return nil
}
