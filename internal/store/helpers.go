// Package store implements the entity repositories, the history service, and
// the LocalStore facade over the SQLite key/value engine.
package store

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/moodeng-app/moodeng/pkg/types"
)

// newID generates a UUID v7 for record IDs, falling back to v4 if v7
// generation fails.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// nowMillis returns the current time in epoch milliseconds.
func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// laterOf keeps record timestamps from moving backwards when the wall clock
// does.
func laterOf(now, previous int64) int64 {
	if now < previous {
		return previous
	}
	return now
}

// folderEq compares two nullable folder references.
func folderEq(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func decodeNotes(records []json.RawMessage) ([]*types.Note, error) {
	notes := make([]*types.Note, 0, len(records))
	for _, rec := range records {
		var n types.Note
		if err := json.Unmarshal(rec, &n); err != nil {
			return nil, err
		}
		notes = append(notes, &n)
	}
	return notes, nil
}

func decodeCollections(records []json.RawMessage) ([]*types.Collection, error) {
	collections := make([]*types.Collection, 0, len(records))
	for _, rec := range records {
		var c types.Collection
		if err := json.Unmarshal(rec, &c); err != nil {
			return nil, err
		}
		collections = append(collections, &c)
	}
	return collections, nil
}

func decodeHistories(records []json.RawMessage) ([]*types.History, error) {
	entries := make([]*types.History, 0, len(records))
	for _, rec := range records {
		var h types.History
		if err := json.Unmarshal(rec, &h); err != nil {
			return nil, err
		}
		entries = append(entries, &h)
	}
	return entries, nil
}
