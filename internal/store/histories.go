package store

import (
	"fmt"
	"slices"
	"sort"

	"github.com/moodeng-app/moodeng/internal/sqlite"
	"github.com/moodeng-app/moodeng/pkg/types"
)

// DefaultHistoryLimit caps history reads when the caller passes no limit.
const DefaultHistoryLimit = 100

// HistoryRepository is the append-only log of note change events. Entries
// are never updated; reads return them most recent first.
type HistoryRepository struct {
	store *sqlite.Store
}

// NewHistoryRepository creates a HistoryRepository on the given engine.
func NewHistoryRepository(s *sqlite.Store) *HistoryRepository {
	return &HistoryRepository{store: s}
}

// Append stores a history entry as-is. The entry must carry a pre-generated
// ID and CreatedAt; there are no merge semantics, and a reused ID fails
// with ErrDuplicateKey.
func (r *HistoryRepository) Append(entry *types.History) error {
	if entry.ID == "" {
		return fmt.Errorf("%w: history entry needs an id", types.ErrValidation)
	}
	if entry.CreatedAt == 0 {
		return fmt.Errorf("%w: history entry needs a createdAt", types.ErrValidation)
	}
	if !types.ValidHistoryType(entry.Type) {
		return fmt.Errorf("%w: unknown history type %q", types.ErrValidation, entry.Type)
	}
	if err := r.store.Add(types.HistoriesTable, entry.ID, entry); err != nil {
		return fmt.Errorf("appending history: %w", err)
	}
	return nil
}

// GetRecent returns up to limit entries across all notes, most recent
// first. Entries sharing a millisecond keep most-recently-inserted-first
// order.
func (r *HistoryRepository) GetRecent(limit int) ([]*types.History, error) {
	records, err := r.store.GetAll(types.HistoriesTable)
	if err != nil {
		return nil, fmt.Errorf("listing histories: %w", err)
	}
	entries, err := decodeHistories(records)
	if err != nil {
		return nil, fmt.Errorf("decoding histories: %w", err)
	}
	return capEntries(sortRecentFirst(entries), limit), nil
}

// GetByNoteID returns up to limit entries for one note, most recent first.
// The index scan comes back in index order, not recency order, so the
// result is explicitly re-sorted.
func (r *HistoryRepository) GetByNoteID(noteID string, limit int) ([]*types.History, error) {
	records, err := r.store.QueryByIndex(types.HistoriesTable, "noteId", noteID)
	if err != nil {
		return nil, fmt.Errorf("listing histories by note: %w", err)
	}
	entries, err := decodeHistories(records)
	if err != nil {
		return nil, fmt.Errorf("decoding histories: %w", err)
	}
	return capEntries(sortRecentFirst(entries), limit), nil
}

// sortRecentFirst orders entries by CreatedAt descending. Input arrives in
// insertion order; reversing before the stable sort makes ties come out
// most-recently-inserted first.
func sortRecentFirst(entries []*types.History) []*types.History {
	slices.Reverse(entries)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt > entries[j].CreatedAt
	})
	return entries
}

// capEntries truncates to limit, with non-positive limits falling back to
// DefaultHistoryLimit.
func capEntries(entries []*types.History, limit int) []*types.History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
