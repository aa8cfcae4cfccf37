package store

import (
	"errors"
	"fmt"

	"github.com/moodeng-app/moodeng/internal/sqlite"
	"github.com/moodeng-app/moodeng/pkg/types"
)

// NotesRepository provides CRUD and secondary lookups over the notes table.
// Soft delete is a flag flip through Update; only hard delete removes the
// record.
type NotesRepository struct {
	store *sqlite.Store
}

// NewNotesRepository creates a NotesRepository on the given engine.
func NewNotesRepository(s *sqlite.Store) *NotesRepository {
	return &NotesRepository{store: s}
}

// Create stores a new note. A missing ID is assigned, zero timestamps are
// stamped to now, and an empty sync status defaults to pending. Returns
// ErrDuplicateKey if the ID already exists.
func (r *NotesRepository) Create(note *types.Note) (*types.Note, error) {
	if err := note.Validate(); err != nil {
		return nil, err
	}

	if note.ID == "" {
		note.ID = newID()
	}
	now := nowMillis()
	if note.CreatedAt == 0 {
		note.CreatedAt = now
	}
	if note.UpdatedAt == 0 {
		note.UpdatedAt = now
	}
	if note.SyncStatus == "" {
		note.SyncStatus = types.SyncPending
	}

	if err := r.store.Add(types.NotesTable, note.ID, note); err != nil {
		return nil, fmt.Errorf("creating note: %w", err)
	}
	return note, nil
}

// GetByID returns the note or nil when absent. Soft-deleted notes are
// returned as stored; callers wanting live records go through GetAll.
func (r *NotesRepository) GetByID(id string) (*types.Note, error) {
	var n types.Note
	err := r.store.Get(types.NotesTable, id, &n)
	if errors.Is(err, types.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting note: %w", err)
	}
	return &n, nil
}

// GetAll returns all notes in insertion order, excluding soft-deleted ones
// unless includeDeleted is set.
func (r *NotesRepository) GetAll(includeDeleted bool) ([]*types.Note, error) {
	records, err := r.store.GetAll(types.NotesTable)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	notes, err := decodeNotes(records)
	if err != nil {
		return nil, fmt.Errorf("decoding notes: %w", err)
	}
	if includeDeleted {
		return notes, nil
	}
	live := notes[:0]
	for _, n := range notes {
		if !n.Deleted {
			live = append(live, n)
		}
	}
	return live, nil
}

// GetByFolder returns the non-deleted notes filed under folderID; a nil
// folderID selects the unfiled root.
func (r *NotesRepository) GetByFolder(folderID *string) ([]*types.Note, error) {
	var value any
	if folderID != nil {
		value = *folderID
	}
	records, err := r.store.QueryByIndex(types.NotesTable, "folderId", value)
	if err != nil {
		return nil, fmt.Errorf("listing notes by folder: %w", err)
	}
	notes, err := decodeNotes(records)
	if err != nil {
		return nil, fmt.Errorf("decoding notes: %w", err)
	}
	live := notes[:0]
	for _, n := range notes {
		if !n.Deleted {
			live = append(live, n)
		}
	}
	return live, nil
}

// GetPinned returns the non-deleted pinned notes.
func (r *NotesRepository) GetPinned() ([]*types.Note, error) {
	records, err := r.store.QueryByIndex(types.NotesTable, "isPinned", true)
	if err != nil {
		return nil, fmt.Errorf("listing pinned notes: %w", err)
	}
	notes, err := decodeNotes(records)
	if err != nil {
		return nil, fmt.Errorf("decoding notes: %w", err)
	}
	live := notes[:0]
	for _, n := range notes {
		if !n.Deleted {
			live = append(live, n)
		}
	}
	return live, nil
}

// GetPendingSync returns every note with pending sync status, soft-deleted
// ones included: a deletion is a local change the sync collaborator still
// has to reconcile.
func (r *NotesRepository) GetPendingSync() ([]*types.Note, error) {
	records, err := r.store.QueryByIndex(types.NotesTable, "syncStatus", types.SyncPending)
	if err != nil {
		return nil, fmt.Errorf("listing pending notes: %w", err)
	}
	notes, err := decodeNotes(records)
	if err != nil {
		return nil, fmt.Errorf("decoding notes: %w", err)
	}
	return notes, nil
}

// Update merges the patch over the stored note and rewrites UpdatedAt to
// now, regardless of any caller-supplied value. Returns ErrNotFound if the
// ID is absent.
func (r *NotesRepository) Update(id string, updates types.Patch) (*types.Note, error) {
	var n types.Note
	if err := r.store.Get(types.NotesTable, id, &n); err != nil {
		return nil, fmt.Errorf("updating note: %w", err)
	}

	// The stored timestamp is the monotonic floor; a caller-supplied
	// updatedAt merged by Apply is discarded.
	prev := n.UpdatedAt
	if err := n.Apply(updates); err != nil {
		return nil, err
	}
	n.UpdatedAt = laterOf(nowMillis(), prev)

	if err := r.store.Put(types.NotesTable, id, &n); err != nil {
		return nil, fmt.Errorf("updating note: %w", err)
	}
	return &n, nil
}

// Delete soft-deletes the note by default; with hardDelete it physically
// removes the record. A missing ID fails with ErrNotFound on both paths.
func (r *NotesRepository) Delete(id string, hardDelete bool) error {
	if hardDelete {
		if err := r.store.Delete(types.NotesTable, id); err != nil {
			return fmt.Errorf("deleting note: %w", err)
		}
		return nil
	}
	_, err := r.Update(id, types.Patch{"deleted": true})
	return err
}

// Restore clears the soft-delete flag. Returns ErrNotFound if the ID is
// absent.
func (r *NotesRepository) Restore(id string) (*types.Note, error) {
	return r.Update(id, types.Patch{"deleted": false})
}
