package store

import "github.com/moodeng-app/moodeng/pkg/types"

// HistoryService derives history entries from note transitions and appends
// them to the HistoryRepository. It never mutates notes or collections
// itself; each log call generates its own entry ID and timestamp.
type HistoryService struct {
	histories *HistoryRepository
}

// NewHistoryService creates a HistoryService over the given repository.
func NewHistoryService(histories *HistoryRepository) *HistoryService {
	return &HistoryService{histories: histories}
}

// log builds and appends one entry. Entries are born live with pending sync
// status, like any other locally created record.
func (s *HistoryService) log(noteID, historyType string, payload map[string]any) error {
	return s.histories.Append(&types.History{
		ID:         newID(),
		NoteID:     noteID,
		Type:       historyType,
		Payload:    payload,
		CreatedAt:  nowMillis(),
		SyncStatus: types.SyncPending,
	})
}

// LogNoteCreated records a "created" entry for a freshly stored note.
func (s *HistoryService) LogNoteCreated(note *types.Note) error {
	return s.log(note.ID, types.HistoryCreated, map[string]any{
		"title":    note.Title,
		"folderId": note.FolderID,
	})
}

// LogNoteUpdated classifies a before/after transition and records it.
// A deleted toggle wins over everything and becomes "deleted" or
// "restored"; otherwise a folder change becomes "moved"; anything else is
// a plain "updated". The payload carries compact before/after snapshots
// plus the raw update set, enough to reconstruct the change without
// re-diffing.
func (s *HistoryService) LogNoteUpdated(before, after *types.Note, updates types.Patch) error {
	moved := updates.Has("folderId") && !folderEq(before.FolderID, after.FolderID)
	toggledDeleted := updates.Has("deleted") && before.Deleted != after.Deleted

	historyType := types.HistoryUpdated
	if toggledDeleted {
		if after.Deleted {
			historyType = types.HistoryDeleted
		} else {
			historyType = types.HistoryRestored
		}
	} else if moved {
		historyType = types.HistoryMoved
	}

	return s.log(after.ID, historyType, map[string]any{
		"before":  noteSnapshot(before),
		"updates": map[string]any(updates),
		"after":   noteSnapshot(after),
	})
}

// LogNoteDeleted records a soft deletion. Hard deletes are never logged;
// the subject no longer exists to reference.
func (s *HistoryService) LogNoteDeleted(noteID string) error {
	return s.log(noteID, types.HistoryDeleted, map[string]any{
		"hardDelete": false,
	})
}

// LogNoteRestored records a restore from soft deletion.
func (s *HistoryService) LogNoteRestored(noteID string) error {
	return s.log(noteID, types.HistoryRestored, map[string]any{})
}

// noteSnapshot is the compact per-side payload of an update entry.
func noteSnapshot(n *types.Note) map[string]any {
	return map[string]any{
		"title":    n.Title,
		"folderId": n.FolderID,
		"deleted":  n.Deleted,
		"isPinned": n.IsPinned,
	}
}
