package types

// LocalStore is the single entry point the rest of the application holds.
// It composes the entity repositories with derived history logging: note
// mutations commit first, then append a history entry. A history append
// failure never rolls back or fails the mutation; it is reported on the
// store's error log so the audit trail can be known-incomplete.
type LocalStore interface {
	// Workspace singleton.
	GetWorkspace() (*Workspace, error)
	UpdateWorkspace(updates Patch) (*Workspace, error)
	DeleteWorkspace() error

	// Notes.
	CreateNote(note *Note) (*Note, error)
	GetNote(id string) (*Note, error)
	GetAllNotes(includeDeleted bool) ([]*Note, error)
	GetNotesByFolder(folderID *string) ([]*Note, error)
	GetPinnedNotes() ([]*Note, error)
	UpdateNote(id string, updates Patch) (*Note, error)
	DeleteNote(id string, hardDelete bool) error
	RestoreNote(id string) (*Note, error)

	// Collections.
	CreateCollection(collection *Collection) (*Collection, error)
	GetCollection(id string) (*Collection, error)
	GetAllCollections(includeDeleted bool) ([]*Collection, error)
	UpdateCollection(id string, updates Patch) (*Collection, error)
	DeleteCollection(id string, hardDelete bool) error

	// DeleteCollectionWithNotes removes a collection and resolves its notes
	// first: with cascadeDelete the notes are deleted along with it, without
	// it they are detached to the unfiled root (folderId set to null).
	// Partial completion is surfaced as an error with no compensation; the
	// whole cascade is safe to re-run.
	DeleteCollectionWithNotes(id string, cascadeDelete, hardDelete bool) error
	RestoreCollection(id string) (*Collection, error)

	// Histories, most recent first.
	GetRecentHistories(limit int) ([]*History, error)
	GetHistoriesByNoteID(noteID string, limit int) ([]*History, error)

	// Sync collaborator surface.
	GetPendingSyncNotes() ([]*Note, error)
	GetPendingSyncCollections() ([]*Collection, error)
	// UpdateSyncStatus works uniformly for note and collection ids: notes
	// are probed first, collections on miss.
	UpdateSyncStatus(id string, status string) error

	// ClearAll empties every table as a single all-or-nothing wipe.
	ClearAll() error

	// JSONL snapshots, one file per table.
	ExportJSONL(dir string) error
	ImportJSONL(dir string) error

	// Close releases the underlying engine. Idempotent.
	Close() error
}
